package domain

// RateObservation is one stored USD/INR quote. ID is assigned by the store
// at insert time and is monotonically increasing in insertion order.
type RateObservation struct {
	ID   int64   `json:"id"`
	Date string  `json:"date"` // calendar date, YYYY-MM-DD (UTC)
	Rate float64 `json:"rate"` // INR per 1 USD
}
