package domain

import "errors"

var ErrNoObservations = errors.New("no observations stored")
