package main

import (
	"os"

	"inrwatch/internal/app"
)

// @title USD/INR rate history API
// @version 1.0
// @description Stores a daily USD to INR exchange rate observation and serves the history.
// @BasePath /api
func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
