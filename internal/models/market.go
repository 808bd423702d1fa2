package models

import "time"

// Candle represents a single daily OHLCV bar.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Quote represents the current price snapshot for a symbol.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Volume        int64     `json:"volume"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Mover is a row in the gainers/losers list.
type Mover struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// ETFRow is one row of the spreadsheet-style ETF grid, with derived
// technical columns.
type ETFRow struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	SMA20         float64 `json:"sma_20"`
	SMA50         float64 `json:"sma_50"`
	RSI14         float64 `json:"rsi_14"`
	RSScore       float64 `json:"rs_score"`
	AccelScore    float64 `json:"accel_score"`
}

// GetAggregatesResponse wraps a candle series for one symbol.
type GetAggregatesResponse struct {
	Symbol     string   `json:"symbol"`
	Days       int      `json:"days"`
	DataPoints int      `json:"data_points"`
	Candles    []Candle `json:"candles"`
}
