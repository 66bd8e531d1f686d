package schemas

// OHLCVRow is a single candle in the shape the primary provider returns;
// fallback provider rows are reshaped into this before leaving the proxy
type OHLCVRow struct {
	TimePeriodStart string  `json:"time_period_start"`
	TimePeriodEnd   string  `json:"time_period_end"`
	TimeOpen        string  `json:"time_open"`
	TimeClose       string  `json:"time_close"`
	PriceOpen       float64 `json:"price_open"`
	PriceHigh       float64 `json:"price_high"`
	PriceLow        float64 `json:"price_low"`
	PriceClose      float64 `json:"price_close"`
	VolumeTraded    float64 `json:"volume_traded"`
	TradesCount     int64   `json:"trades_count"`
}

// Rate is the current exchange rate of a base asset in a quote currency
type Rate struct {
	Base  string  `json:"asset_id_base"`
	Quote string  `json:"asset_id_quote"`
	Rate  float64 `json:"rate"`
}

// Asset is an entry of the ranked top assets list
type Asset struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Image  string `json:"image,omitempty"`
}
