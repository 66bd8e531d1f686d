package market

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dilshan-mv/coindeck/schemas"
)

const (
	binanceBaseURL = "https://api.binance.com"

	// stableQuote is the quote currency substituted for fiat codes Binance has no spot pairs for
	stableQuote = "USDT"

	binanceDefaultInterval = "1h"
	binanceDefaultLimit    = 100
	binanceMaxLimit        = 1000
)

var binanceIntervals = map[string]string{
	"1MIN":  "1m",
	"5MIN":  "5m",
	"15MIN": "15m",
	"30MIN": "30m",
	"1HRS":  "1h",
	"4HRS":  "4h",
	"12HRS": "12h",
	"1DAY":  "1d",
	"7DAY":  "1w",
}

func translateInterval(periodID string) string {
	if interval, ok := binanceIntervals[strings.ToUpper(periodID)]; ok {
		return interval
	}

	return binanceDefaultInterval
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return binanceDefaultLimit
	}
	if limit > binanceMaxLimit {
		return binanceMaxLimit
	}

	return limit
}

func binanceSymbol(base, quote string) string {
	quote = strings.ToUpper(quote)
	switch quote {
	case "", "USD", "EUR", "GBP":
		quote = stableQuote
	}

	return strings.ToUpper(base) + quote
}

func (s *Service) binanceOHLCV(base, quote, periodID string, limit int) ([]schemas.OHLCVRow, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v3/klines?symbol=%s&interval=%s&limit=%d",
		s.BinanceBaseURL,
		binanceSymbol(base, quote),
		translateInterval(periodID),
		clampLimit(limit),
	)

	var klines [][]interface{}
	if err := s.getJSON(endpoint, nil, &klines); err != nil {
		return nil, err
	}

	rows := make([]schemas.OHLCVRow, 0, len(klines))
	for _, kline := range klines {
		row, err := reshapeKline(kline)
		if err != nil {
			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// reshapeKline maps a binance kline array
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, trades, ...]
// into the common candle row schema
func reshapeKline(kline []interface{}) (schemas.OHLCVRow, error) {
	if len(kline) < 9 {
		return schemas.OHLCVRow{}, fmt.Errorf("binance kline has %d fields, expected at least 9", len(kline))
	}

	openTime, ok := kline[0].(float64)
	if !ok {
		return schemas.OHLCVRow{}, fmt.Errorf("binance kline open time is not a number")
	}
	closeTime, ok := kline[6].(float64)
	if !ok {
		return schemas.OHLCVRow{}, fmt.Errorf("binance kline close time is not a number")
	}

	prices := make([]float64, 5)
	for i, idx := range []int{1, 2, 3, 4, 5} {
		str, ok := kline[idx].(string)
		if !ok {
			return schemas.OHLCVRow{}, fmt.Errorf("binance kline field %d is not a string", idx)
		}

		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return schemas.OHLCVRow{}, err
		}
		prices[i] = val
	}

	trades, ok := kline[8].(float64)
	if !ok {
		return schemas.OHLCVRow{}, fmt.Errorf("binance kline trade count is not a number")
	}

	start := time.UnixMilli(int64(openTime)).UTC().Format(time.RFC3339)
	end := time.UnixMilli(int64(closeTime)).UTC().Format(time.RFC3339)

	return schemas.OHLCVRow{
		TimePeriodStart: start,
		TimePeriodEnd:   end,
		TimeOpen:        start,
		TimeClose:       end,
		PriceOpen:       prices[0],
		PriceHigh:       prices[1],
		PriceLow:        prices[2],
		PriceClose:      prices[3],
		VolumeTraded:    prices[4],
		TradesCount:     int64(trades),
	}, nil
}

func (s *Service) binanceRate(base, quote string) (*schemas.Rate, error) {
	symbol := binanceSymbol(base, quote)
	endpoint := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s", s.BinanceBaseURL, symbol)

	var ticker struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := s.getJSON(endpoint, nil, &ticker); err != nil {
		return nil, err
	}

	rate, err := strconv.ParseFloat(ticker.Price, 64)
	if err != nil {
		return nil, err
	}

	return &schemas.Rate{
		Base:  strings.ToUpper(base),
		Quote: strings.TrimPrefix(symbol, strings.ToUpper(base)),
		Rate:  rate,
	}, nil
}

func (s *Service) binanceTopAssets(limit int) ([]schemas.Asset, error) {
	endpoint := fmt.Sprintf("%s/api/v3/ticker/24hr", s.BinanceBaseURL)

	var tickers []struct {
		Symbol      string `json:"symbol"`
		QuoteVolume string `json:"quoteVolume"`
	}
	if err := s.getJSON(endpoint, nil, &tickers); err != nil {
		return nil, err
	}

	type ranked struct {
		symbol string
		volume float64
	}

	var pairs []ranked
	for _, ticker := range tickers {
		if !strings.HasSuffix(ticker.Symbol, stableQuote) {
			continue
		}

		base := strings.TrimSuffix(ticker.Symbol, stableQuote)
		if base == "" {
			continue
		}

		volume, err := strconv.ParseFloat(ticker.QuoteVolume, 64)
		if err != nil {
			continue
		}

		pairs = append(pairs, ranked{
			symbol: base,
			volume: volume,
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].volume > pairs[j].volume
	})

	if limit <= 0 {
		limit = topAssetsDefaultLimit
	}
	if limit > len(pairs) {
		limit = len(pairs)
	}

	assets := make([]schemas.Asset, 0, limit)
	for _, pair := range pairs[:limit] {
		assets = append(assets, schemas.Asset{
			Symbol: pair.symbol,
			Name:   pair.symbol,
		})
	}

	return assets, nil
}
