// Package market proxies market data from external providers, trying a rich
// primary source first and degrading to a fallback provider when it fails.
// Every operation normalizes the fallback response into the primary shape so
// callers never see which provider answered beyond the source identifier.
package market

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/config"
	"github.com/dilshan-mv/coindeck/enums"
	"github.com/dilshan-mv/coindeck/schemas"
)

const requestTimeout = 12 * time.Second

// Service contains the market data proxy operations
type Service struct {
	Env    *config.Env
	Client *http.Client

	CoinAPIBaseURL   string
	CoinGeckoBaseURL string
	BinanceBaseURL   string
}

// NewService is a function that is used to create a market data service with the default providers
func NewService(env *config.Env) *Service {
	return &Service{
		Env: env,
		Client: &http.Client{
			Timeout: requestTimeout,
		},
		CoinAPIBaseURL:   coinAPIBaseURL,
		CoinGeckoBaseURL: coinGeckoBaseURL,
		BinanceBaseURL:   binanceBaseURL,
	}
}

// OHLCV is a function that is used to get time series candles for a trading pair.
// CoinAPI is queried first (skipped when no API key is configured) and Binance
// klines are reshaped into the same row schema when CoinAPI fails.
func (s *Service) OHLCV(base, quote, periodID string, limit int) (rows []schemas.OHLCVRow, source string, err error) {
	type attempt struct {
		source string
		fetch  func() ([]schemas.OHLCVRow, error)
	}

	var attempts []attempt
	if s.Env.CoinAPIKey != "" {
		attempts = append(attempts, attempt{
			source: enums.SourceCoinAPI,
			fetch: func() ([]schemas.OHLCVRow, error) {
				return s.coinAPIOHLCV(base, quote, periodID, limit)
			},
		})
	}
	attempts = append(attempts, attempt{
		source: enums.SourceBinance,
		fetch: func() ([]schemas.OHLCVRow, error) {
			return s.binanceOHLCV(base, quote, periodID, limit)
		},
	})

	for _, a := range attempts {
		rows, fetchErr := a.fetch()
		if fetchErr != nil {
			logger.Error(fetchErr)
			err = fetchErr
			continue
		}

		return rows, a.source, nil
	}

	return nil, "", err
}

// Price is a function that is used to get the current exchange rate of a trading pair
func (s *Service) Price(base, quote string) (rate *schemas.Rate, source string, err error) {
	type attempt struct {
		source string
		fetch  func() (*schemas.Rate, error)
	}

	var attempts []attempt
	if s.Env.CoinAPIKey != "" {
		attempts = append(attempts, attempt{
			source: enums.SourceCoinAPI,
			fetch: func() (*schemas.Rate, error) {
				return s.coinAPIRate(base, quote)
			},
		})
	}
	attempts = append(attempts, attempt{
		source: enums.SourceBinance,
		fetch: func() (*schemas.Rate, error) {
			return s.binanceRate(base, quote)
		},
	})

	for _, a := range attempts {
		rate, fetchErr := a.fetch()
		if fetchErr != nil {
			logger.Error(fetchErr)
			err = fetchErr
			continue
		}

		return rate, a.source, nil
	}

	return nil, "", err
}

// TopAssets is a function that is used to get the ranked top assets list.
// CoinGecko ranks by market capitalization; Binance does not carry that metric
// so the fallback ranks USDT quoted pairs by their 24 hour quote volume.
func (s *Service) TopAssets(limit int) (assets []schemas.Asset, source string, err error) {
	type attempt struct {
		source string
		fetch  func() ([]schemas.Asset, error)
	}

	attempts := []attempt{
		{
			source: enums.SourceCoinGecko,
			fetch: func() ([]schemas.Asset, error) {
				return s.coinGeckoTopAssets(limit)
			},
		},
		{
			source: enums.SourceBinance,
			fetch: func() ([]schemas.Asset, error) {
				return s.binanceTopAssets(limit)
			},
		},
	}

	for _, a := range attempts {
		assets, fetchErr := a.fetch()
		if fetchErr != nil {
			logger.Error(fetchErr)
			err = fetchErr
			continue
		}

		return assets, a.source, nil
	}

	return nil, "", err
}

func (s *Service) getJSON(url string, header map[string]string, v interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	for key, val := range header {
		req.Header.Set(key, val)
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", res.StatusCode, url)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}
