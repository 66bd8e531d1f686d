package market

import (
	"fmt"
	"strings"

	"github.com/dilshan-mv/coindeck/schemas"
)

const (
	coinGeckoBaseURL = "https://api.coingecko.com"

	topAssetsDefaultLimit = 10
)

func (s *Service) coinGeckoTopAssets(limit int) ([]schemas.Asset, error) {
	if limit <= 0 {
		limit = topAssetsDefaultLimit
	}

	endpoint := fmt.Sprintf(
		"%s/api/v3/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=1",
		s.CoinGeckoBaseURL,
		limit,
	)

	var coins []struct {
		Symbol string `json:"symbol"`
		Name   string `json:"name"`
		Image  string `json:"image"`
	}
	if err := s.getJSON(endpoint, nil, &coins); err != nil {
		return nil, err
	}

	assets := make([]schemas.Asset, 0, len(coins))
	for _, coin := range coins {
		assets = append(assets, schemas.Asset{
			Symbol: strings.ToUpper(coin.Symbol),
			Name:   coin.Name,
			Image:  coin.Image,
		})
	}

	return assets, nil
}
