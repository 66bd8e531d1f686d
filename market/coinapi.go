package market

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dilshan-mv/coindeck/schemas"
)

const coinAPIBaseURL = "https://rest.coinapi.io"

func (s *Service) coinAPIHeader() map[string]string {
	return map[string]string{
		"X-CoinAPI-Key": s.Env.CoinAPIKey,
	}
}

func (s *Service) coinAPIOHLCV(base, quote, periodID string, limit int) ([]schemas.OHLCVRow, error) {
	if periodID == "" {
		periodID = "1DAY"
	}
	if limit <= 0 {
		limit = 100
	}

	endpoint := fmt.Sprintf(
		"%s/v1/ohlcv/%s_%s/latest?period_id=%s&limit=%d",
		s.CoinAPIBaseURL,
		strings.ToUpper(base),
		strings.ToUpper(quote),
		url.QueryEscape(periodID),
		limit,
	)

	var rows []schemas.OHLCVRow
	if err := s.getJSON(endpoint, s.coinAPIHeader(), &rows); err != nil {
		return nil, err
	}

	// latest endpoint returns newest first, callers expect chronological order
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}

	return rows, nil
}

func (s *Service) coinAPIRate(base, quote string) (*schemas.Rate, error) {
	endpoint := fmt.Sprintf(
		"%s/v1/exchangerate/%s/%s",
		s.CoinAPIBaseURL,
		strings.ToUpper(base),
		strings.ToUpper(quote),
	)

	var rate schemas.Rate
	if err := s.getJSON(endpoint, s.coinAPIHeader(), &rate); err != nil {
		return nil, err
	}

	return &rate, nil
}
