package controllers

import (
	"strings"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/dilshan-mv/coindeck/errors"
	"github.com/dilshan-mv/coindeck/market"
	"github.com/gofiber/fiber/v2"
)

// Market struct contains the market data proxy controllers
type Market struct {
	Service *market.Service
}

// OHLCV is a function that is used to serve time series candles for a trading pair
func (m *Market) OHLCV(c *fiber.Ctx) error {
	base := strings.ToUpper(c.Query("base", c.Query("symbol", "BTC")))
	quote := strings.ToUpper(c.Query("quote", "USD"))
	periodID := c.Query("period_id", "1DAY")
	limit := c.QueryInt("limit", 100)

	rows, source, err := m.Service.OHLCV(base, quote, periodID, limit)
	if err != nil {
		logger.Error(err)
		return errors.MarketDataNotLoaded(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":     true,
		"source": source,
		"rows":   rows,
	})
}

// Price is a function that is used to serve the current exchange rate of a trading pair
func (m *Market) Price(c *fiber.Ctx) error {
	base := strings.ToUpper(c.Query("base", c.Query("symbol", "BTC")))
	quote := strings.ToUpper(c.Query("quote", "USD"))

	rate, source, err := m.Service.Price(base, quote)
	if err != nil {
		logger.Error(err)
		return errors.MarketDataNotLoaded(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":     true,
		"source": source,
		"data":   rate,
	})
}

// TopAssets is a function that is used to serve the ranked top assets list
func (m *Market) TopAssets(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	assets, source, err := m.Service.TopAssets(limit)
	if err != nil {
		logger.Error(err)
		return errors.MarketDataNotLoaded(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":     true,
		"source": source,
		"assets": assets,
	})
}
