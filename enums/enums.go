// Package enums contains enums
package enums

const (
	// SysHealth -> denotes the health status of the system
	SysHealth = "health"
	// SysHealthMsg -> denotes the custom health status message of the system
	SysHealthMsg = "system_message"

	// SourceCoinAPI -> used to denote the CoinAPI market data provider
	SourceCoinAPI = "coinapi"
	// SourceCoinGecko -> used to denote the CoinGecko market data provider
	SourceCoinGecko = "coingecko"
	// SourceBinance -> used to denote the Binance market data provider
	SourceBinance = "binance"
)
