// Package catalog holds the static token, network and fee tables the
// transfer form offers.
package catalog

import "strings"

type Token struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Balance  string `json:"balance"`
	USDValue string `json:"usd_value"`
}

type Network struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	ChainID int    `json:"chain_id"`
}

var Tokens = []Token{
	{Symbol: "HUSHR", Name: "Hushr Token", Icon: "/favicon.png", Balance: "1,250.45", USDValue: "$2,500.90"},
	{Symbol: "USDC", Name: "USD Coin", Icon: "/coins/usdc.svg", Balance: "500.00", USDValue: "$500.00"},
	{Symbol: "USDT", Name: "Tether", Icon: "/coins/usdt.svg", Balance: "750.25", USDValue: "$750.25"},
	{Symbol: "ETH", Name: "Ethereum", Icon: "/coins/eth_logo.svg", Balance: "2.5", USDValue: "$5,750.00"},
	{Symbol: "BTC", Name: "Bitcoin", Icon: "/coins/bitcoin-logo.svg", Balance: "0.15", USDValue: "$6,450.00"},
	{Symbol: "BNB", Name: "Binance Coin", Icon: "/coins/bnb.svg", Balance: "5.2", USDValue: "$1,560.00"},
	{Symbol: "MATIC", Name: "Polygon", Icon: "/coins/matic.svg", Balance: "1,200.00", USDValue: "$840.00"},
}

var Networks = []Network{
	{ID: "ethereum", Name: "Ethereum", Icon: "/networks/eth.png", ChainID: 1},
	{ID: "polygon", Name: "Polygon", Icon: "/networks/poligon.png", ChainID: 137},
	{ID: "bsc", Name: "BSC", Icon: "/networks/bsc.png", ChainID: 56},
	{ID: "arbitrum", Name: "Arbitrum", Icon: "/networks/arbitrum.png", ChainID: 42161},
	{ID: "optimism", Name: "Optimism", Icon: "/networks/op.png", ChainID: 10},
	{ID: "avalanche", Name: "Avalanche", Icon: "/networks/avalanche.png", ChainID: 43114},
	{ID: "solana", Name: "Solana", Icon: "/networks/sol.png", ChainID: 101},
}

var GasPriorities = []string{"Fast", "Standard", "Slow"}

var PrivacyLevels = []string{"High Privacy", "Medium Privacy", "Standard"}

func TokenBySymbol(symbol string) (Token, bool) {
	for _, t := range Tokens {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}

// NetworkByName matches on display name or id, case-insensitively.
func NetworkByName(name string) (Network, bool) {
	for _, n := range Networks {
		if strings.EqualFold(n.Name, name) || strings.EqualFold(n.ID, name) {
			return n, true
		}
	}
	return Network{}, false
}
