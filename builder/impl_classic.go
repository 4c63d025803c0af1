// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// impl_classic.go - fixed textbook chains.

package builder

// stockMarket: bull, bear, stagnant.
var stockMarket = [][]float64{
	{0.9, 0.075, 0.025},
	{0.15, 0.8, 0.05},
	{0.25, 0.25, 0.5},
}

// simpleWeather: sunny, rainy.
var simpleWeather = [][]float64{
	{0.9, 0.1},
	{0.5, 0.5},
}

// landOfOz: rain, nice, snow (Kemeny, Snell & Thompson).
var landOfOz = [][]float64{
	{0.5, 0.25, 0.25},
	{0.5, 0, 0.5},
	{0.25, 0.25, 0.5},
}

// StockMarket returns the bull/bear/stagnant market chain.
// Stationary distribution: (0.625, 0.3125, 0.0625).
func StockMarket() Constructor {
	return func(builderConfig) ([][]float64, error) { return fixed(stockMarket), nil }
}

// SimpleWeather returns the two-state sunny/rainy chain.
func SimpleWeather() Constructor {
	return func(builderConfig) ([][]float64, error) { return fixed(simpleWeather), nil }
}

// LandOfOz returns the rain/nice/snow chain. It never has two nice days in
// a row. Stationary distribution: (0.4, 0.2, 0.4).
func LandOfOz() Constructor {
	return func(builderConfig) ([][]float64, error) { return fixed(landOfOz), nil }
}
