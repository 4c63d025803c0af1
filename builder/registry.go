// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// registry.go - name-based lookup used by the command line.

package builder

import (
	"fmt"
	"sort"
)

// DefaultSparseProbability is the edge probability ByName uses for "sparse".
const DefaultSparseProbability = 0.3

// models maps a model name to a factory taking the size parameter n.
// Fixed-size models ignore n.
var models = map[string]func(n int) Constructor{
	"walk":      RandomWalk,
	"ehrenfest": Ehrenfest,
	"cycle":     Cycle,
	"complete":  Complete,
	"stock":     func(int) Constructor { return StockMarket() },
	"weather":   func(int) Constructor { return SimpleWeather() },
	"oz":        func(int) Constructor { return LandOfOz() },
	"random":    RandomDense,
	"sparse":    func(n int) Constructor { return RandomSparse(n, DefaultSparseProbability) },
}

// Models returns the names accepted by ByName, sorted.
func Models() []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ByName returns the Constructor registered under name, sized by n.
func ByName(name string, n int) (Constructor, error) {
	f, ok := models[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownModel)
	}

	return f(n), nil
}
