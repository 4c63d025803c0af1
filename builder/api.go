// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// api.go - public entry points.
//
// Design contract:
//   • One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   • Factories return Constructor closures; implementations live in impl_*.go.
//   • Same constructor, parameters and seed ⇒ identical matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dtmc/markov"
	"github.com/katalvlaran/dtmc/matrix"
)

// Constructor produces a transition matrix from the resolved configuration.
// Constructors validate parameters first and return wrapped sentinels; they
// never panic.
type Constructor func(cfg builderConfig) ([][]float64, error)

// Build resolves opts and runs con.
// Errors are wrapped with "Build: %w".
func Build(con Constructor, opts ...BuilderOption) ([][]float64, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrUnknownModel)
	}
	rows, err := con(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return rows, nil
}

// BuildChain runs Build and validates the result with markov.New.
// bopts configure the generator, mopts the chain (e.g. matrix.WithEpsilon).
func BuildChain(con Constructor, bopts []BuilderOption, mopts ...matrix.Option) (*markov.Chain, error) {
	rows, err := Build(con, bopts...)
	if err != nil {
		return nil, err
	}
	c, err := markov.New(rows, mopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildChain: %w", err)
	}

	return c, nil
}
