package cli

import (
	"context"

	"github.com/katalvlaran/dtmc/internal/matrixfile"
	"github.com/katalvlaran/dtmc/markov"
	"github.com/katalvlaran/dtmc/matrix"
)

// loadChain reads path and validates it as a chain, applying --epsilon.
func loadChain(ctx context.Context, g *globalOpts, path string) (*matrixfile.Document, *markov.Chain, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := matrixfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	var opts []matrix.Option
	if g.epsilon > 0 {
		opts = append(opts, matrix.WithEpsilon(g.epsilon))
	}
	c, err := doc.Chain(opts...)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("loaded chain", "file", path, "name", doc.Name, "states", c.N(), "epsilon", c.Epsilon())
	prog.done("validated transition matrix")

	return doc, c, nil
}

// labels returns the state names of doc in the order given by perm.
func labels(doc *matrixfile.Document, perm markov.Permutation) []string {
	out := make([]string, len(perm))
	for i, s := range perm {
		out[i] = doc.Label(s)
	}
	return out
}
