package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/dtmc/markov"
)

// DefaultPrecision is the number of significant digits in edge labels.
const DefaultPrecision = 3

// Options configures DOT output.
type Options struct {
	// Labels names the states; missing or empty entries fall back to the index.
	Labels []string
	// Precision is the number of significant digits in edge labels
	// (DefaultPrecision when ≤ 0).
	Precision int
	// NoClusters draws states without class clusters.
	NoClusters bool
}

// ToDOT converts the chain's transition graph to Graphviz DOT.
// Output is deterministic: classes, states and edges appear in index order.
func ToDOT(c *markov.Chain, opts Options) string {
	prec := opts.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	absorbing := make(map[int]bool)
	for _, s := range c.AbsorbingStates() {
		absorbing[s] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for k, cl := range c.CommunicatingClasses() {
		indent := "  "
		if !opts.NoClusters {
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", k)
			fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("%s class %d", cl.Kind, k))
			buf.WriteString("    style=dashed;\n")
			indent = "    "
		}
		for _, s := range cl.States {
			fmt.Fprintf(&buf, "%s%q [%s];\n", indent, nodeID(s), nodeAttrs(s, cl.Kind, absorbing[s], opts.Labels))
		}
		if !opts.NoClusters {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("\n")
	g := c.Graph()
	for u := 0; u < c.N(); u++ {
		for _, v := range g.Successors(u) {
			p, _ := c.At(u, v)
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", nodeID(u), nodeID(v), strconv.FormatFloat(p, 'g', prec, 64))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(s int) string { return "s" + strconv.Itoa(s) }

func nodeAttrs(s int, kind markov.Kind, absorbing bool, labels []string) string {
	label := strconv.Itoa(s)
	if s < len(labels) && labels[s] != "" {
		label = labels[s]
	}
	attrs := fmt.Sprintf("label=%q", label)
	if kind == markov.Recurrent {
		attrs += ", fillcolor=lightblue"
	}
	if absorbing {
		attrs += ", shape=doublecircle"
	}

	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
