// Package render draws the transition graph of a markov.Chain.
//
// ToDOT emits Graphviz DOT with one cluster per communicating class:
// recurrent classes are shaded, absorbing states get a double circle and
// every edge is labelled with its transition probability. RenderSVG lays the
// DOT out with the embedded Graphviz (github.com/goccy/go-graphviz).
package render
