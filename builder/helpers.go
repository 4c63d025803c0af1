// SPDX-License-Identifier: MIT
// Package: dtmc/builder
//
// helpers.go - small matrix helpers shared by the generators.

package builder

// zeros allocates an n×n zero matrix as independent rows.
func zeros(n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return rows
}

// normalizeRows scales each row to sum to 1. Rows summing to zero become
// absorbing (P[i][i] = 1).
func normalizeRows(rows [][]float64) {
	var s float64
	for i, row := range rows {
		s = 0
		for _, v := range row {
			s += v
		}
		if s == 0 {
			row[i] = 1
			continue
		}
		for j := range row {
			row[j] /= s
		}
	}
}

// fixed deep-copies a literal matrix so callers may mutate the result.
func fixed(src [][]float64) [][]float64 {
	out := make([][]float64, len(src))
	for i, row := range src {
		out[i] = append([]float64(nil), row...)
	}

	return out
}
