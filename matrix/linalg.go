// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernels used by the chain
// analysis: element-wise Sub, Transpose, Mul, MatVec, partially pivoted LU
// (Solve/Inverse) and column-pivoted Householder least squares.
//
// Determinism:
//   - Fixed loop orders everywhere; pivot ties resolve to the lowest index.
//   - Inputs are never mutated; every kernel allocates its result.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator for dot products and substitutions.
const ZeroSum = 0.0

const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opLstsq     = "LeastSquares"
	opVStack    = "AppendRow"
)

// asDense returns m as *Dense, copying through At for foreign implementations.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := newDenseZeroOK(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Sub computes the element-wise difference C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, matrixErrorf(opSub, ErrDimensionMismatch)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := ad.copyDense()
	for k := range out.data {
		out.data[k] -= bd.data[k]
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := newDenseZeroOK(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out.validateNaNInf = md.validateNaNInf
	var i, j int
	for i = 0; i < md.r; i++ {
		for j = 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// Mul performs the matrix product C = A × B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c); i→k→j loop order for row-major locality.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := newDenseZeroOK(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik float64
	for i = 0; i < ad.r; i++ {
		for k = 0; k < ad.c; k++ {
			aik = ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, md.r)
	var i, j int
	var s float64
	for i = 0; i < md.r; i++ {
		s = ZeroSum
		for j = 0; j < md.c; j++ {
			s += md.data[i*md.c+j] * x[j]
		}
		y[i] = s
	}

	return y, nil
}

// AppendRow returns a new (r+1)×c Dense equal to m with row appended at the bottom.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(row) != Cols).
func AppendRow(m Matrix, row []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	if len(row) != m.Cols() {
		return nil, matrixErrorf(opVStack, ErrDimensionMismatch)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	out, err := newDenseZeroOK(md.r+1, md.c)
	if err != nil {
		return nil, matrixErrorf(opVStack, err)
	}
	copy(out.data, md.data)
	copy(out.data[md.r*md.c:], row)

	return out, nil
}

// LUFactors holds P·A = L·U in packed form: strict lower part of lu is L
// (unit diagonal implied), upper part including the diagonal is U, and
// piv[i] is the original row placed at position i.
type LUFactors struct {
	lu  *Dense
	piv []int
}

// LU computes the partially pivoted Doolittle factorization P·A = L·U.
//
// Implementation:
//   - Stage 1: validate non-nil and square; copy A.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (i ≥ k,
//     lowest index on ties), swap, then eliminate below the pivot.
//
// Behavior highlights:
//   - A pivot with |p| ≤ pivotTol·max|A| is reported as ErrSingular.
//   - A zero matrix is singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	o := NewOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a := md.copyDense()
	n := a.r
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	thresh := o.pivotTol * a.MaxAbs()

	var (
		i, j, k, p int
		best, f    float64
		d          = a.data
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		best = math.Abs(d[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(d[i*n+k]); v > best {
				best, p = v, i
			}
		}
		if best == 0 || best <= thresh {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				d[k*n+j], d[p*n+j] = d[p*n+j], d[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}
		for i = k + 1; i < n; i++ {
			f = d[i*n+k] / d[k*n+k]
			d[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				d[i*n+j] -= f * d[k*n+j]
			}
		}
	}

	return &LUFactors{lu: a, piv: piv}, nil
}

// Solve returns x with A·x = b using the stored factors.
// Errors: ErrDimensionMismatch when len(b) != n.
// Complexity: O(n^2).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	d := f.lu.data
	x := make([]float64, n)
	var i, k int
	var s float64
	// Forward substitution on the permuted right-hand side: L·y = P·b.
	for i = 0; i < n; i++ {
		s = b[f.piv[i]]
		for k = 0; k < i; k++ {
			s -= d[i*n+k] * x[k]
		}
		x[i] = s
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		s = x[i]
		for k = i + 1; k < n; k++ {
			s -= d[i*n+k] * x[k]
		}
		x[i] = s / d[i*n+i]
	}

	return x, nil
}

// Solve factorizes a and solves a·x = b.
// Errors: as LU and LUFactors.Solve.
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse computes A⁻¹ by solving A·x = e_col for every basis column with a
// single pivoted LU factorization.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - When only A⁻¹·b is needed, call Solve; forming the inverse is the
//     expensive path.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.lu.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// LeastSquares minimizes ‖A·x − b‖₂ for an m×n matrix A using Householder QR
// with column pivoting.
//
// Implementation:
//   - Stage 1: copy A and b; scale = largest column norm of A.
//   - Stage 2: for k = 0..min(m,n)-1 bring the column with the largest
//     remaining norm to position k; stop when that norm ≤ pivotTol·scale
//     (numerical rank reached); reflect A[k:,k:] and b[k:].
//   - Stage 3: back-substitute R₁₁·z = (Qᵀb)₁ over the first rank columns,
//     set the remaining unknowns to zero and undo the column permutation.
//
// Behavior highlights:
//   - Full column rank: the unique least-squares solution.
//   - Rank deficient: the basic solution (rank non-zero unknowns); not the
//     minimum-norm solution.
//
// Returns:
//   - x (length n) and the numerical rank.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(b) != m), ErrSingular when A is
//     numerically zero.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(m·n).
func LeastSquares(a Matrix, b []float64, opts ...Option) ([]float64, int, error) {
	o := NewOptions(opts...)
	if err := ValidateNotNil(a); err != nil {
		return nil, 0, matrixErrorf(opLstsq, err)
	}
	if len(b) != a.Rows() {
		return nil, 0, matrixErrorf(opLstsq, ErrDimensionMismatch)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, 0, matrixErrorf(opLstsq, err)
	}
	w := ad.copyDense()
	rows, cols := w.r, w.c
	d := w.data
	rhs := make([]float64, rows)
	copy(rhs, b)
	perm := make([]int, cols)
	for j := range perm {
		perm[j] = j
	}

	colNorm := func(j, from int) float64 {
		var s float64
		for i := from; i < rows; i++ {
			s += d[i*cols+j] * d[i*cols+j]
		}
		return math.Sqrt(s)
	}

	var scale float64
	for j := 0; j < cols; j++ {
		if v := colNorm(j, 0); v > scale {
			scale = v
		}
	}
	if scale == 0 {
		return nil, 0, matrixErrorf(opLstsq, ErrSingular)
	}
	thresh := o.pivotTol * scale

	var (
		i, j, k, p       int
		norm, best       float64
		alpha, beta, tau float64
		s                float64
		v                = make([]float64, rows)
		rank             int
		steps            = min(rows, cols)
	)
	for k = 0; k < steps; k++ {
		// Column pivoting on remaining norms.
		p, best = k, colNorm(k, k)
		for j = k + 1; j < cols; j++ {
			if nv := colNorm(j, k); nv > best {
				p, best = j, nv
			}
		}
		if best <= thresh {
			break
		}
		if p != k {
			for i = 0; i < rows; i++ {
				d[i*cols+k], d[i*cols+p] = d[i*cols+p], d[i*cols+k]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Householder vector for A[k:,k].
		norm = best
		alpha = -math.Copysign(norm, d[k*cols+k])
		for i = k; i < rows; i++ {
			v[i] = d[i*cols+k]
		}
		v[k] -= alpha
		beta = ZeroSum
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		rank = k + 1
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Apply H = I − τ·v·vᵀ to the trailing columns and to the right-hand side.
		for j = k; j < cols; j++ {
			s = ZeroSum
			for i = k; i < rows; i++ {
				s += v[i] * d[i*cols+j]
			}
			for i = k; i < rows; i++ {
				d[i*cols+j] -= tau * v[i] * s
			}
		}
		s = ZeroSum
		for i = k; i < rows; i++ {
			s += v[i] * rhs[i]
		}
		for i = k; i < rows; i++ {
			rhs[i] -= tau * v[i] * s
		}
	}

	// Back substitution over the leading rank×rank block of R.
	z := make([]float64, cols)
	for i = rank - 1; i >= 0; i-- {
		s = rhs[i]
		for j = i + 1; j < rank; j++ {
			s -= d[i*cols+j] * z[j]
		}
		z[i] = s / d[i*cols+i]
	}
	x := make([]float64, cols)
	for j = 0; j < cols; j++ {
		x[perm[j]] = z[j]
	}

	return x, rank, nil
}
