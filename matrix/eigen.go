// SPDX-License-Identifier: MIT
// Jacobi eigensolver for symmetric matrices.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi
// rotations.
//
// Stage 1 (Validate): square, finite tol, symmetric within tol.
// Stage 2 (Rotate): repeatedly pick (p,q) with the largest |A[p,q]| in i→j
// order and zero it with a Jacobi rotation accumulated into Q.
// Stage 3 (Finalize): sort eigenvalues descending, reordering the columns
// of Q with them; ties keep their diagonal order.
//
// Returns the eigenvalues and Q whose column k is the eigenvector of value k.
// Errors: ErrNonSquare, ErrAsymmetry, ErrNaNInf, ErrEigenFailed (largest
// off-diagonal still >= tol after maxIter rotations).
// Complexity: O(maxIter * n²) time, O(n²) space.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if m == nil {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrBadShape)
	}
	if err := validateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}
	tol = math.Abs(tol)

	n := m.r
	a := m.Clone()
	q, err := Identity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("Eigen: %w", err)
	}

	converged := false
	for iter := 0; ; iter++ {
		p, r, maxOff := pivot(a)
		if maxOff < tol || maxOff == 0 {
			converged = true
			break
		}
		if iter >= maxIter {
			break
		}
		rotate(a, q, p, r)
	}
	if !converged {
		return nil, nil, fmt.Errorf("Eigen: %w", ErrEigenFailed)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] > a.data[order[y]*n+order[y]]
	})

	vals := make([]float64, n)
	vecs, _ := NewDense(n, n)
	for k, src := range order {
		vals[k] = a.data[src*n+src]
		for i := 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+src]
		}
	}

	return vals, vecs, nil
}

// pivot returns the strict-upper-triangle entry with the largest magnitude.
func pivot(a *Dense) (p, q int, maxOff float64) {
	n := a.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return p, q, maxOff
}

// rotate zeroes A[p,q] and accumulates the rotation into Q.
func rotate(a, q *Dense, p, r int) {
	n := a.r
	app, arr, apr := a.data[p*n+p], a.data[r*n+r], a.data[p*n+r]

	theta := (arr - app) / (2 * apr)
	t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1.0 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == r {
			continue
		}
		aip, air := a.data[i*n+p], a.data[i*n+r]
		newP := c*aip - s*air
		newR := s*aip + c*air
		a.data[i*n+p], a.data[p*n+i] = newP, newP
		a.data[i*n+r], a.data[r*n+i] = newR, newR
	}
	a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
	a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
	a.data[p*n+r], a.data[r*n+p] = 0, 0

	for i := 0; i < n; i++ {
		qip, qir := q.data[i*n+p], q.data[i*n+r]
		q.data[i*n+p] = c*qip - s*qir
		q.data[i*n+r] = s*qip + c*qir
	}
}
