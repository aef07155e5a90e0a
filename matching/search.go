// SPDX-License-Identifier: MIT

package matching

import "math"

// augment runs a depth-first alternating-path search rooted at row r.
//
// Every unvisited column is examined in increasing index order. A column whose
// reduced weight u[r]+v[j]-C[r][j] is at least eps in magnitude only tightens
// slack[j]. An admissible column is claimed when it is free, or when the row
// currently holding it can be re-routed by a recursive search; the first
// success rewrites match along the path and returns true.
//
// Recursion depth is bounded by n (each call visits a new row).
func (s *solver) augment(r int) bool {
	s.rowVisited[r] = true
	row := s.c[r*s.n : (r+1)*s.n]
	ur := s.u[r]

	var gap float64
	for j := 0; j < s.n; j++ {
		if s.colVisited[j] {
			continue
		}
		gap = ur + s.v[j] - row[j]
		if math.Abs(gap) >= s.eps {
			if gap < s.slack[j] {
				s.slack[j] = gap
			}
			continue
		}

		s.colVisited[j] = true
		if s.match[j] == Unmatched || s.augment(s.match[j]) {
			s.match[j] = r
			return true
		}
	}

	return false
}
