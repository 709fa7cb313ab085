// Package robust provides exact-sign geometric predicates on float64
// inputs. It implements Shewchuk's adaptive-precision orient2d: a fast
// floating-point evaluation backed by an exact expansion-arithmetic
// fallback whenever the fast result is within its error bound.
//
// The rest of the kernel uses the sign of Orient2D for winding
// classification and containment tests, where a misclassified sign near a
// boundary would flip triangles in or out of a face.
package robust

// Coord is a 2D coordinate passed to the predicates.
type Coord struct {
	X, Y float64
}

const (
	// epsilon is the largest power of two such that 1.0 + epsilon rounds
	// to 1.0 in float64 arithmetic.
	epsilon = 1.1102230246251565e-16

	// splitter is 2^27 + 1, used to split a float64 into two
	// half-precision halves with exact products.
	splitter = 134217729.0
)

var (
	resultErrBound = (3.0 + 8.0*epsilon) * epsilon
	ccwErrBoundA   = (3.0 + 16.0*epsilon) * epsilon
	ccwErrBoundB   = (2.0 + 12.0*epsilon) * epsilon
	ccwErrBoundC   = (9.0 + 64.0*epsilon) * epsilon * epsilon
)

// Orient2D returns a positive value if a, b, c occur in counter-clockwise
// order, a negative value if they occur in clockwise order, and zero if
// they are collinear. The sign of the result is exact.
func Orient2D(a, b, c Coord) float64 {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return det
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return det
		}
		detSum = -detLeft - detRight
	default:
		return det
	}

	errBound := ccwErrBoundA * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	return orient2DAdapt(a, b, c, detSum)
}

func orient2DAdapt(a, b, c Coord, detSum float64) float64 {
	acx := a.X - c.X
	bcx := b.X - c.X
	acy := a.Y - c.Y
	bcy := b.Y - c.Y

	detLeft, detLeftTail := twoProduct(acx, bcy)
	detRight, detRightTail := twoProduct(acy, bcx)

	var b4 [4]float64
	b4[3], b4[2], b4[1], b4[0] = twoTwoDiff(
		detLeft, detLeftTail, detRight, detRightTail,
	)

	det := estimate(b4[:])
	errBound := ccwErrBoundB * detSum
	if det >= errBound || -det >= errBound {
		return det
	}

	acxTail := twoDiffTail(a.X, c.X, acx)
	bcxTail := twoDiffTail(b.X, c.X, bcx)
	acyTail := twoDiffTail(a.Y, c.Y, acy)
	bcyTail := twoDiffTail(b.Y, c.Y, bcy)

	if acxTail == 0 && acyTail == 0 && bcxTail == 0 && bcyTail == 0 {
		return det
	}

	errBound = ccwErrBoundC*detSum + resultErrBound*abs(det)
	det += (acx*bcyTail + bcy*acxTail) - (acy*bcxTail + bcx*acyTail)
	if det >= errBound || -det >= errBound {
		return det
	}

	var u [4]float64
	var c1, c2, d [16]float64

	s1, s0 := twoProduct(acxTail, bcy)
	t1, t0 := twoProduct(acyTail, bcx)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c1Len := fastExpansionSumZeroElim(b4[:], u[:], c1[:])

	s1, s0 = twoProduct(acx, bcyTail)
	t1, t0 = twoProduct(acy, bcxTail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	c2Len := fastExpansionSumZeroElim(c1[:c1Len], u[:], c2[:])

	s1, s0 = twoProduct(acxTail, bcyTail)
	t1, t0 = twoProduct(acyTail, bcxTail)
	u[3], u[2], u[1], u[0] = twoTwoDiff(s1, s0, t1, t0)
	dLen := fastExpansionSumZeroElim(c2[:c2Len], u[:], d[:])

	return d[dLen-1]
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// twoSum computes a + b exactly as a sum x and roundoff y.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirt := x - a
	aVirt := x - bVirt
	bRound := b - bVirt
	aRound := a - aVirt

	return x, aRound + bRound
}

// twoDiff computes a - b exactly as a difference x and roundoff y.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b

	return x, twoDiffTail(a, b, x)
}

func twoDiffTail(a, b, x float64) float64 {
	bVirt := a - x
	aVirt := x + bVirt
	bRound := bVirt - b
	aRound := a - aVirt

	return aRound + bRound
}

// split splits a into two non-overlapping halves.
func split(a float64) (hi, lo float64) {
	c := splitter * a
	aBig := c - a
	hi = c - aBig

	return hi, a - hi
}

// twoProduct computes a * b exactly as a product x and roundoff y.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err1 := x - (aHi * bHi)
	err2 := err1 - (aLo * bHi)
	err3 := err2 - (aHi * bLo)

	return x, (aLo * bLo) - err3
}

// twoTwoDiff computes (a1, a0) - (b1, b0) as a four-component expansion,
// returned most-significant first.
func twoTwoDiff(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	// two_one_diff(a1, a0, b0) -> (j, r, x0)
	s, x0 := twoDiff(a0, b0)
	j, r := twoSum(a1, s)

	// two_one_diff(j, r, b1) -> (x3, x2, x1)
	s, x1 = twoDiff(r, b1)
	x3, x2 = twoSum(j, s)

	return x3, x2, x1, x0
}

// estimate returns an approximation of the value of an expansion.
func estimate(e []float64) float64 {
	q := e[0]
	for _, component := range e[1:] {
		q += component
	}

	return q
}

// fastExpansionSumZeroElim sums two expansions, eliminating zero
// components, and returns the length of the result written into h.
// Inputs must be nonoverlapping and in increasing order of magnitude.
func fastExpansionSumZeroElim(e, f, h []float64) int {
	var q, qNew, hh float64
	var eNow, fNow float64
	eIndex, fIndex := 0, 0

	eNow = e[0]
	fNow = f[0]
	if (fNow > eNow) == (fNow > -eNow) {
		q = eNow
		eIndex++
		if eIndex < len(e) {
			eNow = e[eIndex]
		}
	} else {
		q = fNow
		fIndex++
		if fIndex < len(f) {
			fNow = f[fIndex]
		}
	}

	hIndex := 0
	if eIndex < len(e) && fIndex < len(f) {
		if (fNow > eNow) == (fNow > -eNow) {
			qNew, hh = fastTwoSum(eNow, q)
			eIndex++
			if eIndex < len(e) {
				eNow = e[eIndex]
			}
		} else {
			qNew, hh = fastTwoSum(fNow, q)
			fIndex++
			if fIndex < len(f) {
				fNow = f[fIndex]
			}
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}

		for eIndex < len(e) && fIndex < len(f) {
			if (fNow > eNow) == (fNow > -eNow) {
				qNew, hh = twoSum(q, eNow)
				eIndex++
				if eIndex < len(e) {
					eNow = e[eIndex]
				}
			} else {
				qNew, hh = twoSum(q, fNow)
				fIndex++
				if fIndex < len(f) {
					fNow = f[fIndex]
				}
			}
			q = qNew
			if hh != 0 {
				h[hIndex] = hh
				hIndex++
			}
		}
	}

	for eIndex < len(e) {
		qNew, hh = twoSum(q, eNow)
		eIndex++
		if eIndex < len(e) {
			eNow = e[eIndex]
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
	}

	for fIndex < len(f) {
		qNew, hh = twoSum(q, fNow)
		fIndex++
		if fIndex < len(f) {
			fNow = f[fIndex]
		}
		q = qNew
		if hh != 0 {
			h[hIndex] = hh
			hIndex++
		}
	}

	if q != 0 || hIndex == 0 {
		h[hIndex] = q
		hIndex++
	}

	return hIndex
}

// fastTwoSum computes a + b exactly, assuming |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirt := x - a

	return x, b - bVirt
}
