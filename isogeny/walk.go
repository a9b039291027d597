package isogeny

// Large-degree isogeny computation. Both torsion sides offer two paths:
// the quadratic "multiply all the way down" loop and the strategy-driven
// traversal, which follows a precomputed sequence of tree split points.
// The strategy stack invariant: every live (height, point) pair holds a
// point of order ℓ^height on the curve reached so far, where ℓ is 3 on the
// 3-torsion side and 4 on the 2-torsion side (each leaf is a 4-isogeny).

type walkPair struct {
	h uint
	p Point
}

// Iso2E computes the 2^e2 isogeny generated by s on the curve given in
// (A+2C : 4C) form, pushing every auxiliary point through it. The image
// curve (still in plus form) and the pushed points are returned. The
// parameter set's traversal table is used when present, the naive loop
// otherwise.
func (e *Engine) Iso2E(s Point, aux []Point, plus Curve) (Curve, []Point, error) {
	if e.prm.Strategy2 == nil {
		return e.iso2eNaive(s, aux, plus)
	}
	return e.iso2eStrategy(s, aux, plus, e.prm.Strategy2)
}

// Iso3E is the 3^e3 counterpart of Iso2E; the curve is given and returned
// in (A+2C : A-2C) form.
func (e *Engine) Iso3E(s Point, aux []Point, pm Curve) (Curve, []Point, error) {
	if e.prm.Strategy3 == nil {
		return e.iso3eNaive(s, aux, pm)
	}
	return e.iso3eStrategy(s, aux, pm, e.prm.Strategy3)
}

// oddStep handles an odd 2-exponent: a single genuine 2-isogeny consumes
// one doubling level before the 4-isogeny walk takes over.
func (e *Engine) oddStep(s Point, aux []Point, plus Curve, e2 uint) (Point, []Point, Curve, uint) {
	if e2%2 == 0 {
		return s, aux, plus, e2
	}
	e2--
	t := e.NDouble(s, e2, plus)
	plus = e.TwoIsogenyCurve(t)
	s = e.TwoIsogenyEval(t, s)
	for i := range aux {
		aux[i] = e.TwoIsogenyEval(t, aux[i])
	}
	return s, aux, plus, e2
}

func (e *Engine) iso2eNaive(s Point, aux []Point, plus Curve) (Curve, []Point, error) {
	aux = clonePoints(aux)
	s, aux, plus, e2 := e.oddStep(s, aux, plus, e.prm.E2)

	for step := int(e2) - 2; step >= 0; step -= 2 {
		t := e.NDouble(s, uint(step), plus)
		next, k1, k2, k3 := e.FourIsogenyCurve(t)
		plus = next
		s = e.FourIsogenyEval(k1, k2, k3, s)
		for i := range aux {
			aux[i] = e.FourIsogenyEval(k1, k2, k3, aux[i])
		}
	}
	return plus, aux, nil
}

func (e *Engine) iso2eStrategy(s Point, aux []Point, plus Curve, strategy []int) (Curve, []Point, error) {
	if len(strategy) != int(e.prm.E2)/2-1 {
		return Curve{}, nil, ErrInvalidStrategy
	}
	aux = clonePoints(aux)
	s, aux, plus, e2 := e.oddStep(s, aux, plus, e.prm.E2)

	stack := []walkPair{{h: e2 / 2, p: s}}
	i := 1
	for len(stack) > 0 {
		split := 1
		if i <= len(strategy) {
			split = strategy[i-1]
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top.h == 1:
			next, k1, k2, k3 := e.FourIsogenyCurve(top.p)
			plus = next
			for j := range stack {
				stack[j] = walkPair{h: stack[j].h - 1, p: e.FourIsogenyEval(k1, k2, k3, stack[j].p)}
			}
			for j := range aux {
				aux[j] = e.FourIsogenyEval(k1, k2, k3, aux[j])
			}
		case top.h > uint(split):
			stack = append(stack, top)
			left := e.NDouble(top.p, 2*uint(split), plus)
			stack = append(stack, walkPair{h: top.h - uint(split), p: left})
			i++
		default:
			return Curve{}, nil, ErrInvalidStrategy
		}
	}
	return plus, aux, nil
}

func (e *Engine) iso3eNaive(s Point, aux []Point, pm Curve) (Curve, []Point, error) {
	aux = clonePoints(aux)
	for step := int(e.prm.E3) - 1; step >= 0; step-- {
		t := e.NTriple(s, uint(step), pm)
		next, k1, k2 := e.ThreeIsogenyCurve(t)
		pm = next
		s = e.ThreeIsogenyEval(k1, k2, s)
		for i := range aux {
			aux[i] = e.ThreeIsogenyEval(k1, k2, aux[i])
		}
	}
	return pm, aux, nil
}

func (e *Engine) iso3eStrategy(s Point, aux []Point, pm Curve, strategy []int) (Curve, []Point, error) {
	if len(strategy) != int(e.prm.E3)-1 {
		return Curve{}, nil, ErrInvalidStrategy
	}
	aux = clonePoints(aux)

	stack := []walkPair{{h: e.prm.E3, p: s}}
	i := 1
	for len(stack) > 0 {
		split := 1
		if i <= len(strategy) {
			split = strategy[i-1]
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top.h == 1:
			next, k1, k2 := e.ThreeIsogenyCurve(top.p)
			pm = next
			for j := range stack {
				stack[j] = walkPair{h: stack[j].h - 1, p: e.ThreeIsogenyEval(k1, k2, stack[j].p)}
			}
			for j := range aux {
				aux[j] = e.ThreeIsogenyEval(k1, k2, aux[j])
			}
		case top.h > uint(split):
			stack = append(stack, top)
			left := e.NTriple(top.p, uint(split), pm)
			stack = append(stack, walkPair{h: top.h - uint(split), p: left})
			i++
		default:
			return Curve{}, nil, ErrInvalidStrategy
		}
	}
	return pm, aux, nil
}

func clonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
