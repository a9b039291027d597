package params

// ComputeStrategy derives an optimal tree-traversal strategy for an
// n-leaf isogeny tree under a cost model: p is the cost of one
// multiplication-by-ℓ step, q the cost of one ℓ-isogeny evaluation. The
// result lists the split point of every internal node in pre-order and
// has length n-1. The static tables shipped with the parameter sets were
// produced by this routine with the implementation's field-operation
// counts; callers with different cost ratios can roll their own.
func ComputeStrategy(n int, p, q uint64) []int {
	if n < 1 {
		return nil
	}
	strategies := make([][]int, n+1)
	costs := make([]uint64, n+1)
	strategies[1] = []int{}

	for i := 2; i <= n; i++ {
		bestSplit, bestCost := 1, uint64(0)
		for b := 1; b < i; b++ {
			c := costs[i-b] + costs[b] + uint64(b)*p + uint64(i-b)*q
			if b == 1 || c < bestCost {
				bestSplit, bestCost = b, c
			}
		}
		s := make([]int, 0, i-1)
		s = append(s, bestSplit)
		s = append(s, strategies[i-bestSplit]...)
		s = append(s, strategies[bestSplit]...)
		strategies[i] = s
		costs[i] = bestCost
	}
	return strategies[n]
}

// Cost model used to produce the shipped tables, in F_p² multiplications
// and squarings: a mul-by-4 step is two doublings, a tripling and a
// 4-isogeny or 3-isogeny evaluation cost what the formulas spend.
const (
	costDoubleStep = 12 // two xDBL
	costQuadEval   = 8  // one 4-isogeny evaluation
	costTripleStep = 12 // one xTPL
	costTripleEval = 6  // one 3-isogeny evaluation
)

// TwoTorsionStrategy computes the strategy the shipped tables use for a
// 2^e2 walk of the given parameter set's height.
func (p *Params) TwoTorsionStrategy() []int {
	return ComputeStrategy(int(p.E2)/2, costDoubleStep, costQuadEval)
}

// ThreeTorsionStrategy computes the strategy the shipped tables use for a
// 3^e3 walk.
func (p *Params) ThreeTorsionStrategy() []int {
	return ComputeStrategy(int(p.E3), costTripleStep, costTripleEval)
}
