package motif

import (
	"context"
	"math/rand"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
)

// ErrSynthesisFailed is returned when the synthesizer exhausts its
// trial budget without hitting the target instance count exactly.
// Failure is a normal outcome of the hill-climb, not an exceptional
// one; samplers record it and move on.
var ErrSynthesisFailed = errors.Errorf("null model synthesis failed to reach the target instance count")

// Synthesize builds a random graph on nodes vertices containing
// exactly target unique instances of p, by stochastic accept/reject
// hill-climbing: starting from the empty graph it throws batches of
// randomly placed pattern copies at a candidate, keeps the candidate
// when the instance count moves toward the target, and shrinks the
// batch as it closes in. maxTrials bounds the consecutive
// no-progress iterations at the minimum batch size; ctx cancels the
// climb early (the instance recount makes each iteration expensive
// on dense candidates).
func Synthesize(ctx context.Context, rng *rand.Rand, nodes int, directed bool, p *Pattern, target, maxTrials int) (*graph.Graph, error) {
	if target == 0 {
		return graph.Build(nodes, directed).Build(), nil
	}
	b := graph.Build(nodes, directed)
	cur := 0
	add := max(1, target/5)
	trials := 0
	for trials < maxTrials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cand := b.Clone()
		for k := 0; k < add; k++ {
			placeCopy(rng, cand, p)
		}
		count := Find(cand.Build(), p).Count()
		switch {
		case count == target:
			return cand.Build().Simplify(), nil
		case count < target && count != cur:
			b = cand
			cur = count
			add = min(add, max(1, (target-count)/3))
			trials = 0
		default:
			// overshoot or no progress
			add /= 3
			if add == 0 {
				add = 1
				trials++
			}
		}
	}
	return nil, ErrSynthesisFailed
}

// placeCopy adds one copy of the pattern's edge set to the builder
// under an independently drawn uniform assignment of pattern vertices
// to node ids. Collisions produce self loops and duplicate edges;
// those are transient and fall out at the simplify step.
func placeCopy(rng *rand.Rand, b *graph.Builder, p *Pattern) {
	assign := make([]int, p.Size())
	for i := range assign {
		assign[i] = rng.Intn(b.N)
	}
	for _, e := range p.G.E {
		b.AddEdge(assign[e.Src], assign[e.Targ])
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
