package motif

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/BiocomputeLab/mctools/graph"
)

// ErrNoValidSamples is returned when every synthesis trial failed; a
// z-score over an empty distribution is undefined and must not be
// silently computed.
var ErrNoValidSamples = errors.Errorf("no null model sample succeeded, z-score undefined")

// Sample is the result of scoring a host against a null model
// distribution. Coefficients holds one entry per trial, -1 marking a
// failed synthesis; failed trials are excluded from the statistics
// without discarding the successful ones.
type Sample struct {
	Observed     float64
	Coefficients []float64
	Z            float64
	Failed       int
}

// SampleZ scores host against samples random graphs matched on node
// count and unique instance count of p. Trials are independent and
// run on workers goroutines (NumCPU when workers <= 0), each with its
// own deterministically derived random stream so parallel runs stay
// reproducible for a given seed. maxTrials bounds each synthesis;
// ctx cancels the whole run.
func SampleZ(ctx context.Context, host *graph.Graph, p *Pattern, samples, maxTrials, workers int, seed int64, debug int) (*Sample, error) {
	in := Find(host, p)
	observed, err := Coefficient(in)
	if err != nil {
		return nil, err
	}
	target := in.Count()
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	coefficients := make([]float64, samples)
	trialCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	trials := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range trials {
				coefficients[idx] = trial(trialCtx, host, p, target, maxTrials, seed+int64(idx), debug)
			}
		}()
	}
feed:
	for idx := 0; idx < samples; idx++ {
		select {
		case trials <- idx:
		case <-trialCtx.Done():
			break feed
		}
	}
	close(trials)
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	failed := 0
	for _, c := range coefficients {
		if c < 0 {
			failed++
		}
	}
	z, err := ZScore(observed, coefficients)
	if err != nil {
		return nil, err
	}
	return &Sample{
		Observed:     observed,
		Coefficients: coefficients,
		Z:            z,
		Failed:       failed,
	}, nil
}

// trial synthesizes and scores one null model graph; any failure
// (synthesis budget, degenerate coefficient) yields the -1 sentinel.
func trial(ctx context.Context, host *graph.Graph, p *Pattern, target, maxTrials int, seed int64, debug int) float64 {
	rng := rand.New(rand.NewSource(seed))
	g, err := Synthesize(ctx, rng, host.N, host.Directed, p, target, maxTrials)
	if err != nil {
		if debug > 0 {
			errors.Logf("DEBUG", "sample trial seed %v failed: %v", seed, err)
		}
		return -1
	}
	c, err := Coefficient(Find(g, p))
	if err != nil {
		if debug > 0 {
			errors.Logf("DEBUG", "sample trial seed %v degenerate: %v", seed, err)
		}
		return -1
	}
	if debug > 1 {
		errors.Logf("DEBUG", "sample trial seed %v coefficient %v", seed, c)
	}
	return c
}

// ZScore standardizes observed against the valid (non-sentinel)
// entries of samples using the population variance. A zero-variance
// distribution yields an infinite score, which is the honest answer
// when every sample landed on the same coefficient.
func ZScore(observed float64, samples []float64) (float64, error) {
	n := 0
	sum := 0.0
	sumSq := 0.0
	for _, c := range samples {
		if c < 0 {
			continue
		}
		n++
		sum += c
		sumSq += c * c
	}
	if n == 0 {
		return 0, ErrNoValidSamples
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	return (observed - mean) / math.Sqrt(variance), nil
}
