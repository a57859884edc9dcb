package motif

import ()

import (
	"github.com/timtadh/data-structures/errors"
)

// ErrUndefined is returned when a coefficient does not exist: with
// fewer than two unique instances there are no pairs to share
// vertices. Callers must treat it as a non-result, not a zero.
var ErrUndefined = errors.Errorf("motif clustering coefficient undefined, fewer than 2 unique instances")

// Coefficient computes the motif clustering coefficient: the fraction
// of the theoretically possible vertex sharing between instance pairs
// that the host actually realizes.
//
// It works on the cleaned raw list rather than the unique list so the
// pattern's symmetry never has to be materialized: each true instance
// appears Rot times in the raw list, so each true pair of instances
// appears Rot^2 times and the pair total is rescaled by that factor.
// Pairs that share the full vertex set are raw duplicates of a single
// instance and are skipped.
func Coefficient(in *Instances) (float64, error) {
	size := in.P.Size()
	uniqueCount := in.Count()
	if uniqueCount < 2 {
		return 0, ErrUndefined
	}
	totalShared := 0
	for i := 0; i < len(in.Raw); i++ {
		if in.Raw[i][0] == -1 {
			continue
		}
		for j := i + 1; j < len(in.Raw); j++ {
			if in.Raw[j][0] == -1 {
				continue
			}
			found := in.Raw[i].SharedWith(in.Raw[j])
			if found < size {
				totalShared += found
			}
		}
	}
	rot := in.P.Rot
	actualShared := float64(totalShared) / float64(rot*rot)
	pairs := uniqueCount * (uniqueCount - 1) / 2
	possibleShared := float64((size - 1) * pairs)
	return actualShared / possibleShared, nil
}
