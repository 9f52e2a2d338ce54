package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MixtureLogLikelihood computes the total log-likelihood of a k-component
// mixture under hard cluster assignment.
//
// ls holds, per component (1-based keys 1..k), the likelihood of every
// observation under that component alone. clusters holds one component label
// per observation. The weight of each component is estimated empirically from
// the total probability mass it contributed across the whole batch, while the
// per-component log-likelihood sums only over the observations assigned to it.
// A component with no assigned observations still contributes exp(logw[k]).
// NOTE : the weights are not normalized across components; the estimator is
// kept as is.
//
// Zero likelihood values propagate as -Inf through the result. Inconsistent
// input lengths or labels violate the caller contract and panic.
func MixtureLogLikelihood(ls map[int][]float64, clusters []int, k int) float64 {
	n := len(clusters)
	if k < 1 {
		panic(fmt.Sprintf("invalid component count %d", k))
	}
	for c := 1; c <= k; c++ {
		l, ok := ls[c]
		if !ok || len(l) != n {
			panic(fmt.Sprintf("inconsistent likelihoods for component %d : %d vs %d", c, len(l), n))
		}
	}
	for i, c := range clusters {
		if c < 1 || c > k {
			panic(fmt.Sprintf("cluster label %d at %d outside of [1,%d]", c, i, k))
		}
	}

	if k == 1 {
		var sum float64
		for _, l := range ls[1] {
			sum += math.Log(l)
		}
		return sum
	}

	terms := make([]float64, k)
	for c := 1; c <= k; c++ {
		logw := math.Log(floats.Sum(ls[c])) - math.Log(float64(n))
		var loglik float64
		for i, cluster := range clusters {
			if cluster == c {
				loglik += math.Log(ls[c][i])
			}
		}
		terms[c-1] = logw + loglik
	}
	return floats.LogSumExp(terms)
}
