package eval

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/model"
)

// Membership returns the n×K matrix of raw component densities,
// one row per observation and one column per component.
func Membership(m *model.GMR, x mat.Matrix) *mat.Dense {
	n, d := x.Dims()
	k := m.NumComponents()
	out := mat.NewDense(n, k, nil)
	row := make([]float64, d)
	for i := 0; i < n; i++ {
		mat.Row(row, i, x)
		for c := 1; c <= k; c++ {
			// component indices are range-checked at construction
			dist, _ := m.Component(c)
			out.Set(i, c-1, dist.Prob(row))
		}
	}
	return out
}

// ComponentMembership returns the density of the single component k at each
// row of x, for k in [1,K].
func ComponentMembership(m *model.GMR, k int, x mat.Matrix) ([]float64, error) {
	dist, err := m.Component(k)
	if err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = dist.Prob(mat.Row(nil, i, x))
	}
	return out, nil
}

// ComponentLikelihoods evaluates every component over the whole batch,
// keyed by 1-based component index as expected by MixtureLogLikelihood.
func ComponentLikelihoods(m *model.GMR, x mat.Matrix) map[int][]float64 {
	membership := Membership(m, x)
	n, k := membership.Dims()
	ls := make(map[int][]float64, k)
	for c := 1; c <= k; c++ {
		l := make([]float64, n)
		mat.Col(l, c-1, membership)
		ls[c] = l
	}
	return ls
}

// Assign hard-assigns each row of x to the component with the highest
// membership. Labels are 1-based.
func Assign(m *model.GMR, x mat.Matrix) []int {
	membership := Membership(m, x)
	n, _ := membership.Dims()
	clusters := make([]int, n)
	for i := 0; i < n; i++ {
		clusters[i] = floats.MaxIdx(membership.RawRowView(i)) + 1
	}
	return clusters
}

// GMRLogLikelihood is the total mixture log-likelihood of the model over the
// batch, with cluster assignment derived by argmax membership.
func GMRLogLikelihood(m *model.GMR, x mat.Matrix) float64 {
	return MixtureLogLikelihood(ComponentLikelihoods(m, x), Assign(m, x), m.NumComponents())
}
