package eval

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/internal/buffer"
	"github.com/yuehhua/gmr/model"
)

// MSE is the mean squared prediction error of the regression model over the batch.
func MSE(m *model.Regression, x mat.Matrix, y []float64) float64 {
	stats := buffer.NewStats()
	for i := range y {
		res := m.Residual(mat.Row(nil, i, x), y[i])
		stats.Push(res * res)
	}
	return stats.Avg()
}
