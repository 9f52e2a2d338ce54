package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	type test struct {
		values   []float64
		avg      float64
		sum      float64
		min      float64
		max      float64
		variance float64
	}

	tests := map[string]test{
		"constant": {
			values:   []float64{2, 2, 2, 2},
			avg:      2,
			sum:      8,
			min:      2,
			max:      2,
			variance: 0,
		},
		"symmetric": {
			values:   []float64{-1, 0, 1},
			avg:      0,
			sum:      0,
			min:      -1,
			max:      1,
			variance: 2.0 / 3,
		},
		"mixed": {
			values:   []float64{1, 2, 3, 4},
			avg:      2.5,
			sum:      10,
			min:      1,
			max:      4,
			variance: 1.25,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for _, v := range tt.values {
				stats.Push(v)
			}
			assert.Equal(t, len(tt.values), stats.Count())
			assert.InDelta(t, tt.avg, stats.Avg(), 1e-10)
			assert.InDelta(t, tt.sum, stats.Sum(), 1e-10)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
			assert.InDelta(t, tt.variance, stats.Variance(), 1e-10)
		})
	}
}

func TestStatsCollector(t *testing.T) {
	collector := NewStatsCollector(2)

	collector.Push(1, 10)
	collector.Push(3, 30)

	assert.Equal(t, 2, collector.Size())
	assert.InDelta(t, 2, collector.Stats()[0].Avg(), 1e-10)
	assert.InDelta(t, 20, collector.Stats()[1].Avg(), 1e-10)

	assert.Panics(t, func() {
		collector.Push(1, 2, 3)
	})
}
