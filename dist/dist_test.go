package dist

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestNew(t *testing.T) {
	is := is.New(t)
	is.Equal(New().Values(), []float64{0})
	is.Equal(New(0.5, 0.5).Values(), []float64{0.5, 0.5})
}

func TestAddSub(t *testing.T) {
	is := is.New(t)
	d1 := New(0.75, 0.25)
	d2 := New(0.7, 0.2, 0.1)
	is.True(allClose(d1.Add(d2).Values(), []float64{1.45, 0.45, 0.1}))
	is.True(allClose(d2.Add(d1).Values(), []float64{1.45, 0.45, 0.1}))
	is.True(allClose(d1.Sub(d2).Values(), []float64{0.05, 0.05, -0.1}))
	is.True(allClose(d2.Sub(d1).Values(), []float64{-0.05, -0.05, 0.1}))
	// operands unchanged
	is.True(allClose(d1.Values(), []float64{0.75, 0.25}))
	is.True(allClose(d2.Values(), []float64{0.7, 0.2, 0.1}))
}

func TestScaleDiv(t *testing.T) {
	is := is.New(t)
	d := New(0.75, 0.25)
	is.True(allClose(d.Scale(2).Values(), []float64{1.5, 0.5}))
	is.True(allClose(d.Div(5).Values(), []float64{0.15, 0.05}))
}

func TestIncreaseCounts(t *testing.T) {
	is := is.New(t)
	d := New(0.75, 0.25)
	is.True(allClose(d.IncreaseCounts(2).Values(), []float64{0, 0, 0.75, 0.25}))
}

func TestIsNormalized(t *testing.T) {
	is := is.New(t)
	is.True(New(0.75, 0.25).IsNormalized())
	is.True(!New(0.1, 0.2).IsNormalized())
	is.True(!New().IsNormalized())
}

func TestExpectedValue(t *testing.T) {
	is := is.New(t)
	is.True(math.Abs(New(0.75, 0.25).ExpectedValue()-0.25) < 1e-12)
	is.True(math.Abs(New(0, 0.2, 0.8).ExpectedValue()-1.8) < 1e-12)
	is.True(math.Abs(New(0, 0, 1).ExpectedValue()-2) < 1e-12)
}

func TestAppend(t *testing.T) {
	is := is.New(t)
	d := New(0.1, 0.2)
	is.True(allClose(d.Append(0.3, 0.4).Values(), []float64{0.1, 0.2, 0.3, 0.4}))
}
