package trace

import (
	"testing"

	"github.com/cwbudde/algo-osc/osc/fixp"
	"github.com/cwbudde/algo-osc/osc/shape"
)

// quadrature plays the raw sine primitive on both channels for spectral
// reference measurements.
type quadrature struct{}

func (quadrature) Compute(ph uint32, _, _ int32) (int32, int32) {
	return fixp.Sine(ph), fixp.Cosine(ph)
}

func TestRenderValidation(t *testing.T) {
	if _, _, err := Render(nil, 16, 0, 0); err == nil {
		t.Error("expected error for nil oscillator")
	}
	if _, _, err := Render(quadrature{}, 0, 0, 0); err == nil {
		t.Error("expected error for zero samples")
	}
}

func TestRenderOneCycle(t *testing.T) {
	left, right, err := Render(quadrature{}, 1024, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1024 || len(right) != 1024 {
		t.Fatalf("got %d/%d samples", len(left), len(right))
	}
	for i, v := range left {
		if v < -1 || v > 1 {
			t.Fatalf("left[%d] = %f out of [-1, 1]", i, v)
		}
	}
	// one full cycle: the sine channel starts and ends near zero
	if left[0] != 0 {
		t.Errorf("left[0] = %f, want 0", left[0])
	}
}

// A single rendered cycle of the sine primitive concentrates its energy in
// bin 1 with almost no DC.
func TestAnalyzeSinePurity(t *testing.T) {
	left, _, err := Render(quadrature{}, 1024, 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	res, err := Analyze(left)
	if err != nil {
		t.Fatal(err)
	}
	if res.FundamentalBin != 1 {
		t.Errorf("fundamental at bin %d, want 1", res.FundamentalBin)
	}
	if res.DCOffset > 0.01 || res.DCOffset < -0.01 {
		t.Errorf("DC offset %f, want ~0", res.DCOffset)
	}
	if res.Peak < 0.9 || res.Peak > 1 {
		t.Errorf("peak %f, want just under 1", res.Peak)
	}
}

func TestAnalyzeShapesStayBounded(t *testing.T) {
	for name, o := range map[string]shape.Oscillator{
		"yinyang":     shape.NewYinYang(),
		"cube":        shape.NewCube(),
		"calligraphy": shape.NewCalligraphy(),
	} {
		left, right, err := Render(o, 2048, 4095, 2048)
		if err != nil {
			t.Fatal(err)
		}
		for _, ch := range [][]float64{left, right} {
			res, err := Analyze(ch)
			if err != nil {
				t.Fatal(err)
			}
			if res.Peak > 1 {
				t.Errorf("%s: peak %f above full scale", name, res.Peak)
			}
		}
	}
}
