package cpu_test

import (
	"testing"

	"github.com/fitline-ml/fitline/backend/cpu"
	"github.com/fitline-ml/fitline/tensor"
)

func newRaw(t *testing.T, data []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func TestCPUBackend_Metadata(t *testing.T) {
	backend := cpu.New()
	if backend.Name() != "CPU" {
		t.Errorf("Name() = %s, want CPU", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", backend.Device())
	}
}

func TestCPUBackend_BinaryOps(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name string
		op   func(a, b *tensor.RawTensor) *tensor.RawTensor
		a, b []float64
		want []float64
	}{
		{"add", backend.Add, []float64{1, 2}, []float64{3, 4}, []float64{4, 6}},
		{"sub", backend.Sub, []float64{5, 7}, []float64{1, 2}, []float64{4, 5}},
		{"mul", backend.Mul, []float64{2, 3}, []float64{4, 5}, []float64{8, 15}},
		{"div", backend.Div, []float64{8, 9}, []float64{2, 3}, []float64{4, 3}},
	}

	for _, tt := range tests {
		// Keep a second reference alive so the inplace fast path stays off
		// and inputs remain inspectable.
		a := newRaw(t, tt.a)
		guard := a.Clone()
		b := newRaw(t, tt.b)

		got := tt.op(a, b).AsFloat64()
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s[%d] = %v, want %v", tt.name, i, got[i], tt.want[i])
			}
		}
		guard.Release()
	}
}

func TestCPUBackend_InplaceFastPath(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float64{1, 2})
	b := newRaw(t, []float64{10, 20})

	// a is the only reference: the backend may reuse its buffer.
	out := backend.Add(a, b)
	if out != a {
		t.Fatal("expected inplace result for unique same-shape operand")
	}
	if got := out.AsFloat64(); got[0] != 11 || got[1] != 22 {
		t.Errorf("inplace add = %v, want [11 22]", got)
	}
}

func TestCPUBackend_Broadcast(t *testing.T) {
	backend := cpu.New()

	scalar := newRaw(t, []float64{3})
	vec := newRaw(t, []float64{1, 2, 3})

	out := backend.Add(scalar, vec)
	if !out.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("broadcast shape = %v, want {3}", out.Shape())
	}
	want := []float64{4, 5, 6}
	for i, v := range out.AsFloat64() {
		if v != want[i] {
			t.Errorf("broadcast add[%d] = %v, want %v", i, v, want[i])
		}
	}

	// Broadcasting is symmetric.
	out = backend.Sub(vec, scalar)
	want = []float64{-2, -1, 0}
	for i, v := range out.AsFloat64() {
		if v != want[i] {
			t.Errorf("broadcast sub[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestCPUBackend_IncompatibleShapesPanic(t *testing.T) {
	backend := cpu.New()

	a := newRaw(t, []float64{1, 2})
	b := newRaw(t, []float64{1, 2, 3})

	defer func() {
		if recover() == nil {
			t.Error("Add with incompatible shapes did not panic")
		}
	}()
	backend.Add(a, b)
}

func TestCPUBackend_Mean(t *testing.T) {
	backend := cpu.New()

	x := newRaw(t, []float64{2, 4, 6, 8})
	m := backend.Mean(x)

	if !m.Shape().Equal(tensor.Shape{1}) {
		t.Fatalf("mean shape = %v, want {1}", m.Shape())
	}
	if got := m.AsFloat64()[0]; got != 5 {
		t.Errorf("mean = %v, want 5", got)
	}
}
