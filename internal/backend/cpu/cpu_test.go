package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashlight-ml/flashlight/internal/tensor"
)

func mustTensor(t *testing.T, data []float32, shape tensor.Shape) *tensor.Tensor {
	t.Helper()
	x, err := tensor.FromData(data, shape)
	require.NoError(t, err)
	return x
}

func TestBackendInfo(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestReLUScenario(t *testing.T) {
	backend := New()
	input := mustTensor(t, []float32{1.5, -2.0, 0.0, 3.0}, tensor.Shape{4})

	output := backend.ReLU(input)

	assert.Equal(t, []float32{1.5, 0.0, 0.0, 3.0}, output.Data())
	assert.True(t, output.Shape().Equal(input.Shape()))
}

func TestReLUPositivePassthrough(t *testing.T) {
	backend := New()
	input := mustTensor(t, []float32{0.001, 1, 123.456, math.MaxFloat32}, tensor.Shape{4})

	output := backend.ReLU(input)

	assert.Equal(t, input.Data(), output.Data())
}

func TestReLUNonPositiveToZero(t *testing.T) {
	backend := New()
	negZero := math.Float32frombits(0x80000000)
	input := mustTensor(t, []float32{0, negZero, -0.001, -123.456, -math.MaxFloat32}, tensor.Shape{5})

	output := backend.ReLU(input)

	for i, v := range output.Data() {
		assert.Equal(t, float32(0), v, "index %d", i)
		assert.False(t, math.Signbit(float64(v)), "index %d: -0.0 must map to +0.0", i)
	}
}

func TestReLUSpecialValues(t *testing.T) {
	backend := New()
	nan := float32(math.NaN())
	posInf := float32(math.Inf(1))
	negInf := float32(math.Inf(-1))
	input := mustTensor(t, []float32{nan, posInf, negInf}, tensor.Shape{3})

	output := backend.ReLU(input)
	got := output.Data()

	// NaN > 0 is false, so NaN maps to 0.
	assert.Equal(t, float32(0), got[0])
	assert.True(t, math.IsInf(float64(got[1]), 1))
	assert.Equal(t, float32(0), got[2])
}

func TestReLUIdempotent(t *testing.T) {
	backend := New()
	input := mustTensor(t, []float32{1.5, -2.0, 0.0, 3.0, -7.25, 42}, tensor.Shape{6})

	once := backend.ReLU(input)
	twice := backend.ReLU(once)

	assert.Equal(t, once.Data(), twice.Data())
}

func TestReLUDoesNotMutateInput(t *testing.T) {
	backend := New()
	input := mustTensor(t, []float32{-1, 2}, tensor.Shape{2})

	_ = backend.ReLU(input)

	assert.Equal(t, []float32{-1, 2}, input.Data())
}

func TestReLUPreservesShape(t *testing.T) {
	backend := New()
	input := tensor.Full(tensor.Shape{2, 3, 4}, -1)

	output := backend.ReLU(input)

	assert.True(t, output.Shape().Equal(tensor.Shape{2, 3, 4}))
	assert.Equal(t, float32(0), output.Data()[0])
}
