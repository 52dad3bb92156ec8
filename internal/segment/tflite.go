//go:build !NOTFLITE
// +build !NOTFLITE

package segment

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/mattn/go-tflite"
	"github.com/mattn/go-tflite/delegates/xnnpack"

	"github.com/facemask/facemask/pkg/tensor"
	"github.com/facemask/facemask/pkg/txt"
)

// TFLite is a Predictor backed by a TensorFlow Lite interpreter.
type TFLite struct {
	mu          sync.Mutex
	model       Model
	tfModel     *tflite.Model
	options     *tflite.InterpreterOptions
	interpreter *tflite.Interpreter
	inFloats    []float32
}

// NewPredictor loads a TensorFlow Lite model file and prepares an interpreter for it.
func NewPredictor(m Model, fileName string) (Predictor, error) {
	t := &TFLite{model: m}

	if err := t.load(fileName); err != nil {
		t.Close()
		return nil, err
	}

	return t, nil
}

// Model returns the model descriptor.
func (t *TFLite) Model() Model {
	return t.model
}

func (t *TFLite) load(fileName string) error {
	log.Infof("segment: loading %s", txt.Quote(filepath.Base(fileName)))

	tfModel := tflite.NewModelFromFile(fileName)
	if tfModel == nil {
		return fmt.Errorf("segment: load model failed, stack: %s", debug.Stack())
	}

	t.tfModel = tfModel

	options := tflite.NewInterpreterOptions()
	options.AddDelegate(xnnpack.New(xnnpack.DelegateOptions{NumThreads: numThreads()}))
	options.SetNumThread(int(numThreads()))
	options.SetErrorReporter(func(msg string, userData interface{}) {
		log.Errorf("segment: %s", msg)
	}, nil)

	t.options = options

	interpreter := tflite.NewInterpreter(tfModel, options)
	if interpreter == nil {
		return fmt.Errorf("segment: create interpreter failed, stack: %s", debug.Stack())
	}

	t.interpreter = interpreter

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		return fmt.Errorf("segment: allocate tensors failed, stack: %s", debug.Stack())
	}

	input := interpreter.GetInputTensor(0)

	if input.Type() != tflite.Float32 {
		return fmt.Errorf("segment: %s has unsupported input type", t.model.Name)
	}

	h := input.Dim(1)
	w := input.Dim(2)
	c := input.Dim(3)

	if h != t.model.Side || w != t.model.Side {
		return fmt.Errorf("segment: %s expects %dpx input, model file has %dx%d", t.model.Name, t.model.Side, w, h)
	}

	t.inFloats = make([]float32, h*w*c)

	return nil
}

// Predict runs the model over each image of the input batch.
func (t *TFLite) Predict(in *tensor.Tensor) (result *tensor.Tensor, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("segment: %s (inference panic)\nstack: %s", r, debug.Stack())
		}
	}()

	if t.interpreter == nil {
		return nil, fmt.Errorf("segment: model %s is not loaded", t.model.Name)
	}

	n, h, w, c := in.Dims()

	input := t.interpreter.GetInputTensor(0)

	if input.Dim(1) != h || input.Dim(2) != w || input.Dim(3) != c {
		return nil, fmt.Errorf("segment: %s expects %dx%dx%d input, got %dx%dx%d",
			t.model.Name, input.Dim(2), input.Dim(1), input.Dim(3), w, h, c)
	}

	output := t.interpreter.GetOutputTensor(0)

	if output.Type() != tflite.Float32 {
		return nil, fmt.Errorf("segment: %s has unsupported output type", t.model.Name)
	}

	oh := output.Dim(1)
	ow := output.Dim(2)
	oc := output.Dim(output.NumDims() - 1)

	result = tensor.New(n, oh, ow, oc)

	for i := 0; i < n; i++ {
		copy(t.inFloats, in.Image(i))
		copy(input.Float32s(), t.inFloats)

		if status := t.interpreter.Invoke(); status != tflite.OK {
			return nil, fmt.Errorf("segment: inference failed for %s", t.model.Name)
		}

		copy(result.Image(i), output.Float32s())
	}

	return result, nil
}

// Close releases the interpreter and model resources.
func (t *TFLite) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.interpreter != nil {
		t.interpreter.Delete()
		t.interpreter = nil
	}

	if t.options != nil {
		t.options.Delete()
		t.options = nil
	}

	if t.tfModel != nil {
		t.tfModel.Delete()
		t.tfModel = nil
	}
}

// numThreads returns the interpreter thread count based on the physical cores.
func numThreads() int32 {
	n := cpuid.CPU.PhysicalCores

	if n < 2 {
		n = 2
	} else if n > 8 {
		n = 8
	}

	return int32(n)
}
