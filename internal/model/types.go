package model

import (
	"image"

	"github.com/plantsight/plantsight-api/internal/gate"
)

// Metadata describes the ONNX artifact, loaded from the JSON file shipped
// beside the model.
type Metadata struct {
	InputShape  []int64 `json:"input_shape"`
	OutputShape []int64 `json:"output_shape"`
	ImageSize   int     `json:"image_size"`
}

// VectorRequest is the raw pre-vectorized prediction request body.
type VectorRequest struct {
	Image []float32 `json:"image"`
}

// Classifier is the single adapter contract between the model runtime and
// the rest of the service: whatever shape the runtime's result object has,
// callers only ever see a ranked best-first list of (class id, score)
// pairs, at most top-k long and possibly empty.
type Classifier interface {
	Classify(input []float32) ([]gate.RawPrediction, error)
	ClassifyImage(img image.Image) ([]gate.RawPrediction, error)
	InputLen() int
}
