package model

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"sort"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/plantsight/plantsight-api/internal/gate"
)

// Server owns the ONNX session and the preallocated input/output tensors.
// A missing or unreadable model artifact is a hard startup failure; after
// that, inference errors surface per call. The tensors are reused across
// calls, so Classify serializes on a mutex.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	Metadata     Metadata
	topK         int
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewServer(modelPath, metadataPath string, topK int) (*Server, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	metaFile, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata Metadata
	if err := json.Unmarshal(metaFile, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	inputShape := ort.NewShape(metadata.InputShape...)
	outputShape := ort.NewShape(metadata.OutputShape...)

	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	if topK < 1 {
		topK = 1
	}

	return &Server{
		session:      session,
		Metadata:     metadata,
		topK:         topK,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// InputLen returns the expected flattened input vector length.
func (s *Server) InputLen() int {
	n := 1
	for _, dim := range s.Metadata.InputShape {
		n *= int(dim)
	}
	return n
}

// Classify runs inference on a preprocessed vector and returns the top-k
// (class id, score) pairs ranked best-first. The list may be shorter than
// top-k when the model emits fewer classes.
func (s *Server) Classify(input []float32) ([]gate.RawPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.inputTensor.GetData(), input)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	return rankTopK(s.outputTensor.GetData(), s.topK), nil
}

// ClassifyImage preprocesses a decoded image and classifies it.
func (s *Server) ClassifyImage(img image.Image) ([]gate.RawPrediction, error) {
	return s.Classify(Preprocess(img, s.Metadata.ImageSize))
}

// rankTopK sorts class scores descending and keeps the best k. Ties keep
// the lower class id first so the ordering is deterministic.
func rankTopK(scores []float32, k int) []gate.RawPrediction {
	ranked := make([]gate.RawPrediction, 0, len(scores))
	for i, val := range scores {
		ranked = append(ranked, gate.RawPrediction{ClassID: i, Score: float64(val)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func (s *Server) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
