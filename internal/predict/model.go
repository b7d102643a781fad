package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
)

// FeatureOrder is the column order the model was trained with.
var FeatureOrder = []string{"total_sqft", "bhk", "bath"}

var (
	ErrInvalidArtifact = errors.New("invalid model artifact")
	ErrNonFinite       = errors.New("model produced a non-finite estimate")
)

// Features is one inference input.
type Features struct {
	TotalSqft float64
	BHK       int
	Bath      int
}

func (f Features) vector() []float64 {
	return []float64{f.TotalSqft, float64(f.BHK), float64(f.Bath)}
}

// Predictor estimates a house price in lakhs of rupees.
type Predictor interface {
	Predict(f Features) (float64, error)
}

// artifact is the serialized regression exported by the training job.
type artifact struct {
	Features     []string  `json:"features"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

// LinearModel is a fitted linear regression. It is read-only after loading
// and safe for concurrent use.
type LinearModel struct {
	intercept    float64
	coefficients []float64
}

// LoadModel reads and validates the artifact at path.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseModel(data)
}

// ParseModel decodes an artifact already in memory.
func ParseModel(data []byte) (*LinearModel, error) {
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if !slices.Equal(a.Features, FeatureOrder) {
		return nil, fmt.Errorf("%w: features %v, want %v", ErrInvalidArtifact, a.Features, FeatureOrder)
	}
	if len(a.Coefficients) != len(FeatureOrder) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifact, len(a.Coefficients), len(FeatureOrder))
	}

	return &LinearModel{intercept: a.Intercept, coefficients: a.Coefficients}, nil
}

func (m *LinearModel) Predict(f Features) (float64, error) {
	estimate := m.intercept
	for i, x := range f.vector() {
		estimate += m.coefficients[i] * x
	}
	if math.IsNaN(estimate) || math.IsInf(estimate, 0) {
		return 0, ErrNonFinite
	}
	return estimate, nil
}

// FormatPrice renders an estimate the way the prediction endpoint returns it.
func FormatPrice(lakhs float64) string {
	return fmt.Sprintf("%.2f Lakhs INR", lakhs)
}
