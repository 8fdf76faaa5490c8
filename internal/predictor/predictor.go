// Package predictor wraps an optional trained model behind a total
// Predict: callers always get an assessment back, and a missing or
// broken model degrades to the Unavailable result instead of an error.
package predictor

import (
	"math"

	"github.com/raysh454/phishscope/internal/features"
	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/model"
	"github.com/raysh454/phishscope/internal/urlx"
)

// ModelHandle is a loaded classifier. Class convention: 1 means
// Legitimate, 0 means Phishing.
type ModelHandle interface {
	// Usable reports whether the handle can serve predictions.
	Usable() bool

	// Predict returns the predicted class for a feature vector in
	// canonical order.
	Predict(vector []float64) (int, error)

	// PredictProbabilities returns the class probability distribution
	// [p(class 0), p(class 1)].
	PredictProbabilities(vector []float64) ([]float64, error)
}

// Predictor runs the classifier over extracted URL features.
type Predictor struct {
	handle ModelHandle
	logger logging.Logger
}

func New(handle ModelHandle, logger logging.Logger) *Predictor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Predictor{handle: handle, logger: logger}
}

// Unavailable is the degraded result returned whenever no usable model
// can serve a prediction.
func Unavailable() *model.MLAssessment {
	return &model.MLAssessment{Label: model.LabelUnavailable, Confidence: 0}
}

// Available reports whether Predict would consult a model rather than
// return the Unavailable result.
func (p *Predictor) Available() bool {
	return p.handle != nil && p.handle.Usable()
}

// Predict classifies a raw URL. It never fails: any model error is
// logged and mapped to the Unavailable result.
func (p *Predictor) Predict(rawURL string) *model.MLAssessment {
	if !p.Available() {
		return Unavailable()
	}

	f := features.Extract(urlx.Normalize(rawURL))
	vector := f.Values()

	class, err := p.handle.Predict(vector)
	if err != nil {
		p.logger.Warn("model prediction failed", logging.Field{Key: "error", Value: err.Error()})
		return Unavailable()
	}
	probs, err := p.handle.PredictProbabilities(vector)
	if err != nil || len(probs) < 2 {
		p.logger.Warn("model probabilities unavailable", logging.Field{Key: "error", Value: err})
		return Unavailable()
	}

	label := model.LabelPhishing
	confidence := probs[0]
	if class == 1 {
		label = model.LabelLegitimate
		confidence = probs[1]
	}

	return &model.MLAssessment{
		Label:      label,
		Confidence: roundPercent(confidence),
		Features:   &f,
	}
}

// roundPercent converts a probability to a percentage with one decimal.
func roundPercent(p float64) float64 {
	return math.Round(p*1000) / 10
}
