package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/model"
)

// ErrFeatureMismatch is returned when a vector's width does not match
// the forest's expected feature count.
var ErrFeatureMismatch = errors.New("feature vector width does not match model")

// Tree is one decision tree in flat-array layout: node i branches left
// to ChildrenLeft[i] when vector[Feature[i]] <= Threshold[i], otherwise
// right. Feature -1 marks a leaf, whose Value row holds per-class
// sample counts or probabilities.
type Tree struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// ForestArtifact is the on-disk random-forest format: the feature name
// order it was trained with plus its trees.
type ForestArtifact struct {
	FeatureNames []string `json:"feature_names"`
	Trees        []Tree   `json:"trees"`
}

// Forest is a loaded random-forest classifier. It satisfies
// ModelHandle; predictions average the per-tree leaf distributions.
type Forest struct {
	artifact ForestArtifact
	logger   logging.Logger
}

// LoadForest reads and validates a forest artifact. A load failure is
// an error for the caller to decide on; the service treats it as "run
// without a model".
func LoadForest(path string, logger logging.Logger) (*Forest, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var artifact ForestArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(artifact.Trees) == 0 {
		return nil, errors.New("model artifact contains no trees")
	}
	if len(artifact.FeatureNames) != model.NumFeatures {
		return nil, fmt.Errorf("model expects %d features, service extracts %d",
			len(artifact.FeatureNames), model.NumFeatures)
	}
	for i, name := range artifact.FeatureNames {
		if name != model.FeatureNames[i] {
			logger.Warn("model feature order differs from extractor",
				logging.Field{Key: "index", Value: i},
				logging.Field{Key: "model", Value: name},
				logging.Field{Key: "extractor", Value: model.FeatureNames[i]})
		}
	}

	logger.Info("model artifact loaded",
		logging.Field{Key: "path", Value: path},
		logging.Field{Key: "trees", Value: len(artifact.Trees)})

	return &Forest{artifact: artifact, logger: logger}, nil
}

func (f *Forest) Usable() bool {
	return f != nil && len(f.artifact.Trees) > 0
}

// Predict returns the argmax class over the averaged distribution. On a
// tie the lower class index wins.
func (f *Forest) Predict(vector []float64) (int, error) {
	probs, err := f.PredictProbabilities(vector)
	if err != nil {
		return 0, err
	}
	class := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[class] {
			class = i
		}
	}
	return class, nil
}

// PredictProbabilities averages the normalized leaf distribution of
// every tree in the forest.
func (f *Forest) PredictProbabilities(vector []float64) ([]float64, error) {
	if !f.Usable() {
		return nil, errors.New("forest not loaded")
	}
	if len(vector) != len(f.artifact.FeatureNames) {
		return nil, ErrFeatureMismatch
	}

	sum := []float64{0, 0}
	for i := range f.artifact.Trees {
		leaf, err := f.artifact.Trees[i].walk(vector)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		sum[0] += leaf[0]
		sum[1] += leaf[1]
	}

	n := float64(len(f.artifact.Trees))
	return []float64{sum[0] / n, sum[1] / n}, nil
}

// walk descends to a leaf and returns its distribution normalized to
// sum to one. Traversal is bounded by the node count so a malformed
// tree cannot loop forever.
func (t *Tree) walk(vector []float64) ([]float64, error) {
	nodes := len(t.Feature)
	node := 0
	for step := 0; step <= nodes; step++ {
		if node < 0 || node >= nodes || node >= len(t.Value) {
			return nil, fmt.Errorf("node index %d out of range", node)
		}

		feat := t.Feature[node]
		if feat < 0 {
			return normalize(t.Value[node])
		}
		if feat >= len(vector) {
			return nil, ErrFeatureMismatch
		}

		if vector[feat] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return nil, errors.New("traversal did not reach a leaf")
}

func normalize(counts []float64) ([]float64, error) {
	if len(counts) < 2 {
		return nil, fmt.Errorf("leaf has %d classes, want 2", len(counts))
	}
	total := counts[0] + counts[1]
	if total <= 0 {
		return []float64{0.5, 0.5}, nil
	}
	return []float64{counts[0] / total, counts[1] / total}, nil
}
