// Package app wires the assessment pipeline together: normalize,
// extract, score, highlight, optionally classify, record.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/phishscope/internal/features"
	"github.com/raysh454/phishscope/internal/highlight"
	"github.com/raysh454/phishscope/internal/history"
	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/model"
	"github.com/raysh454/phishscope/internal/predictor"
	"github.com/raysh454/phishscope/internal/rules"
	"github.com/raysh454/phishscope/internal/urlx"
)

// subscriberBuffer is the per-subscriber event channel depth. A
// subscriber that falls behind drops events rather than stalling
// assessments.
const subscriberBuffer = 16

// Detector runs assessments and fans results out to the history record
// and any live subscribers.
type Detector struct {
	cfg       *Config
	predictor *predictor.Predictor
	history   *history.History
	logger    logging.Logger

	subMu       sync.Mutex
	subscribers map[string]chan model.Assessment
}

func NewDetector(cfg *Config, handle predictor.ModelHandle, logger logging.Logger) *Detector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Detector{
		cfg:         cfg,
		predictor:   predictor.New(handle, logger),
		history:     history.New(cfg.HistoryCapacity, logger),
		logger:      logger,
		subscribers: make(map[string]chan model.Assessment),
	}
}

// Assess runs the full pipeline over a raw URL. The rule verdict is
// always produced; the model verdict is only consulted when useML is
// set, and degrades to "n/a" when no model is loaded.
func (d *Detector) Assess(_ context.Context, rawURL string, useML bool) *model.Assessment {
	f := features.Extract(urlx.Normalize(rawURL))

	a := &model.Assessment{
		ID:         uuid.NewString(),
		URL:        rawURL,
		Rule:       rules.Evaluate(f, rawURL),
		Highlights: highlight.Segments(rawURL),
		Timestamp:  time.Now().UTC(),
	}

	mlLabel := model.LabelUnavailable
	mlConfidence := 0.0
	if useML {
		a.ML = d.predictor.Predict(rawURL)
		mlLabel = a.ML.Label
		mlConfidence = a.ML.Confidence
	}

	d.history.Record(model.HistoryEntry{
		ID:           a.ID,
		Timestamp:    a.Timestamp,
		URL:          rawURL,
		RuleLabel:    a.Rule.Label,
		MLLabel:      mlLabel,
		MLConfidence: mlConfidence,
	})

	d.logger.Info("url assessed",
		logging.Field{Key: "id", Value: a.ID},
		logging.Field{Key: "rule_label", Value: string(a.Rule.Label)},
		logging.Field{Key: "rule_score", Value: a.Rule.Score},
		logging.Field{Key: "ml_label", Value: string(mlLabel)})

	d.broadcast(*a)
	return a
}

// Subscribe registers a live feed of completed assessments. The caller
// must Unsubscribe with the returned id when done.
func (d *Detector) Subscribe() (string, <-chan model.Assessment) {
	d.subMu.Lock()
	defer d.subMu.Unlock()

	id := uuid.NewString()
	ch := make(chan model.Assessment, subscriberBuffer)
	d.subscribers[id] = ch
	return id, ch
}

func (d *Detector) Unsubscribe(id string) {
	d.subMu.Lock()
	defer d.subMu.Unlock()

	if ch, ok := d.subscribers[id]; ok {
		delete(d.subscribers, id)
		close(ch)
	}
}

// Close drops every subscriber.
func (d *Detector) Close() {
	d.subMu.Lock()
	defer d.subMu.Unlock()

	for id, ch := range d.subscribers {
		delete(d.subscribers, id)
		close(ch)
	}
}

func (d *Detector) broadcast(a model.Assessment) {
	d.subMu.Lock()
	defer d.subMu.Unlock()

	for id, ch := range d.subscribers {
		select {
		case ch <- a:
		default:
			d.logger.Debug("subscriber behind, dropping event",
				logging.Field{Key: "subscriber", Value: id})
		}
	}
}

// History returns the newest entries, up to limit (zero means all).
func (d *Detector) History(limit int) []model.HistoryEntry {
	return d.history.List(limit)
}

func (d *Detector) Stats() model.HistoryStats {
	return d.history.Aggregate()
}

// ModelLoaded reports whether assessments with useML set would reach a
// real model.
func (d *Detector) ModelLoaded() bool {
	return d.predictor.Available()
}
