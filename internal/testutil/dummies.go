// Package testutil provides shared test doubles.
package testutil

import (
	"sync"

	"github.com/raysh454/phishscope/internal/logging"
)

// DummyLogger records log messages for assertions.
type DummyLogger struct {
	mu     sync.Mutex
	Debugs []string
	Infos  []string
	Warns  []string
	Errors []string
}

func (d *DummyLogger) Debug(msg string, _ ...logging.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Debugs = append(d.Debugs, msg)
}

func (d *DummyLogger) Info(msg string, _ ...logging.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Infos = append(d.Infos, msg)
}

func (d *DummyLogger) Warn(msg string, _ ...logging.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Warns = append(d.Warns, msg)
}

func (d *DummyLogger) Error(msg string, _ ...logging.Field) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Errors = append(d.Errors, msg)
}

func (d *DummyLogger) With(_ ...logging.Field) logging.Logger { return d }

// StubModelHandle is a canned classifier for wiring tests.
type StubModelHandle struct {
	Class    int
	Probs    []float64
	Err      error
	Unusable bool
}

func (s *StubModelHandle) Usable() bool { return !s.Unusable }

func (s *StubModelHandle) Predict(_ []float64) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Class, nil
}

func (s *StubModelHandle) PredictProbabilities(_ []float64) ([]float64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Probs, nil
}
