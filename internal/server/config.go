package server

import (
	"github.com/raysh454/phishscope/internal/app"
	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/predictor"
)

type Config struct {
	// ListenAddr is the HTTP listen address for the API server.
	ListenAddr string

	// AppConfig configures the detector; nil means defaults.
	AppConfig *app.Config

	// Logger receives request and handler logs; nil means no logging.
	Logger logging.Logger

	// Handle is an already-loaded model. When nil, the server loads the
	// artifact at AppConfig.ModelPath and runs rule-only if that fails.
	Handle predictor.ModelHandle
}
