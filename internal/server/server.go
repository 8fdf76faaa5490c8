package server

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/phishscope/internal/app"
	"github.com/raysh454/phishscope/internal/features"
	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/model"
	"github.com/raysh454/phishscope/internal/predictor"
	"github.com/raysh454/phishscope/internal/urlx"
)

// Server is the HTTP + WebSocket API surface for Phishscope.
type Server struct {
	cfg      Config
	detector *app.Detector
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewServer creates a new Server with its own Detector. A missing or
// unreadable model artifact is not fatal: the service runs rule-only
// and reports model_loaded == false on /healthz.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	handle := cfg.Handle
	if handle == nil && cfg.AppConfig.ModelPath != "" {
		forest, err := predictor.LoadForest(cfg.AppConfig.ModelPath, logger)
		if err != nil {
			logger.Warn("loading model artifact, continuing rule-only",
				logging.Field{Key: "path", Value: cfg.AppConfig.ModelPath},
				logging.Field{Key: "error", Value: err.Error()})
		} else {
			handle = forest
		}
	}

	r := chi.NewRouter()
	s := &Server{
		cfg:      cfg,
		detector: app.NewDetector(cfg.AppConfig, handle, logger),
		router:   r,
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

// Detector returns the underlying detector for advanced use (tests, etc.).
func (s *Server) Detector() *app.Detector {
	return s.detector
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/assess", s.optionsHandler("POST"))
	r.Options("/api/history", s.optionsHandler("GET"))
	r.Options("/api/history/export", s.optionsHandler("GET"))
	r.Options("/api/stats", s.optionsHandler("GET"))

	// Assessments
	r.Post("/api/assess", s.handleAssess)

	// History and aggregates
	r.Get("/api/history", s.handleHistory)
	r.Get("/api/history/export", s.handleExportHistory)
	r.Get("/api/stats", s.handleStats)

	// Liveness
	r.Get("/healthz", s.handleHealth)

	// WebSocket feed of completed assessments
	r.Get("/ws/assessments", s.handleAssessmentsWS)

	// Interactive API docs
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the detector and its subscriber channels.
func (s *Server) Close() {
	if s.detector != nil {
		s.detector.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // allow streaming
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// isLikelyURL rejects free text before it reaches the pipeline: the
// input must have a dotted or IPv4-shaped host, or carry an explicit
// scheme with a non-empty path.
func isLikelyURL(raw string) bool {
	c := urlx.Normalize(raw)
	if strings.Contains(c.Host, ".") || features.IsIPv4Shaped(c.Host) {
		return true
	}
	return c.ExplicitScheme && c.PathQuery != ""
}

// --- HTTP handlers ---

// Assessments

func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var body AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	raw := strings.TrimSpace(body.URL)
	if raw == "" {
		s.logger.Warn("assessing url: empty url field")
		writeError(w, http.StatusBadRequest, "missing url")
		return
	}
	if !isLikelyURL(raw) {
		s.logger.Warn("assessing url: input does not look like a URL", logging.Field{Key: "input", Value: raw})
		writeError(w, http.StatusBadRequest, "input does not look like a URL")
		return
	}

	useML := s.cfg.AppConfig.DefaultUseML
	if body.UseML != nil {
		useML = *body.UseML
	}

	a := s.detector.Assess(r.Context(), raw, useML)
	writeJSON(w, http.StatusOK, a)
}

// History and aggregates

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			limit = v
		}
	}

	entries := s.detector.History(limit)
	s.logger.Info("listed history", logging.Field{Key: "count", Value: len(entries)})
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.detector.History(0)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="phish_history.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"time", "url", "rule_label", "ml_label", "ml_conf"})
	for _, e := range entries {
		_ = cw.Write([]string{
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.URL,
			string(e.RuleLabel),
			string(e.MLLabel),
			strconv.FormatFloat(e.MLConfidence, 'f', -1, 64),
		})
	}
	cw.Flush()

	s.logger.Info("exported history", logging.Field{Key: "count", Value: len(entries)})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	entries := s.detector.History(0)
	stats := s.detector.Stats()

	resp := StatsResponse{
		Total:        stats.Total,
		RulePhishing: stats.RulePhishing,
		MLPhishing:   stats.MLPhishing,
		Times:        make([]string, 0, len(entries)),
		RuleTimeline: make([]int, 0, len(entries)),
		MLTimeline:   make([]int, 0, len(entries)),
	}

	// Oldest first so the timeline reads left to right.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		resp.Times = append(resp.Times, e.Timestamp.Format("15:04:05"))
		resp.RuleTimeline = append(resp.RuleTimeline, boolToInt(e.RuleLabel == model.LabelPhishing))
		resp.MLTimeline = append(resp.MLTimeline, boolToInt(e.MLLabel == model.LabelPhishing))
	}

	writeJSON(w, http.StatusOK, resp)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Liveness

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "ok",
		ModelLoaded: s.detector.ModelLoaded(),
	})
}

// WebSockets

func (s *Server) handleAssessmentsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	id, events := s.detector.Subscribe()
	defer s.detector.Unsubscribe(id)

	s.logger.Info("assessment feed subscribed", logging.Field{Key: "subscriber", Value: id})

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(a); err != nil {
				// Assume client disconnected
				return
			}
		}
	}
}
