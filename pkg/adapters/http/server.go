package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/rs/cors"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// Engine is what the HTTP host needs from the help center core.
type Engine interface {
	Handle(ctx context.Context, ev domain.Event) domain.Payload
	Preview(topicID string) domain.Payload
	Corpus() *corpus.Corpus
}

// Option configures the handler.
type Option func(*server)

// WithLogger sets the logger for request and error lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *server) {
		s.logger = logger
	}
}

// WithCORSOrigins sets the origins allowed to call the API from a browser.
func WithCORSOrigins(origins ...string) Option {
	return func(s *server) {
		s.origins = origins
	}
}

// WithMetrics mounts h (usually promhttp) at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *server) {
		s.metrics = h
	}
}

type server struct {
	engine  Engine
	logger  *slog.Logger
	origins []string
	metrics http.Handler
}

// TopicList is the body of GET /topics.
type TopicList struct {
	Topics []domain.Topic `json:"topics"`
}

// TopicDetail is the body of GET /topics/{id}.
type TopicDetail struct {
	Topic    domain.Topic   `json:"topic"`
	Path     []string       `json:"path"`
	Children []domain.Topic `json:"children"`

	// Payload is the rendered detail view, present when requested with ?render=true.
	Payload *domain.Payload `json:"payload,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewHandler creates the HTTP handler for engine.
func NewHandler(engine Engine, opts ...Option) (http.Handler, error) {
	s := &server{
		engine:  engine,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		origins: []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	doc, err := loadSpec()
	if err != nil {
		return nil, err
	}
	validate, err := s.validateRequests(doc)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(rawSpec)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(validate)
		r.Post("/interactions", s.handleInteraction)
		r.Get("/topics", s.listTopics)
		r.Get("/topics/{id}", s.getTopic)
		r.Get("/health", s.health)
		r.Get("/info", s.info)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(r), nil
}

func (s *server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	var ev domain.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		s.logger.Warn("interaction: invalid request body", "err", err, "request_id", RequestID(r.Context()))
		return
	}

	payload := s.engine.Handle(r.Context(), ev)
	s.writeJSON(w, r, http.StatusOK, payload)
}

func (s *server) listTopics(w http.ResponseWriter, r *http.Request) {
	var parent *string
	if err := runtime.BindQueryParameter("form", true, false, "parent", r.URL.Query(), &parent); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid parent: %v", err))
		return
	}

	c := s.engine.Corpus()
	if parent == nil || *parent == "" {
		s.writeJSON(w, r, http.StatusOK, TopicList{Topics: nonNil(c.Roots())})
		return
	}
	if _, ok := c.Lookup(*parent); !ok {
		writeError(w, http.StatusNotFound, domain.ErrTopicNotFound.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, TopicList{Topics: nonNil(c.Children(*parent))})
}

func (s *server) getTopic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var render *bool
	if err := runtime.BindQueryParameter("form", true, false, "render", r.URL.Query(), &render); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid render: %v", err))
		return
	}
	c := s.engine.Corpus()

	t, ok := c.Lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrTopicNotFound.Error())
		return
	}

	path := c.Path(id)
	ids := make([]string, len(path))
	for i, p := range path {
		ids[i] = p.ID
	}
	detail := TopicDetail{Topic: t, Path: ids, Children: nonNil(c.Children(id))}
	if render != nil && *render {
		p := s.engine.Preview(id)
		detail.Payload = &p
	}
	s.writeJSON(w, r, http.StatusOK, detail)
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) info(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := loadSpec(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}
	s.writeJSON(w, r, http.StatusOK, map[string]any{
		"version":     strings.TrimSpace(helpcenter.Version),
		"api_version": apiVersion,
		"topics":      s.engine.Corpus().Len(),
	})
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", RequestID(r.Context()),
		)
	})
}

func (s *server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err, "request_id", RequestID(r.Context()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}

func nonNil(topics []domain.Topic) []domain.Topic {
	if topics == nil {
		return []domain.Topic{}
	}
	return topics
}
