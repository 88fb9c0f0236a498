package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Metrics holds the prometheus collectors fed by engine hooks.
type Metrics struct {
	Renders       *prometheus.CounterVec
	UnknownTopics prometheus.Counter
	StaticMenus   prometheus.Counter
	TopicViews    *prometheus.CounterVec
	CorpusTopics  prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helpcenter_renders_total",
				Help: "Total number of rendered payloads",
			},
			[]string{"view", "mode", "ephemeral"},
		),
		UnknownTopics: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "helpcenter_unknown_topics_total",
			Help: "Interactions that referenced a topic or control that does not resolve",
		}),
		StaticMenus: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "helpcenter_static_menus_total",
			Help: "Public static menus published by administrators",
		}),
		TopicViews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helpcenter_topic_views_total",
				Help: "Detail views rendered per topic",
			},
			[]string{"topic_id"},
		),
		CorpusTopics: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "helpcenter_corpus_topics",
			Help: "Number of topics in the loaded corpus",
		}),
	}
	reg.MustRegister(m.Renders, m.UnknownTopics, m.StaticMenus, m.TopicViews, m.CorpusTopics)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRender: func(_ context.Context, e *domain.RenderEvent) {
			m.Renders.WithLabelValues(string(e.View), string(e.Mode), strconv.FormatBool(e.Ephemeral)).Inc()
			if e.View == domain.ViewTopic {
				m.TopicViews.WithLabelValues(e.TopicID).Inc()
			}
			if e.Control == domain.ControlStaticMenu && !e.Ephemeral {
				m.StaticMenus.Inc()
			}
		},
		OnUnknownTopic: func(context.Context, *domain.RenderEvent) {
			m.UnknownTopics.Inc()
		},
	}
}

// SetCorpusSize records the size of the loaded corpus.
func (m *Metrics) SetCorpusSize(n int) {
	m.CorpusTopics.Set(float64(n))
}
