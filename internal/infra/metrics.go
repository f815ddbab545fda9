package infra

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/propdesk/messaging-service/internal/model"
)

type Metrics struct {
	messagesAppended  *prometheus.CounterVec
	conversationsRead *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messagesAppended: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "messages_appended_total",
			Help:      "Messages appended to conversations.",
		}, []string{"kind"}),
		conversationsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "messaging",
			Name:      "conversations_marked_read_total",
			Help:      "Mark-as-read calls per conversation kind.",
		}, []string{"kind"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "messaging",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.messagesAppended, m.conversationsRead, m.requestDuration)

	return m
}

func (m *Metrics) MessageAppended(kind model.ConversationKind) {
	m.messagesAppended.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) ConversationRead(kind model.ConversationKind) {
	m.conversationsRead.WithLabelValues(string(kind)).Inc()
}

// HTTP records request latency labelled with the chi route pattern, not the raw path,
// to keep label cardinality bounded.
func (m *Metrics) HTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
