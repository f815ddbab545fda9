package infra

import (
	"fmt"

	"github.com/s21platform/metrics-lib/pkg"

	"github.com/propdesk/messaging-service/internal/model"
)

// GraphiteMetrics reports inbox events as platform counters through metrics-lib.
type GraphiteMetrics struct {
	metrics pkg.MetricInterface
}

func NewGraphiteMetrics(metrics pkg.MetricInterface) *GraphiteMetrics {
	return &GraphiteMetrics{metrics: metrics}
}

func (g *GraphiteMetrics) MessageAppended(kind model.ConversationKind) {
	g.metrics.Increment(fmt.Sprintf("message_appended.%s", kind))
}

func (g *GraphiteMetrics) ConversationRead(kind model.ConversationKind) {
	g.metrics.Increment(fmt.Sprintf("conversation_read.%s", kind))
}

type eventRecorder interface {
	MessageAppended(kind model.ConversationKind)
	ConversationRead(kind model.ConversationKind)
}

// FanoutMetrics forwards every event to each recorder in order.
type FanoutMetrics []eventRecorder

func (f FanoutMetrics) MessageAppended(kind model.ConversationKind) {
	for _, r := range f {
		r.MessageAppended(kind)
	}
}

func (f FanoutMetrics) ConversationRead(kind model.ConversationKind) {
	for _, r := range f {
		r.ConversationRead(kind)
	}
}
