package inbox

import (
	"time"

	"github.com/google/uuid"

	"github.com/propdesk/messaging-service/internal/model"
)

// SystemClock truncates to microseconds, the precision of a postgres TIMESTAMPTZ, so a
// message reads back with the timestamp Append returned for it on every backend.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type NopMetrics struct{}

func (NopMetrics) MessageAppended(_ model.ConversationKind) {}

func (NopMetrics) ConversationRead(_ model.ConversationKind) {}
