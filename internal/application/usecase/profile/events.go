package profile

import (
	"context"

	"github.com/gan0622/DevForFun/adapters/event"
)

// EventPublisher is the slice of the kafka producer the profile use cases
// need. Publishing happens after persistence and never fails the request.
type EventPublisher interface {
	PublishProfileEvent(ctx context.Context, payload event.ProfileEventPayload) error
}
