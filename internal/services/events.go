package services

import "github.com/rs/zerolog/log"

// Routing keys of the domain events.
const (
	EventUserRegistered   = "user.registered"
	EventCVCreated        = "cv.created"
	EventCVDeleted        = "cv.deleted"
	EventShareLinkCreated = "sharelink.created"
)

// EventPublisher emits advisory domain events. Implemented by rabbitmq.Client.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publish never fails the caller; a nil publisher disables events.
func publish(p EventPublisher, routingKey string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
	}
}
