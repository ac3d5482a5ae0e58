package realtime

import "log"

// Broker carries events between API instances.
type Broker interface {
	PublishEvent(name string) error
}

// Relay publishes events through a Broker instead of the local hub. The
// broker consumer is expected to feed received events back into the hub, so
// every instance (this one included) sees each event once. When the broker
// rejects an event it is delivered locally instead.
type Relay struct {
	broker Broker
	local  Publisher
}

func NewRelay(broker Broker, local Publisher) *Relay {
	return &Relay{broker: broker, local: local}
}

func (r *Relay) Publish(event Event) {
	if err := r.broker.PublishEvent(string(event)); err != nil {
		log.Printf("Warning: failed to relay %s through broker, delivering locally: %v", event, err)
		r.local.Publish(event)
	}
}
