package store

import "github.com/asaskevich/EventBus"

// Change notification topics. Each store publishes its topic after every
// persisted mutation; the view layer subscribes to re-render.
const (
	TopicCartChanged     = "cart.changed"
	TopicWishlistChanged = "wishlist.changed"
	TopicOrdersChanged   = "orders.changed"
)

func publish(bus EventBus.Bus, topic string) {
	if bus != nil {
		bus.Publish(topic)
	}
}
