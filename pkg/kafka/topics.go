package kafka

import "fmt"

// TopicPrefix is the standard prefix for all topics.
const TopicPrefix = "ecommerce"

// Topic constructs a fully-qualified topic name.
func Topic(domain, action string) string {
	return fmt.Sprintf("%s.%s.%s", TopicPrefix, domain, action)
}

// Topics and event types exchanged between the content gateway and the
// storefront.
var (
	TopicContentChanged   = Topic("content", "changed")
	TopicRestockRequested = Topic("restock", "requested")
)

const (
	EventContentChanged   = "content.changed"
	EventRestockRequested = "storefront.restock.requested"
)
