package orders

const (
	TopicOrderPlaced          = "order.placed"
	TopicNewsletterSubscribed = "newsletter.subscribed"
)

// Partition key = order_id so every event for one order keeps its order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
