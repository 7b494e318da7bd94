package orders

import (
	"encoding/json"
	"time"

	"github.com/malidadi/storefront/internal/pricing"
)

const (
	EventOrderPlaced          = "OrderPlaced"
	EventNewsletterSubscribed = "NewsletterSubscribed"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// ---- payload types per event ----

type PlacedItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderPlacedPayload doubles as the order record returned to the client;
// no other system of record exists for placed orders in this demo.
type OrderPlacedPayload struct {
	OrderID   string                `json:"order_id"`
	SessionID string                `json:"session_id"`
	Email     string                `json:"email"`
	Name      string                `json:"name"`
	Items     []PlacedItem          `json:"items"`
	Totals    pricing.DisplayTotals `json:"totals"`
	PlacedAt  time.Time             `json:"placed_at"`
}

type NewsletterSubscribedPayload struct {
	Email  string `json:"email"`
	Source string `json:"source,omitempty"`
}
