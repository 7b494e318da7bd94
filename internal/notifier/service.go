// Package notifier consumes storefront events and drives outbound email.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/malidadi/storefront/internal/kafka"
	"github.com/malidadi/storefront/internal/mailer"
	"github.com/malidadi/storefront/internal/orders"
	"github.com/malidadi/storefront/internal/redisx"
)

type Service struct {
	Redis       *redis.Client
	Mailer      *mailer.Mailer
	ServiceName string
}

// HandleOrderPlaced sends the order confirmation email. Mail failures are
// logged but do not block the offset commit: confirmation email is
// fire-and-forget, a redelivery loop would be worse than a missed mail.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}
	if s.seen(ctx, env.EventID) {
		return nil
	}
	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}
	body := fmt.Sprintf("Thank you for your purchase, %s!\nOrder %s total: %s", p.Name, p.OrderID, p.Totals.Total)
	if err := s.Mailer.Send(ctx, p.Email, "Your order is confirmed", body); err != nil {
		log.Printf("order confirmation mail failed: %v", err)
	}
	return nil
}

// HandleNewsletterSubscribed sends the welcome email.
func (s *Service) HandleNewsletterSubscribed(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventNewsletterSubscribed {
		return nil
	}
	if s.seen(ctx, env.EventID) {
		return nil
	}
	p, err := kafkax.UnwrapPayload[orders.NewsletterSubscribedPayload](env.Payload)
	if err != nil {
		return err
	}
	body := "Welcome aboard! You'll be the first to know about new products, exclusive deals, and special offers."
	if err := s.Mailer.Send(ctx, p.Email, "Welcome to the newsletter", body); err != nil {
		log.Printf("newsletter welcome mail failed: %v", err)
	}
	return nil
}

// seen dedups by event_id via redis.
func (s *Service) seen(ctx context.Context, eventID string) bool {
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, eventID)
	exists, _ := redisx.Exists(ctx, s.Redis, dkey)
	if exists {
		return true
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	return false
}
