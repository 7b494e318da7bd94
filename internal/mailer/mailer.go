// Package mailer wraps the third-party transactional email endpoint. It is
// an opaque collaborator: fire-and-forget, failures surfaced as a message
// and never retried.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type Mailer struct {
	URL    string
	Client *http.Client
}

func New(url string) *Mailer {
	return &Mailer{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.URL == "" {
		// demo mode: no endpoint configured
		log.Printf("mailer: skipped send to=%s subject=%q", to, subject)
		return nil
	}
	b, err := json.Marshal(message{To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.URL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := m.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("mailer: unexpected status %d", resp.StatusCode)
	}
	return nil
}
