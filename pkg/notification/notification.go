// Package notification provides a small multi-channel notification system.
//
// Define a Notification:
//
//	type OrderPlaced struct{ Tx models.Transaction }
//	func (n *OrderPlaced) Via() []string { return []string{"mail"} }
//	func (n *OrderPlaced) ToMail() notification.MailData {
//	    return notification.MailData{
//	        Subject: "Your Order Tracking Number",
//	        Text:    "Your tracking number is: " + n.Tx.TrackingNumber,
//	    }
//	}
//
// Send:
//
//	errs := notification.Send(tx.Email, &OrderPlaced{Tx: tx})
package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/blossom-shop/blossom/config"
	"github.com/blossom-shop/blossom/pkg/logger"
	"github.com/blossom-shop/blossom/pkg/mail"
)

// MailData carries the data needed to send an email notification.
type MailData struct {
	To      string // overrides the notifiable address if set
	Subject string
	Body    string // HTML
	Text    string // plain-text fallback
}

// SlackData carries a Slack message payload.
type SlackData struct {
	WebhookURL  string // override default if set
	Text        string
	Attachments []SlackAttachment
}

// SlackAttachment is a single Slack message attachment block.
type SlackAttachment struct {
	Color string `json:"color,omitempty"` // "good" | "warning" | "danger"
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Notification is anything that knows which channels it goes out on.
type Notification interface {
	Via() []string
}

// Mailable notifications produce a MailData payload.
type Mailable interface {
	ToMail() MailData
}

// Slackable notifications produce a SlackData payload.
type Slackable interface {
	ToSlack() SlackData
}

// Send dispatches n on every channel it declares and returns the errors
// encountered (one per failing channel). An empty slice means full success.
func Send(address string, n Notification) []error {
	var errs []error
	for _, channel := range n.Via() {
		if err := dispatch(address, channel, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// SendAsync dispatches the notification in a background goroutine.
// Failures are logged, not returned. Use Send when delivery must be
// confirmed.
func SendAsync(address string, n Notification) {
	go func() {
		if errs := Send(address, n); len(errs) > 0 {
			for _, e := range errs {
				logger.Error("notification: async error", "error", e)
			}
		}
	}()
}

func dispatch(address, channel string, n Notification) error {
	switch channel {
	case "mail":
		m, ok := n.(Mailable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Mailable", n)
		}
		return sendMail(address, m.ToMail())

	case "slack":
		s, ok := n.(Slackable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Slackable", n)
		}
		return sendSlack(s.ToSlack())

	default:
		return fmt.Errorf("notification: unknown channel %q", channel)
	}
}

// ------------------- Mail channel -------------------

func sendMail(address string, d MailData) error {
	to := d.To
	if to == "" {
		to = address
	}

	if d.Body != "" {
		return mail.To(to).Subject(d.Subject).Body(d.Body).Send()
	}
	return mail.To(to).Subject(d.Subject).Text(d.Text).Send()
}

// ------------------- Slack channel -------------------

type slackPayload struct {
	Text        string            `json:"text,omitempty"`
	Attachments []SlackAttachment `json:"attachments,omitempty"`
}

func sendSlack(d SlackData) error {
	url := d.WebhookURL
	if url == "" {
		url = config.Get("SLACK_WEBHOOK_URL", "")
	}
	if url == "" {
		return fmt.Errorf("notification: slack webhook URL not configured")
	}

	payload := slackPayload{
		Text:        d.Text,
		Attachments: d.Attachments,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notification: slack marshal: %w", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("notification: slack post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification: slack returned HTTP %d", resp.StatusCode)
	}
	return nil
}
