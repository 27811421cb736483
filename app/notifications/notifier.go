package notifications

import (
	"errors"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/config"
	"github.com/blossom-shop/blossom/pkg/notification"
)

// Dispatcher routes service-level notification calls onto the channel
// system. The mail channel is mandatory for order confirmations; Slack
// rides along asynchronously when a webhook is configured.
type Dispatcher struct{}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OrderPlaced sends the confirmation mail and returns an error when it
// cannot be delivered.
func (d *Dispatcher) OrderPlaced(tx *models.Transaction) error {
	n := &OrderPlaced{Transaction: tx}
	if errs := notification.Send(tx.Email, n); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if config.Get("SLACK_WEBHOOK_URL", "") != "" {
		notification.SendAsync(tx.Email, &slackOnly{n})
	}
	return nil
}

// slackOnly re-routes a notification to Slack without re-sending mail.
type slackOnly struct {
	*OrderPlaced
}

func (s *slackOnly) Via() []string {
	return []string{"slack"}
}
