// Package notifications holds the concrete notifications the shop sends.
package notifications

import (
	"fmt"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/pkg/notification"
)

// OrderPlaced is the confirmation sent to the customer right after an
// order is created. It carries the tracking number the customer needs
// to follow up on the order.
type OrderPlaced struct {
	Transaction *models.Transaction
}

func (n *OrderPlaced) Via() []string {
	return []string{"mail"}
}

func (n *OrderPlaced) ToMail() notification.MailData {
	return notification.MailData{
		Subject: "Your Order Tracking Number",
		Text: fmt.Sprintf(
			"Thank you for your order. Your tracking number is: %s",
			n.Transaction.TrackingNumber,
		),
	}
}

func (n *OrderPlaced) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: "New order placed",
		Attachments: []notification.SlackAttachment{{
			Color: "good",
			Title: n.Transaction.TrackingNumber,
			Text: fmt.Sprintf("%s (%s) ordered for %s",
				n.Transaction.Name, n.Transaction.Email,
				n.Transaction.TotalAmount.StringFixed(2)),
		}},
	}
}
