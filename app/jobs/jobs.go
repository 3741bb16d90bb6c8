// Package jobs defines the background jobs dispatched onto pkg/queue.
package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/freshbasket/pkg/mail"
	"github.com/shashiranjanraj/freshbasket/pkg/queue"
)

// Register wires every job type into the queue registry. Call once at boot,
// before workers start.
func Register() {
	queue.Register("*jobs.OTPEmailJob", func() queue.Job { return &OTPEmailJob{} })
	queue.Register("*jobs.OrderConfirmationJob", func() queue.Job { return &OrderConfirmationJob{} })
}

// OTPEmailJob delivers a verification code by email.
type OTPEmailJob struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (j *OTPEmailJob) Handle() error {
	return mail.To(j.Email).
		Subject("Your FreshBasket verification code").
		Text(fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", j.Code)).
		Send()
}

// OrderConfirmationJob emails the shopper after a successful checkout.
// Delivery is best-effort; the order is already committed when this runs.
type OrderConfirmationJob struct {
	UserID      uint    `json:"user_id"`
	OrderID     uint    `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Email       string  `json:"email,omitempty"`
}

func (j *OrderConfirmationJob) Handle() error {
	if j.Email == "" {
		return nil
	}
	return mail.To(j.Email).
		Subject(fmt.Sprintf("Order #%d confirmed", j.OrderID)).
		Text(fmt.Sprintf("Thanks for your order! Order #%d for %.2f has been placed.", j.OrderID, j.TotalAmount)).
		Send()
}
