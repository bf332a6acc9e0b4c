package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

// NewEmailService builds the SendGrid-backed mailer. An empty API key
// disables sending; calls then log a warning and return nil.
func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{apiKey: apiKey, from: from, fromName: fromName}
}

func (s *emailService) SendSettlementReceipt(ctx context.Context, email, name, plate string, summary *domain.SettlementSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\nYour rental of vehicle %s has been settled.\n\n", name, plate)
	fmt.Fprintf(&b, "Base amount (%d days): %.2f\n", summary.DaysRented, summary.BaseAmount)
	for _, f := range summary.Fines {
		fmt.Fprintf(&b, "Fine %s: %.2f (%s)\n", f.Type, f.Amount, f.ReferenceNote)
	}
	for _, d := range summary.Discounts {
		fmt.Fprintf(&b, "Discount %s: -%.2f\n", d.Type, d.Amount)
	}
	fmt.Fprintf(&b, "\nTotal due: %.2f\nPayment reference: %s\n\nThank you for renting with us.\n",
		summary.FinalAmount, summary.PaymentReference)

	subject := fmt.Sprintf("Rental receipt - payment %s", summary.PaymentReference)
	return s.send(email, name, subject, b.String())
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name, plate string, expectedReturn time.Time) error {
	subject := fmt.Sprintf("Return reminder for vehicle %s", plate)
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that vehicle %s is expected back on %s.\nLate returns are charged per day.\n\nThank you.\n",
		name, plate, expectedReturn.Format("02 Jan 2006"))
	return s.send(email, name, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainBody string) error {
	if s.apiKey == "" {
		logger.Warn("sendgrid api key not configured, email not sent", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainBody, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
