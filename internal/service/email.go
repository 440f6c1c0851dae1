package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentalmanager-backend/internal/config"
	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService returns the SendGrid-backed sender, or a no-op sender when
// delivery is disabled in configuration.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if !cfg.Enabled || cfg.SendGridAPIKey == "" {
		return &noopEmailService{}
	}
	return &sendGridEmailService{
		apiKey:    cfg.SendGridAPIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendRequestReceivedNotification(ctx context.Context, staffEmail string, request *domain.RentalRequest) error {
	name := request.CustomerDetails.FirstName + " " + request.CustomerDetails.LastName
	subject := "New rental request"
	plainText := fmt.Sprintf("%s requested vehicle %d from %s to %s.",
		name, request.VehicleID,
		request.StartDate.Format("2006-01-02 15:04"),
		request.EndDate.Format("2006-01-02 15:04"))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>New Rental Request</h2>
				<p><strong>%s</strong> requested vehicle <strong>%d</strong>.</p>
				<p>From %s to %s.</p>
			</body>
		</html>
	`, name, request.VehicleID,
		request.StartDate.Format("2006-01-02 15:04"),
		request.EndDate.Format("2006-01-02 15:04"))

	return s.send(staffEmail, "Staff", subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendApprovalNotification(ctx context.Context, customerEmail, customerName string, rental *domain.Rental, bankAccount string) error {
	subject := "Your rental request was approved"
	plainText := fmt.Sprintf("Hello %s, your rental from %s to %s is confirmed. Total: %.2f. Payment account: %s.",
		customerName,
		rental.StartDate.Format("2006-01-02 15:04"),
		rental.EndDate.Format("2006-01-02 15:04"),
		float64(rental.TotalPriceCents)/100, bankAccount)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Confirmed</h2>
				<p>Hello %s, your rental from <strong>%s</strong> to <strong>%s</strong> is confirmed.</p>
				<p>Total: <strong>%.2f</strong></p>
				<p>Payment account: %s</p>
			</body>
		</html>
	`, customerName,
		rental.StartDate.Format("2006-01-02 15:04"),
		rental.EndDate.Format("2006-01-02 15:04"),
		float64(rental.TotalPriceCents)/100, bankAccount)

	return s.send(customerEmail, customerName, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendRejectionNotification(ctx context.Context, customerEmail, customerName string) error {
	subject := "Your rental request"
	plainText := fmt.Sprintf("Hello %s, unfortunately we cannot accommodate your rental request.", customerName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hello %s,</p>
				<p>Unfortunately we cannot accommodate your rental request.</p>
			</body>
		</html>
	`, customerName)

	return s.send(customerEmail, customerName, subject, plainText, htmlContent)
}

// noopEmailService drops every message. Used in development and tests.
type noopEmailService struct{}

func (n *noopEmailService) SendRequestReceivedNotification(ctx context.Context, staffEmail string, request *domain.RentalRequest) error {
	logger.WithComponent("email").Debug("email disabled, dropping request notification", "request_id", request.ID)
	return nil
}

func (n *noopEmailService) SendApprovalNotification(ctx context.Context, customerEmail, customerName string, rental *domain.Rental, bankAccount string) error {
	logger.WithComponent("email").Debug("email disabled, dropping approval notification", "rental_id", rental.ID)
	return nil
}

func (n *noopEmailService) SendRejectionNotification(ctx context.Context, customerEmail, customerName string) error {
	logger.WithComponent("email").Debug("email disabled, dropping rejection notification")
	return nil
}
