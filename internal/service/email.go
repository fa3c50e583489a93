package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"equipment-rental-backend/internal/domain"
	"equipment-rental-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSettings configures the SendGrid sender and the admin inbox.
type EmailSettings struct {
	APIKey     string
	FromEmail  string
	FromName   string
	AdminEmail string
}

type sendFunc func(ctx context.Context, msg *mail.SGMailV3) (*rest.Response, error)

type sendGridEmailService struct {
	settings EmailSettings
	send     sendFunc
}

// NewEmailService returns a SendGrid-backed service, or a log-only one when no API key is set.
func NewEmailService(settings EmailSettings) EmailService {
	if settings.APIKey == "" {
		return &logEmailService{}
	}
	client := sendgrid.NewSendClient(settings.APIKey)
	return &sendGridEmailService{
		settings: settings,
		send:     client.SendWithContext,
	}
}

func (s *sendGridEmailService) deliver(ctx context.Context, operation string, msg *mail.SGMailV3) error {
	logger.ExternalServiceCall("sendgrid", operation, "subject", msg.Subject)
	response, err := s.send(ctx, msg)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", operation, err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *sendGridEmailService) SendRentalRequestNotification(ctx context.Context, req *domain.RentalRequest, equipmentName string) error {
	return s.deliver(ctx, "rental_request", buildRentalRequestEmail(s.settings, req, equipmentName))
}

func (s *sendGridEmailService) SendOverdueDigest(ctx context.Context, overdue []domain.RentalRequest) error {
	if len(overdue) == 0 {
		return nil
	}
	return s.deliver(ctx, "overdue_digest", buildOverdueDigestEmail(s.settings, overdue))
}

func buildRentalRequestEmail(settings EmailSettings, req *domain.RentalRequest, equipmentName string) *mail.SGMailV3 {
	from := mail.NewEmail(settings.FromName, settings.FromEmail)
	to := mail.NewEmail("Admin", settings.AdminEmail)
	subject := fmt.Sprintf("New rental request: %s", equipmentName)

	plainText := fmt.Sprintf("%s (student ID %s, phone %s) requested %s from %s to %s.",
		req.Name, req.StudentID, req.Phone, equipmentName, req.StartDate, req.EndDate)
	htmlContent := fmt.Sprintf(`<html><body>
<h2>New rental request</h2>
<p><strong>%s</strong> (student ID %s, phone %s) requested <strong>%s</strong>.</p>
<p>%s to %s</p>
</body></html>`,
		html.EscapeString(req.Name), html.EscapeString(req.StudentID), html.EscapeString(req.Phone),
		html.EscapeString(equipmentName), req.StartDate, req.EndDate)

	return mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
}

func buildOverdueDigestEmail(settings EmailSettings, overdue []domain.RentalRequest) *mail.SGMailV3 {
	from := mail.NewEmail(settings.FromName, settings.FromEmail)
	to := mail.NewEmail("Admin", settings.AdminEmail)
	subject := fmt.Sprintf("%d overdue rentals", len(overdue))

	var plain, rows strings.Builder
	for _, r := range overdue {
		name := r.EquipmentNameOr("(deleted equipment)")
		fmt.Fprintf(&plain, "- %s: %s (%s), due %s\n", name, r.Name, r.Phone, r.EndDate)
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(name), html.EscapeString(r.Name), html.EscapeString(r.Phone), r.EndDate)
	}
	htmlContent := "<html><body><h2>Overdue rentals</h2><table>\n" +
		"<tr><th>Equipment</th><th>Renter</th><th>Phone</th><th>Due</th></tr>\n" +
		rows.String() + "</table></body></html>"

	return mail.NewSingleEmail(from, subject, to, plain.String(), htmlContent)
}

// logEmailService stands in when SendGrid is not configured.
type logEmailService struct{}

func (s *logEmailService) SendRentalRequestNotification(ctx context.Context, req *domain.RentalRequest, equipmentName string) error {
	logger.InfoContext(ctx, "Rental request notification (email disabled)",
		"requestID", req.ID, "equipment", equipmentName, "start", req.StartDate, "end", req.EndDate)
	return nil
}

func (s *logEmailService) SendOverdueDigest(ctx context.Context, overdue []domain.RentalRequest) error {
	for _, r := range overdue {
		logger.InfoContext(ctx, "Overdue rental (email disabled)",
			"requestID", r.ID, "equipment", r.EquipmentNameOr(""), "renter", r.Name, "due", r.EndDate)
	}
	return nil
}
