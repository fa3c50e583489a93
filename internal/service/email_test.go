package service

import (
	"context"
	"errors"
	"testing"

	"equipment-rental-backend/internal/domain"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmailSettings = EmailSettings{
	APIKey:     "SG.test",
	FromEmail:  "noreply@rental.example.org",
	FromName:   "Equipment Rental",
	AdminEmail: "admin@rental.example.org",
}

func TestNewEmailService_DisabledWithoutKey(t *testing.T) {
	svc := NewEmailService(EmailSettings{})
	_, ok := svc.(*logEmailService)
	assert.True(t, ok)

	assert.NoError(t, svc.SendRentalRequestNotification(context.Background(), pendingRequest(), "Tripod"))
	assert.NoError(t, svc.SendOverdueDigest(context.Background(), []domain.RentalRequest{*pendingRequest()}))
}

func TestSendGridEmailService_SendRentalRequestNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var sent *mail.SGMailV3
		svc := &sendGridEmailService{
			settings: testEmailSettings,
			send: func(_ context.Context, msg *mail.SGMailV3) (*rest.Response, error) {
				sent = msg
				return &rest.Response{StatusCode: 202}, nil
			},
		}

		req := pendingRequest()
		req.Name = "<Kim>"
		require.NoError(t, svc.SendRentalRequestNotification(ctx, req, "Tripod"))

		require.NotNil(t, sent)
		assert.Equal(t, "New rental request: Tripod", sent.Subject)
		assert.Equal(t, "noreply@rental.example.org", sent.From.Address)
		assert.Equal(t, "admin@rental.example.org", sent.Personalizations[0].To[0].Address)
		require.Len(t, sent.Content, 2)
		assert.Contains(t, sent.Content[0].Value, "2025-02-07 to 2025-02-09")
		assert.Contains(t, sent.Content[1].Value, "&lt;Kim&gt;")
	})

	t.Run("HTTPError", func(t *testing.T) {
		svc := &sendGridEmailService{
			settings: testEmailSettings,
			send: func(context.Context, *mail.SGMailV3) (*rest.Response, error) {
				return &rest.Response{StatusCode: 401, Body: "unauthorized"}, nil
			},
		}

		err := svc.SendRentalRequestNotification(ctx, pendingRequest(), "Tripod")
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("TransportError", func(t *testing.T) {
		svc := &sendGridEmailService{
			settings: testEmailSettings,
			send: func(context.Context, *mail.SGMailV3) (*rest.Response, error) {
				return nil, errors.New("dial tcp: timeout")
			},
		}

		err := svc.SendRentalRequestNotification(ctx, pendingRequest(), "Tripod")
		assert.ErrorContains(t, err, "dial tcp")
	})
}

func TestSendGridEmailService_SendOverdueDigest(t *testing.T) {
	ctx := context.Background()
	calls := 0
	var sent *mail.SGMailV3
	svc := &sendGridEmailService{
		settings: testEmailSettings,
		send: func(_ context.Context, msg *mail.SGMailV3) (*rest.Response, error) {
			calls++
			sent = msg
			return &rest.Response{StatusCode: 202}, nil
		},
	}

	t.Run("NothingOverdue", func(t *testing.T) {
		require.NoError(t, svc.SendOverdueDigest(ctx, nil))
		assert.Zero(t, calls)
	})

	t.Run("ListsEachRental", func(t *testing.T) {
		name := "Tripod"
		first := *pendingRequest()
		first.EquipmentName = &name
		second := *pendingRequest()
		second.ID = "r-2"

		require.NoError(t, svc.SendOverdueDigest(ctx, []domain.RentalRequest{first, second}))
		assert.Equal(t, 1, calls)
		assert.Equal(t, "2 overdue rentals", sent.Subject)
		assert.Contains(t, sent.Content[0].Value, "- Tripod: Kim Minji")
		assert.Contains(t, sent.Content[0].Value, "(deleted equipment)")
	})
}
