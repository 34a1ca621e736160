package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/katatrina/sellerops-BE/internal/status"
	"github.com/rs/zerolog/log"
)

func (s *NotificationService) SendNotification(ctx context.Context, notification *Notification) error {
	_, _, err := s.client.Collection(collectionNotifications).Add(ctx, documentFields(notification, time.Now()))
	if err != nil {
		log.Error().Err(err).Str("referenceID", notification.ReferenceID).Msg("failed to send notification")
		return err
	}

	log.Info().Str("recipientID", notification.RecipientID).Str("referenceID", notification.ReferenceID).Msg("notification sent successfully")
	return nil
}

func documentFields(notification *Notification, now time.Time) map[string]interface{} {
	createdAt := notification.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	return map[string]interface{}{
		"recipientID": notification.RecipientID,
		"title":       notification.Title,
		"message":     notification.Message,
		"type":        notification.Type,
		"referenceID": notification.ReferenceID,
		"isRead":      notification.IsRead,
		"createdAt":   createdAt,
	}
}

// NewMismatchNotification tells a seller that the marketplace and our side
// disagree on the state of one of their orders or returns.
func NewMismatchNotification(sellerID string, row status.Row) *Notification {
	label := "Order"
	if row.EntityType == status.EntityTypeReturn {
		label = "Return"
	}

	displayID := row.DisplayID
	if displayID == "" {
		displayID = row.ID
	}

	return &Notification{
		RecipientID: sellerID,
		Title:       fmt.Sprintf("%s %s status mismatch", label, displayID),
		Message: fmt.Sprintf("Marketplace reports %q (%s) but our records show %q (%s).",
			row.MarketplaceStatusRaw, row.MarketplaceCanonical,
			row.OurStatusRaw, row.OurCanonical),
		Type:        TypeStatusMismatch,
		ReferenceID: row.ID,
	}
}
