package notification

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

const collectionNotifications = "notifications"

// Sender delivers a notification to a seller's in-app inbox.
type Sender interface {
	SendNotification(ctx context.Context, notification *Notification) error
}

type NotificationService struct {
	client *firestore.Client
}

func NewNotificationService(ctx context.Context, firebaseApp *firebase.App) (*NotificationService, error) {
	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return &NotificationService{
		client: firestoreClient,
	}, nil
}

func (s *NotificationService) Close() error {
	return s.client.Close()
}
