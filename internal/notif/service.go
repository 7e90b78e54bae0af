package notif

import (
	"time"

	"github.com/google/uuid"

	"postpilot/internal/common"
)

// NotificationService is the common.Notifier implementation handed to the
// publish and analytics paths.
type NotificationService struct {
	manager *NotificationManager
}

func NewNotificationService(manager *NotificationManager) *NotificationService {
	return &NotificationService{manager: manager}
}

func (s *NotificationService) NotifyUser(receiverID, message string) {
	s.manager.NotifyAsync(common.NotificationEvent{
		ID:         uuid.NewString(),
		Type:       common.SystemType,
		ReceiverID: receiverID,
		Message:    message,
		CreatedAt:  time.Now(),
	})
}

func (s *NotificationService) NotifyPublish(receiverID, message string, platform common.Platform, postID string, success bool) {
	eventType := common.PublishSuccessType
	if !success {
		eventType = common.PublishFailureType
	}

	s.manager.NotifyAsync(common.NotificationEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		ReceiverID: receiverID,
		Message:    message,
		Platform:   platform,
		PostID:     postID,
		CreatedAt:  time.Now(),
	})
}
