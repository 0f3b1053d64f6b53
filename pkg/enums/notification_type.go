package enums

import "fmt"

// NotificationType labels in-app notifications delivered to users.
type NotificationType string

const (
	NotificationTypePostPublished NotificationType = "post_published"
	NotificationTypePostFailed    NotificationType = "post_failed"
	NotificationTypePostScheduled NotificationType = "post_scheduled"
	NotificationTypeTeamInvite    NotificationType = "team_invite"
	NotificationTypeSystem        NotificationType = "system"
)

var validNotificationTypes = []NotificationType{
	NotificationTypePostPublished,
	NotificationTypePostFailed,
	NotificationTypePostScheduled,
	NotificationTypeTeamInvite,
	NotificationTypeSystem,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts raw strings into NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}
