package constants

// Notification type
const (
	NotificationApplicationSubmitted = "application_submitted"
	NotificationApplicationResponse  = "application_response"
	NotificationMessageReceived      = "message_received"
	NotificationCampaignUpdate       = "campaign_update"
	NotificationSystem               = "system"
)

// RelatedKind là loại thực thể mà notification trỏ đến
const (
	RelatedApplication = "application"
	RelatedCampaign    = "campaign"
	RelatedMessage     = "message"
	RelatedUser        = "user"
)

// NotificationTypes là tập giá trị hợp lệ của loại thông báo
var NotificationTypes = []string{
	NotificationApplicationSubmitted,
	NotificationApplicationResponse,
	NotificationMessageReceived,
	NotificationCampaignUpdate,
	NotificationSystem,
}

// IsValidNotificationType kiểm tra type có hợp lệ không
func IsValidNotificationType(t string) bool {
	for _, v := range NotificationTypes {
		if v == t {
			return true
		}
	}
	return false
}
