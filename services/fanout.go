package services

import (
	"encoding/json"
	"fmt"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/models"
	"tuthien/utils"

	"github.com/olahol/melody"
)

// mel là instance websocket dùng để đẩy thông báo realtime, gán từ main
var mel *melody.Melody

// SetMelody gán instance websocket cho fan-out
func SetMelody(m *melody.Melody) {
	mel = m
}

// emailJob là một email chờ gửi sau khi bản ghi thông báo đã được tạo
type emailJob struct {
	To      string
	Subject string
	Body    string
}

// BuildApplicationSubmitted tạo thông báo "đơn mới" cho từng admin/superadmin
func BuildApplicationSubmitted(admins []models.User, sender models.User, app models.Application) []models.Notification {
	notifications := make([]models.Notification, 0, len(admins))
	for _, admin := range admins {
		senderID := sender.ID
		notifications = append(notifications, models.Notification{
			RecipientID: admin.ID,
			SenderID:    &senderID,
			Type:        constants.NotificationApplicationSubmitted,
			Title:       "Đơn xin hỗ trợ mới",
			Message:     fmt.Sprintf(`Đơn xin hỗ trợ mới "%s" vừa được gửi`, app.Title),
			RelatedTo:   models.RelatedToApplication(app.ID),
		})
	}
	return notifications
}

// BuildApplicationStatusChanged tạo thông báo kết quả xét duyệt cho chủ đơn
func BuildApplicationStatusChanged(app models.Application, actorID uint, note string) models.Notification {
	message := fmt.Sprintf(`Đơn xin hỗ trợ "%s" của bạn đã được chuyển sang trạng thái %s`, app.Title, app.Status)
	if note != "" {
		message += ": " + note
	}
	return models.Notification{
		RecipientID: app.UserID,
		SenderID:    &actorID,
		Type:        constants.NotificationApplicationResponse,
		Title:       "Cập nhật trạng thái đơn",
		Message:     message,
		RelatedTo:   models.RelatedToApplication(app.ID),
	}
}

// BuildCampaignStatusChanged tạo thông báo cập nhật chiến dịch cho từng user thường
func BuildCampaignStatusChanged(users []models.User, campaign models.Campaign, actorID uint) []models.Notification {
	notifications := make([]models.Notification, 0, len(users))
	for _, user := range users {
		senderID := actorID
		notifications = append(notifications, models.Notification{
			RecipientID: user.ID,
			SenderID:    &senderID,
			Type:        constants.NotificationCampaignUpdate,
			Title:       "Cập nhật chiến dịch",
			Message:     fmt.Sprintf(`Chiến dịch "%s" đã được chuyển sang trạng thái %s`, campaign.Title, campaign.Status),
			RelatedTo:   models.RelatedToCampaign(campaign.ID),
		})
	}
	return notifications
}

// BuildMessageFromUser tạo thông báo tin nhắn mới cho từng admin/superadmin
func BuildMessageFromUser(admins []models.User, sender models.User, app models.Application, msg models.Message) []models.Notification {
	notifications := make([]models.Notification, 0, len(admins))
	for _, admin := range admins {
		senderID := sender.ID
		notifications = append(notifications, models.Notification{
			RecipientID: admin.ID,
			SenderID:    &senderID,
			Type:        constants.NotificationMessageReceived,
			Title:       "Tin nhắn mới",
			Message:     fmt.Sprintf(`Tin nhắn mới từ %s về đơn "%s"`, sender.FullName, app.Title),
			RelatedTo:   models.RelatedToMessage(msg.ID),
		})
	}
	return notifications
}

// BuildMessageFromAdmin tạo thông báo tin nhắn mới cho chủ đơn
func BuildMessageFromAdmin(app models.Application, sender models.User, msg models.Message) models.Notification {
	senderID := sender.ID
	return models.Notification{
		RecipientID: app.UserID,
		SenderID:    &senderID,
		Type:        constants.NotificationMessageReceived,
		Title:       "Tin nhắn mới",
		Message:     fmt.Sprintf(`Tin nhắn mới từ quản trị viên về đơn "%s" của bạn`, app.Title),
		RelatedTo:   models.RelatedToMessage(msg.ID),
	}
}

// BuildCampaignAssigned tạo thông báo gán chiến dịch cho chủ đơn
func BuildCampaignAssigned(app models.Application, campaign models.Campaign, actorID uint) models.Notification {
	return models.Notification{
		RecipientID: app.UserID,
		SenderID:    &actorID,
		Type:        constants.NotificationApplicationResponse,
		Title:       "Cập nhật đơn xin hỗ trợ",
		Message:     fmt.Sprintf(`Đơn "%s" của bạn đã được gán vào chiến dịch "%s"`, app.Title, campaign.Title),
		RelatedTo:   models.RelatedToApplication(app.ID),
	}
}

// SaveNotifications ghi các bản ghi thông báo. Bước này là một phần của thao
// tác gốc: ghi thất bại thì handler phải báo lỗi.
func SaveNotifications(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return config.DB.Create(&notifications).Error
}

// DispatchEmails gửi email cho từng người nhận trong một goroutine riêng.
// Gửi thất bại chỉ ghi log, không bao giờ làm hỏng request gốc và không retry.
func DispatchEmails(jobs []emailJob) {
	go func() {
		for _, job := range jobs {
			if err := SendEmail(job.To, job.Subject, job.Body); err != nil {
				utils.LogError("Không gửi được email đến %s: %v", job.To, err)
			}
		}
	}()
}

// BroadcastNotifications đẩy thông báo mới qua websocket, best-effort
func BroadcastNotifications(notifications []models.Notification) {
	if mel == nil {
		return
	}
	for _, n := range notifications {
		payload, err := json.Marshal(map[string]interface{}{
			"recipientId": n.RecipientID,
			"type":        n.Type,
			"title":       n.Title,
			"message":     n.Message,
		})
		if err != nil {
			continue
		}
		if err := mel.Broadcast(payload); err != nil {
			utils.LogError("Không broadcast được thông báo: %v", err)
		}
	}
}

// NotifyApplicationSubmitted chạy fan-out khi có đơn mới: ghi thông báo cho
// toàn bộ admin/superadmin rồi gửi email + broadcast ngoài request
func NotifyApplicationSubmitted(sender models.User, app models.Application, campaignTitle string) error {
	admins, err := GetAdminTierUsers()
	if err != nil {
		return err
	}

	notifications := BuildApplicationSubmitted(admins, sender, app)
	if err := SaveNotifications(notifications); err != nil {
		return err
	}

	jobs := make([]emailJob, 0, len(admins))
	for _, admin := range admins {
		jobs = append(jobs, emailJob{
			To:      admin.Email,
			Subject: "Đơn xin hỗ trợ mới",
			Body:    NewApplicationEmailBody(app.Title, app.FullName, app.Email, campaignTitle, app.Description),
		})
	}
	DispatchEmails(jobs)
	BroadcastNotifications(notifications)

	return nil
}

// NotifyApplicationStatusChanged chạy fan-out khi đơn được xét duyệt
func NotifyApplicationStatusChanged(app models.Application, owner models.User, actorID uint, note string) error {
	notification := BuildApplicationStatusChanged(app, actorID, note)
	if err := SaveNotifications([]models.Notification{notification}); err != nil {
		return err
	}

	DispatchEmails([]emailJob{{
		To:      owner.Email,
		Subject: "Cập nhật trạng thái đơn",
		Body:    ApplicationStatusEmailBody(owner.FullName, app.Title, app.Status, note),
	}})
	BroadcastNotifications([]models.Notification{notification})

	return nil
}

// NotifyCampaignStatusChanged chạy fan-out khi chiến dịch đổi trạng thái:
// mỗi user thường nhận đúng một thông báo campaign_update
func NotifyCampaignStatusChanged(campaign models.Campaign, actorID uint) error {
	users, err := GetRegularUsers()
	if err != nil {
		return err
	}

	notifications := BuildCampaignStatusChanged(users, campaign, actorID)
	if err := SaveNotifications(notifications); err != nil {
		return err
	}

	BroadcastNotifications(notifications)

	return nil
}

// NotifyMessageSent chạy fan-out khi có tin nhắn mới: user gửi thì báo admin,
// admin gửi thì báo chủ đơn
func NotifyMessageSent(sender models.User, app models.Application, owner models.User, msg models.Message) error {
	if constants.IsAdminTier(sender.Role) {
		notification := BuildMessageFromAdmin(app, sender, msg)
		if err := SaveNotifications([]models.Notification{notification}); err != nil {
			return err
		}

		DispatchEmails([]emailJob{{
			To:      owner.Email,
			Subject: "Tin nhắn mới",
			Body:    NewMessageEmailBody(owner.FullName, app.Title, fmt.Sprintf("Quản trị viên (%s)", sender.FullName), msg.Content),
		}})
		BroadcastNotifications([]models.Notification{notification})

		return nil
	}

	admins, err := GetAdminTierUsers()
	if err != nil {
		return err
	}

	notifications := BuildMessageFromUser(admins, sender, app, msg)
	if err := SaveNotifications(notifications); err != nil {
		return err
	}

	jobs := make([]emailJob, 0, len(admins))
	for _, admin := range admins {
		jobs = append(jobs, emailJob{
			To:      admin.Email,
			Subject: "Tin nhắn mới",
			Body:    NewMessageEmailBody(admin.FullName, app.Title, sender.FullName, msg.Content),
		})
	}
	DispatchEmails(jobs)
	BroadcastNotifications(notifications)

	return nil
}

// NotifyCampaignAssigned chạy fan-out khi đơn được gán vào chiến dịch
func NotifyCampaignAssigned(app models.Application, campaign models.Campaign, actorID uint) error {
	notification := BuildCampaignAssigned(app, campaign, actorID)
	if err := SaveNotifications([]models.Notification{notification}); err != nil {
		return err
	}

	BroadcastNotifications([]models.Notification{notification})

	return nil
}
