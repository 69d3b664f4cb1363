package controllers

import (
	"strconv"

	"tuthien/config"
	"tuthien/dto"
	"tuthien/middleware"
	"tuthien/models"
	"tuthien/policy"
	"tuthien/response"

	"github.com/gin-gonic/gin"
)

func toNotificationResponse(n models.Notification) dto.NotificationResponse {
	resp := dto.NotificationResponse{
		ID:       n.ID,
		SenderID: n.SenderID,
		Type:     n.Type,
		Title:    n.Title,
		Message:  n.Message,
		Related: dto.Related{
			Kind: n.RelatedTo.Kind,
			ID:   n.RelatedTo.ID,
		},
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if n.Sender != nil {
		resp.SenderName = n.Sender.FullName
	}
	return resp
}

// GetNotifications thông báo của chính người gọi, mới nhất trước
func GetNotifications(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Notification{}).Where("recipient_id = ?", actor.ID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var notifications []models.Notification
	if err := query.Preload("Sender").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, toNotificationResponse(n))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

func GetUnreadCount(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var count int64
	if err := config.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", actor.ID, false).
		Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.UnreadCountResponse{Count: count})
}

func loadOwnNotification(c *gin.Context, op policy.Operation) (models.Notification, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return models.Notification{}, false
	}

	var notification models.Notification
	if err := config.DB.First(&notification, id).Error; err != nil {
		response.NotFound(c, "Thông báo không tồn tại")
		return models.Notification{}, false
	}

	in := actorInput(c, op)
	in.TargetOwnerID = notification.RecipientID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return models.Notification{}, false
	}
	return notification, true
}

// MarkAsRead đánh dấu đã đọc, gọi lại trên thông báo đã đọc vẫn thành công
func MarkAsRead(c *gin.Context) {
	notification, ok := loadOwnNotification(c, policy.OpNotificationRead)
	if !ok {
		return
	}

	if !notification.IsRead {
		if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
			response.ServerError(c)
			return
		}
		notification.IsRead = true
	}

	response.SuccessWithMessage(c, "Đã đánh dấu đã đọc", toNotificationResponse(notification))
}

// MarkAllAsRead đánh dấu đã đọc toàn bộ, trả về số thông báo bị ảnh hưởng
func MarkAllAsRead(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	result := config.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", actor.ID, false).
		Update("is_read", true)
	if result.Error != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đã đánh dấu đã đọc toàn bộ", dto.MarkAllReadResponse{Affected: result.RowsAffected})
}

func DeleteNotification(c *gin.Context) {
	notification, ok := loadOwnNotification(c, policy.OpNotificationDelete)
	if !ok {
		return
	}

	if err := config.DB.Delete(&notification).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Xóa thông báo thành công", nil)
}
