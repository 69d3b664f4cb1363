package controllers

import (
	"strconv"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/dto"
	"tuthien/middleware"
	"tuthien/models"
	"tuthien/policy"
	"tuthien/response"
	"tuthien/services"

	"github.com/gin-gonic/gin"
)

func toMessageResponse(msg models.Message) dto.MessageResponse {
	resp := dto.MessageResponse{
		ID:             msg.ID,
		SenderID:       msg.SenderID,
		ApplicationID:  msg.ApplicationID,
		Content:        msg.Content,
		IsAdminMessage: msg.IsAdminMessage,
		CreatedAt:      msg.CreatedAt,
	}
	if msg.Sender != nil {
		resp.SenderName = msg.Sender.FullName
	}
	return resp
}

// SendMessage gửi tin nhắn vào luồng trao đổi của một đơn. Chỉ chủ đơn và
// quản trị viên mới tham gia được luồng này.
func SendMessage(c *gin.Context) {
	var input dto.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var app models.Application
	if err := config.DB.First(&app, input.ApplicationID).Error; err != nil {
		response.NotFound(c, "Đơn xin hỗ trợ không tồn tại")
		return
	}

	in := actorInput(c, policy.OpMessageSend)
	in.TargetOwnerID = app.UserID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	actor, _ := middleware.CurrentUser(c)

	msg := models.Message{
		SenderID:       actor.ID,
		ApplicationID:  app.ID,
		Content:        input.Content,
		IsAdminMessage: constants.IsAdminTier(actor.Role),
	}

	if err := config.DB.Create(&msg).Error; err != nil {
		response.ServerError(c)
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, app.UserID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.NotifyMessageSent(actor, app, owner, msg); err != nil {
		response.ServerError(c)
		return
	}

	msg.Sender = &actor
	response.Created(c, "Gửi tin nhắn thành công", toMessageResponse(msg))
}

// GetMessages toàn bộ tin nhắn của một đơn, cũ nhất trước
func GetMessages(c *gin.Context) {
	appID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var app models.Application
	if err := config.DB.First(&app, appID).Error; err != nil {
		response.NotFound(c, "Đơn xin hỗ trợ không tồn tại")
		return
	}

	in := actorInput(c, policy.OpMessageList)
	in.TargetOwnerID = app.UserID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var messages []models.Message
	if err := config.DB.Preload("Sender").
		Where("application_id = ?", app.ID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		result = append(result, toMessageResponse(msg))
	}

	response.SuccessWithCount(c, result, len(result))
}
