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

func toApplicationResponse(app models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:                app.ID,
		Title:             app.Title,
		Description:       app.Description,
		ProofDocuments:    app.ProofDocuments,
		FullName:          app.FullName,
		Email:             app.Email,
		AdditionalDetails: app.AdditionalDetails,
		Status:            app.Status,
		UserID:            app.UserID,
		CampaignID:        app.CampaignID,
		CreatedAt:         app.CreatedAt,
		UpdatedAt:         app.UpdatedAt,
	}
	if app.User != nil {
		resp.UserName = app.User.FullName
	}
	if app.Campaign != nil {
		resp.CampaignTitle = app.Campaign.Title
	}
	return resp
}

// SubmitApplication nộp đơn xin hỗ trợ; nếu gắn vào chiến dịch thì chiến
// dịch đó phải đang hoạt động
func SubmitApplication(c *gin.Context) {
	in := actorInput(c, policy.OpApplicationSubmit)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor, _ := middleware.CurrentUser(c)

	var campaignTitle string
	if input.CampaignID != nil {
		var campaign models.Campaign
		if err := config.DB.First(&campaign, *input.CampaignID).Error; err != nil {
			response.NotFound(c, "Chiến dịch không tồn tại")
			return
		}
		if campaign.Status != constants.CampaignStatusActive {
			response.BadRequest(c, "Không thể nộp đơn vào chiến dịch không còn hoạt động")
			return
		}
		campaignTitle = campaign.Title
	}

	app := models.Application{
		Title:             input.Title,
		Description:       input.Description,
		ProofDocuments:    input.ProofDocuments,
		FullName:          input.FullName,
		Email:             input.Email,
		AdditionalDetails: input.AdditionalDetails,
		Status:            constants.ApplicationStatusPending,
		UserID:            actor.ID,
		CampaignID:        input.CampaignID,
	}

	if err := config.DB.Create(&app).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.NotifyApplicationSubmitted(actor, app, campaignTitle); err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Nộp đơn thành công", toApplicationResponse(app))
}

// GetApplications danh sách đơn cho quản trị viên, lọc theo trạng thái và
// chiến dịch
func GetApplications(c *gin.Context) {
	in := actorInput(c, policy.OpApplicationList)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	page, limit := parsePagination(c)
	statusFilter := c.Query("status")
	campaignFilter := c.Query("campaignId")

	if statusFilter != "" && !constants.IsValidApplicationStatus(statusFilter) {
		response.BadRequest(c, "Trạng thái đơn không hợp lệ")
		return
	}

	query := config.DB.Model(&models.Application{}).Preload("User").Preload("Campaign")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}
	if campaignFilter != "" {
		campaignID, err := strconv.Atoi(campaignFilter)
		if err != nil {
			response.BadRequest(c, "campaignId không hợp lệ")
			return
		}
		query = query.Where("campaign_id = ?", campaignID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var apps []models.Application
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&apps).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, toApplicationResponse(app))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

func GetMyApplications(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var apps []models.Application
	if err := config.DB.Preload("Campaign").
		Where("user_id = ?", actor.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		result = append(result, toApplicationResponse(app))
	}

	response.SuccessWithCount(c, result, len(result))
}

func loadApplication(c *gin.Context) (models.Application, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return models.Application{}, false
	}

	var app models.Application
	if err := config.DB.Preload("User").Preload("Campaign").First(&app, id).Error; err != nil {
		response.NotFound(c, "Đơn xin hỗ trợ không tồn tại")
		return models.Application{}, false
	}
	return app, true
}

// GetApplicationByID chủ đơn hoặc quản trị viên mới được xem
func GetApplicationByID(c *gin.Context) {
	app, ok := loadApplication(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpApplicationView)
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

	msgs := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		msgs = append(msgs, toMessageResponse(msg))
	}

	response.Success(c, gin.H{
		"application": toApplicationResponse(app),
		"messages":    msgs,
	})
}

// ChangeApplicationStatus xét duyệt đơn và thông báo cho chủ đơn
func ChangeApplicationStatus(c *gin.Context) {
	app, ok := loadApplication(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpApplicationChangeStatus)
	in.TargetOwnerID = app.UserID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateApplicationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor, _ := middleware.CurrentUser(c)

	if err := config.DB.Model(&app).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}
	app.Status = input.Status

	var owner models.User
	if err := config.DB.First(&owner, app.UserID).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.NotifyApplicationStatusChanged(app, owner, actor.ID, input.Message); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Cập nhật trạng thái đơn thành công", toApplicationResponse(app))
}

func DeleteApplication(c *gin.Context) {
	app, ok := loadApplication(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpApplicationDelete)
	in.TargetOwnerID = app.UserID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	// Xóa tin nhắn của đơn trước để tránh bản ghi mồ côi
	if err := config.DB.Where("application_id = ?", app.ID).Delete(&models.Message{}).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&app).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Xóa đơn thành công", nil)
}

// AssignCampaign gán đơn vào một chiến dịch đang hoạt động
func AssignCampaign(c *gin.Context) {
	app, ok := loadApplication(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpApplicationAssignCampaign)
	in.TargetOwnerID = app.UserID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.AssignCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var campaign models.Campaign
	if err := config.DB.First(&campaign, input.CampaignID).Error; err != nil {
		response.NotFound(c, "Chiến dịch không tồn tại")
		return
	}
	if campaign.Status != constants.CampaignStatusActive {
		response.BadRequest(c, "Không thể gán đơn vào chiến dịch không còn hoạt động")
		return
	}

	actor, _ := middleware.CurrentUser(c)

	if err := config.DB.Model(&app).Update("campaign_id", campaign.ID).Error; err != nil {
		response.ServerError(c)
		return
	}
	app.CampaignID = &campaign.ID

	if err := services.NotifyCampaignAssigned(app, campaign, actor.ID); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Gán chiến dịch thành công", toApplicationResponse(app))
}
