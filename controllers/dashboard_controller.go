package controllers

import (
	"tuthien/config"
	"tuthien/constants"
	"tuthien/dto"
	"tuthien/models"
	"tuthien/policy"
	"tuthien/response"

	"github.com/gin-gonic/gin"
)

func countWhere(model interface{}, query string, args ...interface{}) (int64, error) {
	var count int64
	db := config.DB.Model(model)
	if query != "" {
		db = db.Where(query, args...)
	}
	err := db.Count(&count).Error
	return count, err
}

// GetDashboardStats số liệu tổng hợp cho trang quản trị
func GetDashboardStats(c *gin.Context) {
	in := actorInput(c, policy.OpDashboardView)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var stats dto.DashboardStats
	var err error

	counts := []struct {
		dest  *int64
		model interface{}
		query string
		args  []interface{}
	}{
		{&stats.Campaigns.Total, &models.Campaign{}, "", nil},
		{&stats.Campaigns.Active, &models.Campaign{}, "status = ?", []interface{}{constants.CampaignStatusActive}},
		{&stats.Campaigns.Completed, &models.Campaign{}, "status = ?", []interface{}{constants.CampaignStatusCompleted}},
		{&stats.Campaigns.Cancelled, &models.Campaign{}, "status = ?", []interface{}{constants.CampaignStatusCancelled}},
		{&stats.Applications.Total, &models.Application{}, "", nil},
		{&stats.Applications.Pending, &models.Application{}, "status = ?", []interface{}{constants.ApplicationStatusPending}},
		{&stats.Applications.Approved, &models.Application{}, "status = ?", []interface{}{constants.ApplicationStatusApproved}},
		{&stats.Applications.Rejected, &models.Application{}, "status = ?", []interface{}{constants.ApplicationStatusRejected}},
		{&stats.Users.Total, &models.User{}, "", nil},
		{&stats.Users.Admins, &models.User{}, "role = ?", []interface{}{constants.RoleAdmin}},
		{&stats.Users.Superadmins, &models.User{}, "role = ?", []interface{}{constants.RoleSuperAdmin}},
	}

	for _, item := range counts {
		*item.dest, err = countWhere(item.model, item.query, item.args...)
		if err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, stats)
}

// GetRecentActivities các đơn và chiến dịch mới nhất cho trang quản trị
func GetRecentActivities(c *gin.Context) {
	in := actorInput(c, policy.OpDashboardView)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var recentApplications []models.Application
	if err := config.DB.Preload("User").
		Order("created_at DESC").Limit(5).
		Find(&recentApplications).Error; err != nil {
		response.ServerError(c)
		return
	}

	var recentCampaigns []models.Campaign
	if err := config.DB.Preload("CreatedBy").
		Order("created_at DESC").Limit(5).
		Find(&recentCampaigns).Error; err != nil {
		response.ServerError(c)
		return
	}

	apps := make([]dto.ApplicationResponse, 0, len(recentApplications))
	for _, app := range recentApplications {
		apps = append(apps, toApplicationResponse(app))
	}

	campaigns := make([]dto.CampaignResponse, 0, len(recentCampaigns))
	for _, campaign := range recentCampaigns {
		campaigns = append(campaigns, toCampaignResponse(campaign))
	}

	response.Success(c, gin.H{
		"recentApplications": apps,
		"recentCampaigns":    campaigns,
	})
}
