package controllers

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/dto"
	"tuthien/middleware"
	"tuthien/models"
	"tuthien/policy"
	"tuthien/response"
	"tuthien/services"
	"tuthien/utils"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const activeCampaignsCacheKey = "campaigns:active"

func toCampaignResponse(campaign models.Campaign) dto.CampaignResponse {
	resp := dto.CampaignResponse{
		ID:                campaign.ID,
		Title:             campaign.Title,
		Description:       campaign.Description,
		Images:            campaign.Images,
		AmountNeeded:      campaign.AmountNeeded,
		BankAccountNumber: campaign.BankAccountNumber,
		BankAccountName:   campaign.BankAccountName,
		BankName:          campaign.BankName,
		Status:            campaign.Status,
		CreatedByID:       campaign.CreatedByID,
		CreatedAt:         campaign.CreatedAt,
		UpdatedAt:         campaign.UpdatedAt,
	}
	if campaign.CreatedBy != nil {
		resp.CreatedByName = campaign.CreatedBy.FullName
	}
	return resp
}

func invalidateActiveCampaignsCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, activeCampaignsCacheKey); err != nil {
		utils.LogError("Không xóa được cache chiến dịch: %v", err)
	}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Danh sách tiêu đề duy nhất để dựng matcher
func prepareTitleList(campaigns []models.Campaign) []string {
	uniqueValues := make(map[string]bool)
	for _, campaign := range campaigns {
		if campaign.Title != "" {
			uniqueValues[normalizeInput(campaign.Title)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của chiến dịch so với từ khóa tìm kiếm
func calculateCampaignScore(query string, campaign models.Campaign, cmTitle *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	normalizedTitle := normalizeInput(campaign.Title)
	score := 0

	if strings.Contains(normalizedTitle, normalizedQuery) {
		score += 20
	}
	if cmTitle.Closest(normalizedQuery) == normalizedTitle {
		score += 13
	}

	similarity := calculateSimilarity(normalizedQuery, normalizedTitle)
	if similarity > 0.7 {
		score += 10
	}

	normalizedDesc := normalizeInput(campaign.Description)
	if strings.Contains(normalizedDesc, normalizedQuery) {
		score += 4
	}

	return score
}

type scoredCampaign struct {
	Campaign models.Campaign
	Score    int
}

func filterAndScoreCampaigns(query string, campaigns []models.Campaign, cmTitle *closestmatch.ClosestMatch) []scoredCampaign {
	var filtered []scoredCampaign
	scoreCh := make(chan scoredCampaign, len(campaigns))
	var wg sync.WaitGroup

	for _, campaign := range campaigns {
		wg.Add(1)
		go func(campaign models.Campaign) {
			defer wg.Done()
			score := calculateCampaignScore(query, campaign, cmTitle)
			if score > 0 {
				scoreCh <- scoredCampaign{Campaign: campaign, Score: score}
			}
		}(campaign)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for sc := range scoreCh {
		filtered = append(filtered, sc)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	return filtered
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func CreateCampaign(c *gin.Context) {
	in := actorInput(c, policy.OpCampaignCreate)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.CreateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor, _ := middleware.CurrentUser(c)

	campaign := models.Campaign{
		Title:             input.Title,
		Description:       input.Description,
		Images:            input.Images,
		AmountNeeded:      input.AmountNeeded,
		BankAccountNumber: input.BankAccountNumber,
		BankAccountName:   input.BankAccountName,
		BankName:          input.BankName,
		Status:            constants.CampaignStatusActive,
		CreatedByID:       actor.ID,
	}

	if err := config.DB.Create(&campaign).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateActiveCampaignsCache()

	response.Created(c, "Tạo chiến dịch thành công", toCampaignResponse(campaign))
}

// GetCampaigns danh sách chiến dịch công khai, hỗ trợ lọc theo trạng thái,
// tìm kiếm gần đúng theo từ khóa và phân trang
func GetCampaigns(c *gin.Context) {
	page, limit := parsePagination(c)
	statusFilter := c.Query("status")
	search := c.Query("search")
	sortBy := c.DefaultQuery("sort", "newest")

	if statusFilter != "" && !constants.IsValidCampaignStatus(statusFilter) {
		response.BadRequest(c, "Trạng thái chiến dịch không hợp lệ")
		return
	}

	query := config.DB.Model(&models.Campaign{}).Preload("CreatedBy")
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	switch sortBy {
	case "amount-high":
		query = query.Order("amount_needed DESC")
	case "amount-low":
		query = query.Order("amount_needed ASC")
	case "oldest":
		query = query.Order("created_at ASC")
	default:
		query = query.Order("created_at DESC")
	}

	var campaigns []models.Campaign
	if err := query.Find(&campaigns).Error; err != nil {
		response.ServerError(c)
		return
	}

	if search != "" {
		titles := prepareTitleList(campaigns)
		if len(titles) > 0 {
			cmTitle := createMatcher(titles)
			scored := filterAndScoreCampaigns(search, campaigns, cmTitle)
			campaigns = make([]models.Campaign, 0, len(scored))
			for _, sc := range scored {
				campaigns = append(campaigns, sc.Campaign)
			}
		} else {
			campaigns = nil
		}
	}

	total := len(campaigns)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	result := make([]dto.CampaignResponse, 0, end-start)
	for _, campaign := range campaigns[start:end] {
		result = append(result, toCampaignResponse(campaign))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetActiveCampaigns danh sách chiến dịch đang hoạt động, cache Redis 10 phút
func GetActiveCampaigns(c *gin.Context) {
	var cached []dto.CampaignResponse
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, activeCampaignsCacheKey, &cached); err == nil && len(cached) > 0 {
			response.SuccessWithCount(c, cached, len(cached))
			return
		}
	}

	var campaigns []models.Campaign
	if err := config.DB.Preload("CreatedBy").
		Where("status = ?", constants.CampaignStatusActive).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, toCampaignResponse(campaign))
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, activeCampaignsCacheKey, result, 10*time.Minute); err != nil {
			utils.LogError("Không lưu được cache chiến dịch: %v", err)
		}
	}

	response.SuccessWithCount(c, result, len(result))
}

func GetCompletedCampaigns(c *gin.Context) {
	var campaigns []models.Campaign
	if err := config.DB.Preload("CreatedBy").
		Where("status = ?", constants.CampaignStatusCompleted).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, toCampaignResponse(campaign))
	}

	response.SuccessWithCount(c, result, len(result))
}

func loadCampaign(c *gin.Context) (models.Campaign, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return models.Campaign{}, false
	}

	var campaign models.Campaign
	if err := config.DB.Preload("CreatedBy").First(&campaign, id).Error; err != nil {
		response.NotFound(c, "Chiến dịch không tồn tại")
		return models.Campaign{}, false
	}
	return campaign, true
}

// GetCampaignByID chi tiết chiến dịch; người dùng đã đăng nhập thấy thêm
// các đơn xin hỗ trợ của chính mình cho chiến dịch này
func GetCampaignByID(c *gin.Context) {
	campaign, ok := loadCampaign(c)
	if !ok {
		return
	}

	data := gin.H{"campaign": toCampaignResponse(campaign)}

	if user, authed := middleware.CurrentUser(c); authed {
		var mine []models.Application
		if err := config.DB.Where("campaign_id = ? AND user_id = ?", campaign.ID, user.ID).
			Order("created_at DESC").Find(&mine).Error; err == nil {
			data["myApplications"] = mine
		}
	}

	response.Success(c, data)
}

func UpdateCampaign(c *gin.Context) {
	campaign, ok := loadCampaign(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpCampaignUpdate)
	in.TargetOwnerID = campaign.CreatedByID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateCampaignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
		campaign.Title = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
		campaign.Description = input.Description
	}
	if input.AmountNeeded > 0 {
		updates["amount_needed"] = input.AmountNeeded
		campaign.AmountNeeded = input.AmountNeeded
	}
	if input.BankAccountNumber != "" {
		updates["bank_account_number"] = input.BankAccountNumber
		campaign.BankAccountNumber = input.BankAccountNumber
	}
	if input.BankAccountName != "" {
		updates["bank_account_name"] = input.BankAccountName
		campaign.BankAccountName = input.BankAccountName
	}
	if input.BankName != "" {
		updates["bank_name"] = input.BankName
		campaign.BankName = input.BankName
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&campaign).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	invalidateActiveCampaignsCache()

	response.SuccessWithMessage(c, "Cập nhật chiến dịch thành công", toCampaignResponse(campaign))
}

func UpdateCampaignImages(c *gin.Context) {
	campaign, ok := loadCampaign(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpCampaignUpdateImages)
	in.TargetOwnerID = campaign.CreatedByID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateCampaignImagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&campaign).Update("images", pq.StringArray(input.Images)).Error; err != nil {
		response.ServerError(c)
		return
	}
	campaign.Images = input.Images

	invalidateActiveCampaignsCache()

	response.SuccessWithMessage(c, "Cập nhật hình ảnh thành công", toCampaignResponse(campaign))
}

// ChangeCampaignStatus đổi trạng thái chiến dịch và thông báo cho toàn bộ
// người dùng thường
func ChangeCampaignStatus(c *gin.Context) {
	campaign, ok := loadCampaign(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpCampaignChangeStatus)
	in.TargetOwnerID = campaign.CreatedByID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateCampaignStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	actor, _ := middleware.CurrentUser(c)

	if err := config.DB.Model(&campaign).Update("status", input.Status).Error; err != nil {
		response.ServerError(c)
		return
	}
	campaign.Status = input.Status

	if err := services.NotifyCampaignStatusChanged(campaign, actor.ID); err != nil {
		response.ServerError(c)
		return
	}

	invalidateActiveCampaignsCache()

	response.SuccessWithMessage(c, "Cập nhật trạng thái chiến dịch thành công", toCampaignResponse(campaign))
}

func DeleteCampaign(c *gin.Context) {
	campaign, ok := loadCampaign(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpCampaignDelete)
	in.TargetOwnerID = campaign.CreatedByID
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	// Gỡ liên kết các đơn đang trỏ tới chiến dịch trước khi xóa
	if err := config.DB.Model(&models.Application{}).
		Where("campaign_id = ?", campaign.ID).
		Update("campaign_id", nil).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Delete(&campaign).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateActiveCampaignsCache()

	response.SuccessWithMessage(c, "Xóa chiến dịch thành công", nil)
}
