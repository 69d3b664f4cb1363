//go:build integration

package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/models"
	"tuthien/routes"
	"tuthien/services"
	"tuthien/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testRouter *gin.Engine

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=tuthien password=tuthien dbname=tuthien_test sslmode=disable"
	}
	os.Setenv("SECRET_KEY_ACCESS_TOKEN", "integration-test-secret")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "không kết nối được database test: %v\n", err)
		os.Exit(1)
	}
	config.DB = db

	if err := db.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.Application{},
		&models.Message{},
		&models.Notification{},
	); err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate thất bại: %v\n", err)
		os.Exit(1)
	}

	gin.SetMode(gin.TestMode)
	validator.Init()
	testRouter = gin.New()
	routes.SetupRoutes(testRouter)

	os.Exit(m.Run())
}

func cleanTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"notifications", "messages", "applications", "campaigns", "users"} {
		if err := config.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("không dọn được bảng %s: %v", table, err)
		}
	}
}

func createTestUser(t *testing.T, role int) (models.User, string) {
	t.Helper()
	hashed, err := services.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := models.User{
		FullName: fmt.Sprintf("Người dùng %d", role),
		Email:    fmt.Sprintf("user-%d-%d@example.com", role, randomSuffix()),
		Password: hashed,
		Role:     role,
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("tạo user test: %v", err)
	}
	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return user, token
}

var suffix uint

func randomSuffix() uint {
	suffix++
	return suffix
}

func doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func TestMarkAllAsReadIdempotent(t *testing.T) {
	cleanTables(t)
	user, token := createTestUser(t, constants.RoleUser)

	for i := 0; i < 3; i++ {
		n := models.Notification{
			RecipientID: user.ID,
			Type:        constants.NotificationSystem,
			Title:       "Thông báo hệ thống",
			Message:     fmt.Sprintf("Nội dung %d", i),
		}
		if err := config.DB.Create(&n).Error; err != nil {
			t.Fatalf("tạo thông báo: %v", err)
		}
	}

	w := doJSON(t, http.MethodPut, "/api/v1/notifications/readAll", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Affected int64 `json:"affected"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Affected != 3 {
		t.Errorf("affected = %d, muốn 3", resp.Data.Affected)
	}

	// Gọi lại lần nữa: vẫn thành công, affected = 0
	w = doJSON(t, http.MethodPut, "/api/v1/notifications/readAll", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("lần hai: status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Affected != 0 {
		t.Errorf("lần hai: affected = %d, muốn 0", resp.Data.Affected)
	}
}

func TestSubmitApplicationFanout(t *testing.T) {
	cleanTables(t)
	_, _ = createTestUser(t, constants.RoleAdmin)
	admin2, _ := createTestUser(t, constants.RoleAdmin)
	user, token := createTestUser(t, constants.RoleUser)

	w := doJSON(t, http.MethodPost, "/api/v1/applications", token, gin.H{
		"title":          "Xin hỗ trợ viện phí",
		"description":    "Chi tiết hoàn cảnh",
		"proofDocuments": []string{"https://example.com/proof.pdf"},
		"fullName":       "Nguyễn Văn A",
		"email":          "a@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	// Mỗi admin nhận đúng một thông báo application_submitted
	var count int64
	if err := config.DB.Model(&models.Notification{}).
		Where("type = ?", constants.NotificationApplicationSubmitted).
		Count(&count).Error; err != nil {
		t.Fatalf("đếm thông báo: %v", err)
	}
	if count != 2 {
		t.Errorf("số thông báo = %d, muốn 2", count)
	}

	var forAdmin2 int64
	config.DB.Model(&models.Notification{}).
		Where("recipient_id = ?", admin2.ID).Count(&forAdmin2)
	if forAdmin2 != 1 {
		t.Errorf("admin2 nhận %d thông báo, muốn 1", forAdmin2)
	}

	// Người nộp không tự nhận thông báo
	var forUser int64
	config.DB.Model(&models.Notification{}).
		Where("recipient_id = ?", user.ID).Count(&forUser)
	if forUser != 0 {
		t.Errorf("người nộp nhận %d thông báo, muốn 0", forUser)
	}
}

func TestSubmitToInactiveCampaign(t *testing.T) {
	cleanTables(t)
	admin, _ := createTestUser(t, constants.RoleAdmin)
	_, token := createTestUser(t, constants.RoleUser)

	campaign := models.Campaign{
		Title:             "Đã kết thúc",
		Description:       "x",
		Images:            []string{"https://example.com/1.jpg"},
		AmountNeeded:      1000,
		BankAccountNumber: "1",
		BankAccountName:   "A",
		BankName:          "B",
		Status:            constants.CampaignStatusCompleted,
		CreatedByID:       admin.ID,
	}
	if err := config.DB.Create(&campaign).Error; err != nil {
		t.Fatalf("tạo chiến dịch: %v", err)
	}

	w := doJSON(t, http.MethodPost, "/api/v1/applications", token, gin.H{
		"title":          "Xin hỗ trợ",
		"description":    "x",
		"proofDocuments": []string{"https://example.com/proof.pdf"},
		"fullName":       "Nguyễn Văn A",
		"email":          "a@example.com",
		"campaignId":     campaign.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, muốn 400; body = %s", w.Code, w.Body.String())
	}

	var count int64
	config.DB.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Errorf("đơn vẫn được tạo dù chiến dịch không hoạt động")
	}
}

func TestMessageRoleSnapshot(t *testing.T) {
	cleanTables(t)
	_, adminToken := createTestUser(t, constants.RoleAdmin)
	user, userToken := createTestUser(t, constants.RoleUser)

	app := models.Application{
		Title:          "Xin hỗ trợ",
		Description:    "x",
		ProofDocuments: []string{"https://example.com/proof.pdf"},
		FullName:       "Nguyễn Văn A",
		Email:          "a@example.com",
		Status:         constants.ApplicationStatusPending,
		UserID:         user.ID,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		t.Fatalf("tạo đơn: %v", err)
	}

	w := doJSON(t, http.MethodPost, "/api/v1/messages", userToken, gin.H{
		"content":       "Xin chào",
		"applicationId": app.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("user gửi tin: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, http.MethodPost, "/api/v1/messages", adminToken, gin.H{
		"content":       "Chúng tôi đã nhận được đơn",
		"applicationId": app.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("admin gửi tin: status = %d, body = %s", w.Code, w.Body.String())
	}

	var messages []models.Message
	if err := config.DB.Order("created_at ASC").Find(&messages).Error; err != nil {
		t.Fatalf("đọc tin nhắn: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("số tin nhắn = %d, muốn 2", len(messages))
	}
	if messages[0].IsAdminMessage {
		t.Error("tin của user không được đánh dấu là tin quản trị")
	}
	if !messages[1].IsAdminMessage {
		t.Error("tin của admin phải được đánh dấu là tin quản trị")
	}

	// Chủ đơn nhận thông báo tin nhắn từ admin
	var forOwner int64
	config.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND type = ?", user.ID, constants.NotificationMessageReceived).
		Count(&forOwner)
	if forOwner != 1 {
		t.Errorf("chủ đơn nhận %d thông báo tin nhắn, muốn 1", forOwner)
	}
}

func TestStaffCannotTouchOthersNotification(t *testing.T) {
	cleanTables(t)
	_, adminToken := createTestUser(t, constants.RoleAdmin)
	_, superToken := createTestUser(t, constants.RoleSuperAdmin)
	user, _ := createTestUser(t, constants.RoleUser)

	n := models.Notification{
		RecipientID: user.ID,
		Type:        constants.NotificationSystem,
		Title:       "Thông báo hệ thống",
		Message:     "Nội dung",
	}
	if err := config.DB.Create(&n).Error; err != nil {
		t.Fatalf("tạo thông báo: %v", err)
	}

	for name, token := range map[string]string{"admin": adminToken, "superadmin": superToken} {
		w := doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/notifications/%d/read", n.ID), token, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s đánh dấu đã đọc: status = %d, muốn 403", name, w.Code)
		}
		w = doJSON(t, http.MethodDelete, fmt.Sprintf("/api/v1/notifications/%d", n.ID), token, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s xóa thông báo: status = %d, muốn 403", name, w.Code)
		}
	}

	var fresh models.Notification
	if err := config.DB.First(&fresh, n.ID).Error; err != nil {
		t.Fatalf("thông báo đã biến mất: %v", err)
	}
	if fresh.IsRead {
		t.Error("thông báo bị đánh dấu đã đọc bởi người không phải người nhận")
	}
}

func TestAdminListsAllUsers(t *testing.T) {
	cleanTables(t)
	_, adminToken := createTestUser(t, constants.RoleAdmin)
	_, _ = createTestUser(t, constants.RoleSuperAdmin)
	_, _ = createTestUser(t, constants.RoleUser)

	w := doJSON(t, http.MethodGet, "/api/v1/users", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Count int `json:"count"`
		Data  []struct {
			Role int `json:"role"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 3 {
		t.Fatalf("count = %d, muốn 3 (cả admin và superadmin)", resp.Count)
	}
	roles := map[int]int{}
	for _, u := range resp.Data {
		roles[u.Role]++
	}
	for _, role := range []int{constants.RoleUser, constants.RoleAdmin, constants.RoleSuperAdmin} {
		if roles[role] != 1 {
			t.Errorf("role %d xuất hiện %d lần, muốn 1", role, roles[role])
		}
	}
}

func TestUpdateUserEmail(t *testing.T) {
	cleanTables(t)
	_, adminToken := createTestUser(t, constants.RoleAdmin)
	taken, _ := createTestUser(t, constants.RoleUser)
	target, _ := createTestUser(t, constants.RoleUser)

	w := doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", target.ID), adminToken, gin.H{
		"email": "Moi@Example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var fresh models.User
	if err := config.DB.First(&fresh, target.ID).Error; err != nil {
		t.Fatalf("đọc lại user: %v", err)
	}
	if fresh.Email != "moi@example.com" {
		t.Errorf("email = %q, muốn %q", fresh.Email, "moi@example.com")
	}

	// Email đã thuộc tài khoản khác thì bị từ chối
	w = doJSON(t, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", target.ID), adminToken, gin.H{
		"email": taken.Email,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("email trùng: status = %d, muốn 400; body = %s", w.Code, w.Body.String())
	}
	if err := config.DB.First(&fresh, target.ID).Error; err != nil {
		t.Fatalf("đọc lại user: %v", err)
	}
	if fresh.Email != "moi@example.com" {
		t.Errorf("email bị ghi đè thành %q dù đã trùng", fresh.Email)
	}
}

func TestUserCannotViewOthersApplication(t *testing.T) {
	cleanTables(t)
	owner, _ := createTestUser(t, constants.RoleUser)
	_, otherToken := createTestUser(t, constants.RoleUser)

	app := models.Application{
		Title:          "Xin hỗ trợ",
		Description:    "x",
		ProofDocuments: []string{"https://example.com/proof.pdf"},
		FullName:       "Nguyễn Văn A",
		Email:          "a@example.com",
		Status:         constants.ApplicationStatusPending,
		UserID:         owner.ID,
	}
	if err := config.DB.Create(&app).Error; err != nil {
		t.Fatalf("tạo đơn: %v", err)
	}

	w := doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/applications/%d", app.ID), otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, muốn 403; body = %s", w.Code, w.Body.String())
	}
}
