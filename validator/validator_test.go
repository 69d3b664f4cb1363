package validator

import (
	"testing"

	"tuthien/constants"
	"tuthien/dto"
	"tuthien/errors"
	"tuthien/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func bindingEngine(t *testing.T) *validator.Validate {
	t.Helper()
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		t.Fatal("binding engine không phải *validator.Validate")
	}
	return v
}

func TestCampaignStatusBinding(t *testing.T) {
	v := bindingEngine(t)

	for _, status := range constants.CampaignStatuses {
		input := dto.UpdateCampaignStatusInput{Status: status}
		if err := v.Struct(input); err != nil {
			t.Errorf("trạng thái %q bị từ chối: %v", status, err)
		}
	}

	input := dto.UpdateCampaignStatusInput{Status: "paused"}
	if err := v.Struct(input); err == nil {
		t.Error("trạng thái ngoài tập giá trị phải bị từ chối")
	}
}

func TestApplicationStatusBinding(t *testing.T) {
	v := bindingEngine(t)

	for _, status := range constants.ApplicationStatuses {
		input := dto.UpdateApplicationStatusInput{Status: status}
		if err := v.Struct(input); err != nil {
			t.Errorf("trạng thái %q bị từ chối: %v", status, err)
		}
	}

	input := dto.UpdateApplicationStatusInput{Status: "completed"}
	if err := v.Struct(input); err == nil {
		t.Error("trạng thái ngoài tập giá trị phải bị từ chối")
	}
}

func TestUserRoleBinding(t *testing.T) {
	v := bindingEngine(t)

	for _, role := range []int{constants.RoleUser, constants.RoleAdmin, constants.RoleSuperAdmin} {
		r := role
		input := dto.UpdateUserRoleInput{Role: &r}
		if err := v.Struct(input); err != nil {
			t.Errorf("role %d bị từ chối: %v", role, err)
		}
	}

	bad := 5
	input := dto.UpdateUserRoleInput{Role: &bad}
	if err := v.Struct(input); err == nil {
		t.Error("role ngoài tập giá trị phải bị từ chối")
	}
}

func TestValidateUser(t *testing.T) {
	user := &models.User{
		FullName:    "Nguyễn Văn A",
		Email:       "a@example.com",
		Password:    "secret1",
		PhoneNumber: "0912345678",
		Role:        constants.RoleUser,
	}
	if err := ValidateUser(user); err != nil {
		t.Fatalf("user hợp lệ bị từ chối: %v", err)
	}

	bad := *user
	bad.Email = "không-phải-email"
	err := ValidateUser(&bad)
	if err == nil {
		t.Fatal("email sai phải bị từ chối")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidEmail {
		t.Errorf("err = %v, muốn mã %s", err, errors.ErrCodeInvalidEmail)
	}
}

func TestValidateCampaign(t *testing.T) {
	campaign := &models.Campaign{
		Title:             "Mùa đông ấm",
		Description:       "Quyên góp áo ấm",
		Images:            []string{"https://example.com/1.jpg"},
		AmountNeeded:      1000000,
		BankAccountNumber: "0123456789",
		BankAccountName:   "QUY TU THIEN",
		BankName:          "VCB",
		Status:            constants.CampaignStatusActive,
	}
	if err := ValidateCampaign(campaign); err != nil {
		t.Fatalf("chiến dịch hợp lệ bị từ chối: %v", err)
	}

	bad := *campaign
	bad.AmountNeeded = 0
	if err := ValidateCampaign(&bad); err == nil {
		t.Error("số tiền 0 phải bị từ chối")
	}

	bad = *campaign
	bad.Status = "paused"
	if err := ValidateCampaign(&bad); err == nil {
		t.Error("trạng thái lạ phải bị từ chối")
	}
}

func TestValidateApplication(t *testing.T) {
	app := &models.Application{
		Title:          "Xin hỗ trợ viện phí",
		Description:    "Chi tiết hoàn cảnh",
		ProofDocuments: []string{"https://example.com/proof.pdf"},
		FullName:       "Nguyễn Văn A",
		Email:          "a@example.com",
		Status:         constants.ApplicationStatusPending,
	}
	if err := ValidateApplication(app); err != nil {
		t.Fatalf("đơn hợp lệ bị từ chối: %v", err)
	}

	bad := *app
	bad.ProofDocuments = nil
	if err := ValidateApplication(&bad); err == nil {
		t.Error("đơn không có tài liệu chứng minh phải bị từ chối")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("secret1"); err != nil {
		t.Errorf("mật khẩu hợp lệ bị từ chối: %v", err)
	}
	if err := ValidatePassword("abc"); err == nil {
		t.Error("mật khẩu ngắn phải bị từ chối")
	}
}
