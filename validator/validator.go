package validator

import (
	"regexp"

	"tuthien/constants"
	"tuthien/errors"
	"tuthien/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init đăng ký các luật kiểm tra tập giá trị đóng cho binding tag.
// Gọi một lần khi khởi động.
func Init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("campaign_status", func(fl validator.FieldLevel) bool {
		return constants.IsValidCampaignStatus(fl.Field().String())
	})

	v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
		return constants.IsValidApplicationStatus(fl.Field().String())
	})

	v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return constants.IsValidRole(int(fl.Field().Int()))
	})
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ tên không được để trống", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if !constants.IsValidRole(user.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateCampaign validate thông tin chiến dịch
func ValidateCampaign(campaign *models.Campaign) error {
	if campaign.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề chiến dịch không được để trống", nil)
	}

	if campaign.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả chiến dịch không được để trống", nil)
	}

	if len(campaign.Images) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Chiến dịch phải có ít nhất một hình ảnh", nil)
	}

	if campaign.AmountNeeded <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền cần quyên góp phải lớn hơn 0", nil)
	}

	if campaign.BankAccountNumber == "" || campaign.BankAccountName == "" || campaign.BankName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Thông tin ngân hàng không được để trống", nil)
	}

	if !constants.IsValidCampaignStatus(campaign.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái chiến dịch không hợp lệ", nil)
	}

	return nil
}

// ValidateApplication validate thông tin đơn xin hỗ trợ
func ValidateApplication(app *models.Application) error {
	if app.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề đơn không được để trống", nil)
	}

	if app.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả đơn không được để trống", nil)
	}

	if len(app.ProofDocuments) == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Đơn phải có ít nhất một tài liệu chứng minh", nil)
	}

	if app.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ tên người nộp không được để trống", nil)
	}

	if !isValidEmail(app.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email người nộp không hợp lệ", nil)
	}

	if !constants.IsValidApplicationStatus(app.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái đơn không hợp lệ", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}
