package controllers

import (
	"context"
	"strings"

	"tuthien/config"
	"tuthien/dto"
	"tuthien/middleware"
	"tuthien/models"
	"tuthien/response"
	"tuthien/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const accessTokenMinutes = 60 * 24 * 3

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func issueToken(user models.User) (string, error) {
	return services.GenerateToken(services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes)
}

func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.CreateUser(models.User{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	accessToken, err := issueToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, "Đăng ký thành công", dto.LoginResponse{
		User:        toUserResponse(user),
		AccessToken: accessToken,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	accessToken, err := issueToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đăng nhập thành công", dto.LoginResponse{
		User:        toUserResponse(user),
		AccessToken: accessToken,
	})
}

// AuthGoogle đăng nhập bằng Google ID token, tự tạo tài khoản nếu chưa có
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, config.GetEnv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		response.BadRequest(c, "Token Google không chứa email")
		return
	}
	email = strings.ToLower(email)

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Tài khoản Google mới: mật khẩu ngẫu nhiên, user tự đặt lại nếu cần
		randomPass, err := services.HashPassword(payload.Subject + email)
		if err != nil {
			response.ServerError(c)
			return
		}
		user = models.User{
			FullName: name,
			Email:    email,
			Password: randomPass,
			IsActive: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	if !user.IsActive {
		response.Forbidden(c)
		return
	}

	accessToken, err := issueToken(user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đăng nhập thành công", dto.LoginResponse{
		User:        toUserResponse(user),
		AccessToken: accessToken,
	})
}

func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	response.Success(c, toUserResponse(user))
}

func UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
		user.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		updates["phone_number"] = input.PhoneNumber
		user.PhoneNumber = input.PhoneNumber
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.SuccessWithMessage(c, "Cập nhật hồ sơ thành công", toUserResponse(user))
}

func ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := services.CheckPassword(user.Password, input.CurrentPassword); err != nil {
		response.Unauthorized(c)
		return
	}

	hashed, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đổi mật khẩu thành công", nil)
}

func ForgotPassword(c *gin.Context) {
	var input dto.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		response.BadRequest(c, "Người dùng không tồn tại.")
		return
	}

	if err := services.SendResetPasswordCode(user); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Đã gửi mã đặt lại mật khẩu qua email", nil)
}

func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := services.ResetPasswordWithCode(input.Code, input.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.SuccessWithMessage(c, "Đặt lại mật khẩu thành công", nil)
}
