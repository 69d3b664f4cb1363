package controllers

import (
	"tuthien/config"
	"tuthien/dto"
	"tuthien/response"
	"tuthien/services"
	"tuthien/utils"

	"github.com/gin-gonic/gin"
)

// SendContact chuyển tiếp liên hệ từ form công khai đến hộp thư quản trị
func SendContact(c *gin.Context) {
	var input dto.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	adminEmail := config.GetEnv("CONTACT_EMAIL")
	if adminEmail == "" {
		adminEmail = config.GetEnv("EMAIL_USERNAME")
	}

	go func() {
		body := services.ContactEmailBody(input.Name, input.Email, input.Message)
		if err := services.SendEmail(adminEmail, "Liên hệ: "+input.Subject, body); err != nil {
			utils.LogError("Không gửi được email liên hệ từ %s: %v", input.Email, err)
		}
	}()

	response.SuccessWithMessage(c, "Đã gửi liên hệ, chúng tôi sẽ phản hồi sớm", nil)
}
