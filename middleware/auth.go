package middleware

import (
	"strings"

	"tuthien/config"
	"tuthien/errors"
	"tuthien/models"
	"tuthien/response"
	"tuthien/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực Bearer token rồi nạp user từ DB: role lấy từ bản
// ghi hiện tại chứ không tin role trong token. Truyền roles để giới hạn
// endpoint cho các role đó.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !user.IsActive {
			response.Forbidden(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == user.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("currentUser", user)
		c.Next()
	}
}

// OptionalAuthMiddleware nạp user nếu request mang token hợp lệ, nhưng
// không chặn request ẩn danh. Dùng cho các endpoint công khai muốn trả
// thêm dữ liệu riêng của người đang đăng nhập.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, _, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil || !user.IsActive {
			c.Next()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("currentUser", user)
		c.Next()
	}
}

// CurrentUser lấy user đã xác thực từ context
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// ErrorHandler xử lý lỗi
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.BadRequest(c, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
