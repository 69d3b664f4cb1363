package routes

import (
	"context"
	"net/http"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/controllers"
	middlewares "tuthien/middleware"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// uploadFiles đẩy toàn bộ file multipart lên Cloudinary và trả về danh sách URL
func uploadFiles(c *gin.Context, folder string) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		return
	}

	var urls []string
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}
		urls = append(urls, resp.SecureURL)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upload thành công",
		"urls":    urls,
	})
}

func SetupRoutes(router *gin.Engine) {
	router.Use(middlewares.RequestIDMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.POST("/forgetPassword", controllers.ForgotPassword)
	v1.POST("/newPassword", controllers.ResetPassword)

	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetMe)
	v1.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)
	v1.PUT("/changePassword", middlewares.AuthMiddleware(), controllers.ChangePassword)

	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.GetUsers)
	v1.GET("/admins", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.GetAdmins)
	v1.GET("/users/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.GetUserByID)
	v1.POST("/admins", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.CreateAdmin)
	v1.PUT("/users/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.UpdateUser)
	v1.PUT("/users/:id/role", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.UpdateUserRole)
	v1.DELETE("/users/:id", middlewares.AuthMiddleware(constants.RoleSuperAdmin), controllers.DeleteUser)

	v1.GET("/campaigns", controllers.GetCampaigns)
	v1.GET("/campaigns/active", controllers.GetActiveCampaigns)
	v1.GET("/campaigns/completed", controllers.GetCompletedCampaigns)
	v1.GET("/campaigns/:id", middlewares.OptionalAuthMiddleware(), controllers.GetCampaignByID)
	v1.POST("/campaigns", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.CreateCampaign)
	v1.PUT("/campaigns/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.UpdateCampaign)
	v1.PUT("/campaigns/:id/images", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.UpdateCampaignImages)
	v1.PUT("/campaigns/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.ChangeCampaignStatus)
	v1.DELETE("/campaigns/:id", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.DeleteCampaign)

	v1.POST("/applications", middlewares.AuthMiddleware(), controllers.SubmitApplication)
	v1.GET("/applications", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.GetApplications)
	v1.GET("/applications/mine", middlewares.AuthMiddleware(), controllers.GetMyApplications)
	v1.GET("/applications/:id", middlewares.AuthMiddleware(), controllers.GetApplicationByID)
	v1.PUT("/applications/:id/status", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.ChangeApplicationStatus)
	v1.DELETE("/applications/:id", middlewares.AuthMiddleware(), controllers.DeleteApplication)
	v1.PUT("/applications/:id/campaign", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.AssignCampaign)
	v1.GET("/applications/:id/messages", middlewares.AuthMiddleware(), controllers.GetMessages)

	v1.POST("/messages", middlewares.AuthMiddleware(), controllers.SendMessage)

	v1.GET("/notifications", middlewares.AuthMiddleware(), controllers.GetNotifications)
	v1.GET("/notifications/unreadCount", middlewares.AuthMiddleware(), controllers.GetUnreadCount)
	v1.PUT("/notifications/:id/read", middlewares.AuthMiddleware(), controllers.MarkAsRead)
	v1.PUT("/notifications/readAll", middlewares.AuthMiddleware(), controllers.MarkAllAsRead)
	v1.DELETE("/notifications/:id", middlewares.AuthMiddleware(), controllers.DeleteNotification)

	v1.GET("/dashboard/stats", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.GetDashboardStats)
	v1.GET("/dashboard/recentActivities", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), controllers.GetRecentActivities)

	v1.POST("/contact", controllers.SendContact)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleAdmin, constants.RoleSuperAdmin), func(c *gin.Context) {
		uploadFiles(c, "campaigns")
	})
	v1.POST("/doc/multi-upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		uploadFiles(c, "proofs")
	})
}
