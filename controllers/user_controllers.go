package controllers

import (
	"strconv"
	"strings"

	"tuthien/config"
	"tuthien/dto"
	"tuthien/middleware"
	"tuthien/models"
	"tuthien/policy"
	"tuthien/response"
	"tuthien/services"

	"github.com/gin-gonic/gin"
)

func denyByPolicy(c *gin.Context, decision policy.Decision) {
	switch decision.Reason {
	case policy.ReasonUnauthenticated:
		response.Unauthorized(c)
	case policy.ReasonSelfModification:
		response.ForbiddenWithMessage(c, "Không thể tự thay đổi tài khoản của chính mình")
	case policy.ReasonSuperAdminProtected:
		response.ForbiddenWithMessage(c, "Không thể thao tác trên tài khoản super admin")
	case policy.ReasonNotOwner:
		response.ForbiddenWithMessage(c, "Chỉ chủ sở hữu mới được thao tác")
	default:
		response.Forbidden(c)
	}
}

func actorInput(c *gin.Context, op policy.Operation) policy.Input {
	user, ok := middleware.CurrentUser(c)
	return policy.Input{
		Authenticated: ok,
		ActorID:       user.ID,
		ActorRole:     user.Role,
		Op:            op,
	}
}

func GetUsers(c *gin.Context) {
	in := actorInput(c, policy.OpUserList)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	users, err := services.GetAllUsers()
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	response.SuccessWithCount(c, result, len(result))
}

func GetAdmins(c *gin.Context) {
	in := actorInput(c, policy.OpUserListAdmins)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	admins, err := services.GetAdminTierUsers()
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.UserResponse, 0, len(admins))
	for _, u := range admins {
		result = append(result, toUserResponse(u))
	}

	response.SuccessWithCount(c, result, len(result))
}

func GetUserByID(c *gin.Context) {
	in := actorInput(c, policy.OpUserGet)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c, "Người dùng không tồn tại")
		return
	}

	response.Success(c, toUserResponse(user))
}

// CreateAdmin chỉ super admin mới được tạo tài khoản admin
func CreateAdmin(c *gin.Context) {
	in := actorInput(c, policy.OpUserCreateAdmin)
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.CreateAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateAdmin(models.User{
		FullName:    input.FullName,
		Email:       strings.ToLower(input.Email),
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, "Tạo tài khoản admin thành công", toUserResponse(user))
}

func loadTargetUser(c *gin.Context) (models.User, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return models.User{}, false
	}

	var target models.User
	if err := config.DB.First(&target, id).Error; err != nil {
		response.NotFound(c, "Người dùng không tồn tại")
		return models.User{}, false
	}
	return target, true
}

func UpdateUser(c *gin.Context) {
	target, ok := loadTargetUser(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpUserUpdate)
	in.TargetOwnerID = target.ID
	in.TargetOwnerRole = target.Role
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if input.FullName != "" {
		updates["full_name"] = input.FullName
		target.FullName = input.FullName
	}
	if input.Email != "" {
		email := strings.ToLower(input.Email)
		if email != target.Email {
			if _, err := services.GetUserByEmail(email); err == nil {
				response.BadRequest(c, "Email "+email+" đã được sử dụng")
				return
			}
			updates["email"] = email
			target.Email = email
		}
	}
	if input.PhoneNumber != "" {
		updates["phone_number"] = input.PhoneNumber
		target.PhoneNumber = input.PhoneNumber
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
		target.IsActive = *input.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&target).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.SuccessWithMessage(c, "Cập nhật người dùng thành công", toUserResponse(target))
}

func UpdateUserRole(c *gin.Context) {
	target, ok := loadTargetUser(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpUserChangeRole)
	in.TargetOwnerID = target.ID
	in.TargetOwnerRole = target.Role
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	var input dto.UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Model(&target).Update("role", *input.Role).Error; err != nil {
		response.ServerError(c)
		return
	}
	target.Role = *input.Role

	response.SuccessWithMessage(c, "Cập nhật quyền thành công", toUserResponse(target))
}

func DeleteUser(c *gin.Context) {
	target, ok := loadTargetUser(c)
	if !ok {
		return
	}

	in := actorInput(c, policy.OpUserDelete)
	in.TargetOwnerID = target.ID
	in.TargetOwnerRole = target.Role
	if d := policy.Decide(in); !d.Allowed {
		denyByPolicy(c, d)
		return
	}

	if err := config.DB.Delete(&target).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Xóa người dùng thành công", nil)
}
