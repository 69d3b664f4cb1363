package dto

type CreateAdminInput struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

type UpdateUserInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email" binding:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateUserRoleInput struct {
	Role *int `json:"role" binding:"required,user_role"`
}
