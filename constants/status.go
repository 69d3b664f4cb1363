package constants

// User role
const (
	RoleUser       = 0
	RoleAdmin      = 1
	RoleSuperAdmin = 2
)

// Campaign status
const (
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

// Application status
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

// CampaignStatuses là tập giá trị hợp lệ của trạng thái chiến dịch
var CampaignStatuses = []string{
	CampaignStatusActive,
	CampaignStatusCompleted,
	CampaignStatusCancelled,
}

// ApplicationStatuses là tập giá trị hợp lệ của trạng thái đơn xin hỗ trợ
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

// IsValidCampaignStatus kiểm tra status có thuộc tập trạng thái chiến dịch không
func IsValidCampaignStatus(status string) bool {
	for _, s := range CampaignStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidApplicationStatus kiểm tra status có thuộc tập trạng thái đơn không
func IsValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsValidRole kiểm tra role hợp lệ
func IsValidRole(role int) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleSuperAdmin
}

// IsAdminTier kiểm tra role thuộc nhóm quản trị (admin hoặc superadmin)
func IsAdminTier(role int) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
