// Package policy tập trung toàn bộ quyết định phân quyền của hệ thống.
// Mọi controller gọi Decide thay vì tự so sánh role, để các luật ưu tiên
// (bảo vệ superadmin, cấm tự sửa role, phân tầng admin/superadmin...) chỉ
// nằm ở một chỗ. Decide là hàm thuần, không truy cập DB.
package policy

import "tuthien/constants"

// Operation là thao tác cần kiểm tra quyền
type Operation string

const (
	// Quản lý người dùng
	OpUserList        Operation = "user.list"
	OpUserListAdmins  Operation = "user.list_admins"
	OpUserGet         Operation = "user.get"
	OpUserCreateAdmin Operation = "user.create_admin"
	OpUserUpdate      Operation = "user.update"
	OpUserChangeRole  Operation = "user.change_role"
	OpUserDelete      Operation = "user.delete"

	// Chiến dịch
	OpCampaignCreate       Operation = "campaign.create"
	OpCampaignUpdate       Operation = "campaign.update"
	OpCampaignUpdateImages Operation = "campaign.update_images"
	OpCampaignChangeStatus Operation = "campaign.change_status"
	OpCampaignDelete       Operation = "campaign.delete"

	// Đơn xin hỗ trợ
	OpApplicationSubmit         Operation = "application.submit"
	OpApplicationList           Operation = "application.list"
	OpApplicationView           Operation = "application.view"
	OpApplicationChangeStatus   Operation = "application.change_status"
	OpApplicationDelete         Operation = "application.delete"
	OpApplicationAssignCampaign Operation = "application.assign_campaign"

	// Tin nhắn
	OpMessageSend Operation = "message.send"
	OpMessageList Operation = "message.list"

	// Thông báo
	OpNotificationRead   Operation = "notification.read"
	OpNotificationDelete Operation = "notification.delete"

	// Thống kê
	OpDashboardView Operation = "dashboard.view"
)

// Reason là mã lý do khi từ chối
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonUnauthenticated       Reason = "unauthenticated"
	ReasonSelfModification      Reason = "self_modification_forbidden"
	ReasonSuperAdminProtected   Reason = "superadmin_protected"
	ReasonInsufficientPrivilege Reason = "insufficient_privilege"
	ReasonNotOwner              Reason = "not_owner"
)

// Input mô tả chủ thể, thao tác và tài nguyên đích của một lần kiểm tra quyền.
// Với thao tác trên user thì TargetOwnerID/TargetOwnerRole là id/role của user
// bị tác động; với tài nguyên khác là chủ sở hữu (Application.UserID,
// Notification.RecipientID...).
type Input struct {
	Authenticated   bool
	ActorID         uint
	ActorRole       int
	Op              Operation
	TargetOwnerID   uint
	TargetOwnerRole int
}

// Decision là kết quả kiểm tra quyền
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision {
	return Decision{Allowed: true, Reason: ReasonNone}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// userManagementOps là các thao tác quản lý user chịu luật phân tầng
// admin/superadmin
var userManagementOps = map[Operation]bool{
	OpUserUpdate:     true,
	OpUserChangeRole: true,
	OpUserDelete:     true,
}

// superAdminOnlyOps là các thao tác chỉ superadmin được làm
var superAdminOnlyOps = map[Operation]bool{
	OpUserListAdmins:  true,
	OpUserCreateAdmin: true,
	OpUserChangeRole:  true,
	OpUserDelete:      true,
}

// adminTierOps là các thao tác yêu cầu tối thiểu admin
var adminTierOps = map[Operation]bool{
	OpUserList:                  true,
	OpUserListAdmins:            true,
	OpUserGet:                   true,
	OpUserCreateAdmin:           true,
	OpUserUpdate:                true,
	OpUserChangeRole:            true,
	OpUserDelete:                true,
	OpCampaignCreate:            true,
	OpCampaignUpdate:            true,
	OpCampaignUpdateImages:      true,
	OpCampaignChangeStatus:      true,
	OpCampaignDelete:            true,
	OpApplicationList:           true,
	OpApplicationChangeStatus:   true,
	OpApplicationDelete:         true,
	OpApplicationAssignCampaign: true,
	OpDashboardView:             true,
}

// ownResourceOps là các thao tác trên tài nguyên của chính mình: user thường
// chỉ được đụng vào bản ghi mình sở hữu, admin trở lên thì không bị giới hạn
var ownResourceOps = map[Operation]bool{
	OpApplicationView: true,
	OpMessageSend:     true,
	OpMessageList:     true,
}

// recipientOnlyOps là các thao tác chỉ người nhận mới được làm, kể cả
// quản trị viên cũng không đụng được trạng thái đọc/xóa thông báo của người khác
var recipientOnlyOps = map[Operation]bool{
	OpNotificationRead:   true,
	OpNotificationDelete: true,
}

// Decide áp các luật theo thứ tự ưu tiên, luật khớp đầu tiên thắng:
//  1. chưa xác thực -> từ chối
//  2. tự đổi role hoặc tự xoá tài khoản -> từ chối, bất kể role
//  3. đích là superadmin và thao tác là xoá/đổi role/sửa bởi người khác -> từ chối
//  4. admin tác động lên user thuộc nhóm quản trị -> từ chối
//  5. thao tác cần quyền quản trị mà chủ thể là user thường (hoặc cần
//     superadmin mà chủ thể là admin) -> từ chối
//  6. thao tác trên tài nguyên của người khác bởi user thường, hoặc trên
//     thông báo của người khác bởi bất kỳ ai -> từ chối
//  7. còn lại -> cho phép
func Decide(in Input) Decision {
	// 1. Chưa xác thực
	if !in.Authenticated {
		return deny(ReasonUnauthenticated)
	}

	// 2. Tự đổi role / tự xoá tài khoản
	if (in.Op == OpUserChangeRole || in.Op == OpUserDelete) && in.TargetOwnerID == in.ActorID {
		return deny(ReasonSelfModification)
	}

	// 3. Bảo vệ superadmin: không ai xoá/đổi role được superadmin,
	// và không ai khác sửa được hồ sơ superadmin
	if in.TargetOwnerRole == constants.RoleSuperAdmin && userManagementOps[in.Op] {
		if in.Op != OpUserUpdate || in.TargetOwnerID != in.ActorID {
			return deny(ReasonSuperAdminProtected)
		}
	}

	// 4. Admin không quản lý được user thuộc nhóm quản trị
	if in.ActorRole == constants.RoleAdmin && userManagementOps[in.Op] &&
		constants.IsAdminTier(in.TargetOwnerRole) {
		return deny(ReasonInsufficientPrivilege)
	}

	// 5. Kiểm tra tầng quyền: admin-tier và superadmin-only là hai tập
	// riêng biệt, không gộp thành một cờ "is staff"
	if superAdminOnlyOps[in.Op] && in.ActorRole != constants.RoleSuperAdmin {
		return deny(ReasonInsufficientPrivilege)
	}
	if adminTierOps[in.Op] && !constants.IsAdminTier(in.ActorRole) {
		return deny(ReasonInsufficientPrivilege)
	}

	// 6. Tài nguyên của người khác. Thông báo là trường hợp chặt hơn:
	// trạng thái đọc/xóa chỉ thuộc về người nhận, bất kể role
	if ownResourceOps[in.Op] && in.ActorRole == constants.RoleUser &&
		in.ActorID != in.TargetOwnerID {
		return deny(ReasonNotOwner)
	}
	if recipientOnlyOps[in.Op] && in.ActorID != in.TargetOwnerID {
		return deny(ReasonNotOwner)
	}

	// 7. Cho phép
	return allow()
}

// CanModerate kiểm tra quyền tối thiểu admin
func CanModerate(role int) bool {
	return constants.IsAdminTier(role)
}

// CanAdministerUsers kiểm tra quyền superadmin
func CanAdministerUsers(role int) bool {
	return role == constants.RoleSuperAdmin
}
