package constants

import "testing"

func TestIsValidCampaignStatus(t *testing.T) {
	for _, s := range CampaignStatuses {
		if !IsValidCampaignStatus(s) {
			t.Errorf("trạng thái %q phải hợp lệ", s)
		}
	}
	for _, s := range []string{"", "pending", "ACTIVE", "done"} {
		if IsValidCampaignStatus(s) {
			t.Errorf("trạng thái %q không được hợp lệ", s)
		}
	}
}

func TestIsValidApplicationStatus(t *testing.T) {
	for _, s := range ApplicationStatuses {
		if !IsValidApplicationStatus(s) {
			t.Errorf("trạng thái %q phải hợp lệ", s)
		}
	}
	for _, s := range []string{"", "active", "PENDING", "denied"} {
		if IsValidApplicationStatus(s) {
			t.Errorf("trạng thái %q không được hợp lệ", s)
		}
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range []int{RoleUser, RoleAdmin, RoleSuperAdmin} {
		if !IsValidRole(r) {
			t.Errorf("role %d phải hợp lệ", r)
		}
	}
	for _, r := range []int{-1, 3, 99} {
		if IsValidRole(r) {
			t.Errorf("role %d không được hợp lệ", r)
		}
	}
}

func TestIsAdminTier(t *testing.T) {
	if IsAdminTier(RoleUser) {
		t.Error("user thường không thuộc nhóm quản trị")
	}
	if !IsAdminTier(RoleAdmin) || !IsAdminTier(RoleSuperAdmin) {
		t.Error("admin và superadmin phải thuộc nhóm quản trị")
	}
}
