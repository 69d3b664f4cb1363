package services

import (
	"testing"

	"tuthien/constants"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 42, Role: constants.RoleAdmin}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, muốn 42", userID)
	}
	if role != constants.RoleAdmin {
		t.Errorf("role = %d, muốn %d", role, constants.RoleAdmin)
	}
}

func TestParseTokenInvalid(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("token rác phải bị từ chối")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")
	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser}, 60)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "other-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("token ký bằng secret khác phải bị từ chối")
	}
}

func TestExpiredToken(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 1, Role: constants.RoleUser}, -1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token); err == nil {
		t.Error("token hết hạn phải bị từ chối")
	}
}
