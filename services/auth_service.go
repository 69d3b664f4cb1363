package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"tuthien/config"
	"tuthien/constants"
	"tuthien/models"
	"tuthien/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetCodeTTL = 15 * time.Minute

// generateResetCode sinh mã 6 chữ số dùng một lần
func generateResetCode() (string, error) {
	code := ""
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code += n.String()
	}
	return code, nil
}

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("không tìm thấy người dùng với email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func CheckPassword(hashed string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CreateUser đăng ký tài khoản mới và gửi email chào mừng (best-effort)
func CreateUser(input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return models.User{}, errors.New("không được để trống họ tên, email, password")
	}

	existing, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		IsActive:    true,
	}

	result := config.DB.Create(&user)
	if result.Error != nil {
		return user, result.Error
	}

	go func() {
		if err := SendEmail(user.Email, "Chào mừng bạn đến với nền tảng quyên góp", WelcomeEmailBody(user.FullName)); err != nil {
			utils.LogError("Không gửi được email chào mừng cho %s: %v", user.Email, err)
		}
	}()

	return user, nil
}

// CreateAdmin tạo tài khoản quản trị, không gửi email chào mừng
func CreateAdmin(input models.User) (models.User, error) {
	input.Role = constants.RoleAdmin
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return models.User{}, errors.New("không được để trống họ tên, email, password")
	}

	existing, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s đã được sử dụng", existing.Email)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        constants.RoleAdmin,
		IsActive:    true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

// SendResetPasswordCode sinh mã đặt lại mật khẩu, lưu vào Redis với TTL
// và gửi qua email
func SendResetPasswordCode(user models.User) error {
	code, err := generateResetCode()
	if err != nil {
		return err
	}

	key := "reset:" + code
	if err := config.RedisClient.Set(config.Ctx, key, strconv.FormatUint(uint64(user.ID), 10), resetCodeTTL).Err(); err != nil {
		return err
	}

	return SendEmail(user.Email, "Mã đặt lại mật khẩu", ResetPasswordEmailBody(user.FullName, code))
}

// ResetPasswordWithCode đổi mật khẩu bằng mã đã gửi qua email. Mã chỉ dùng
// được một lần.
func ResetPasswordWithCode(code string, newPassword string) (models.User, error) {
	key := "reset:" + code
	val, err := config.RedisClient.Get(config.Ctx, key).Result()
	if err != nil {
		return models.User{}, errors.New("mã đặt lại mật khẩu không hợp lệ hoặc đã hết hạn")
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return models.User{}, errors.New("mã đặt lại mật khẩu không hợp lệ")
	}

	var user models.User
	if err := config.DB.First(&user, uint(userID)).Error; err != nil {
		return models.User{}, errors.New("không tìm thấy người dùng")
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return models.User{}, err
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		return models.User{}, err
	}

	config.RedisClient.Del(config.Ctx, key)

	return user, nil
}

// GetAllUsers lấy toàn bộ tài khoản, mọi role
func GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Find(&users).Error
	return users, err
}

// GetAdminTierUsers lấy toàn bộ admin và superadmin
func GetAdminTierUsers() ([]models.User, error) {
	var admins []models.User
	err := config.DB.Where("role IN ?", []int{constants.RoleAdmin, constants.RoleSuperAdmin}).Find(&admins).Error
	return admins, err
}

// GetRegularUsers lấy toàn bộ user thường
func GetRegularUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Where("role = ?", constants.RoleUser).Find(&users).Error
	return users, err
}
