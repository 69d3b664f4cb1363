package services

import (
	"time"

	"tuthien/models"
	"tuthien/services/logger"

	"gorm.io/gorm"
)

// Thông báo đã đọc được giữ lại 30 ngày rồi dọn bằng cron
const readNotificationRetention = 30 * 24 * time.Hour

type NotificationServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

type NotificationService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewNotificationService(opts NotificationServiceOptions) *NotificationService {
	return &NotificationService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// PurgeReadNotifications xóa các thông báo đã đọc quá hạn lưu, trả về số
// bản ghi đã xóa
func (s *NotificationService) PurgeReadNotifications() (int64, error) {
	cutoff := time.Now().Add(-readNotificationRetention)

	result := s.db.Where("is_read = ? AND updated_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		s.logger.Error("dọn thông báo đã đọc thất bại: %v", result.Error)
		return 0, result.Error
	}

	s.logger.Info("đã dọn %d thông báo đã đọc trước %s", result.RowsAffected, cutoff.Format(time.RFC3339))
	return result.RowsAffected, nil
}
