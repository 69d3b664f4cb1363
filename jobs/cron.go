package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// NotificationPurger dọn các thông báo đã đọc quá hạn lưu
type NotificationPurger interface {
	PurgeReadNotifications() (int64, error)
}

var notificationPurger NotificationPurger

// SetNotificationPurger thiết lập implementation cho NotificationPurger
func SetNotificationPurger(purger NotificationPurger) {
	notificationPurger = purger
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		if notificationPurger == nil {
			log.Printf("Lỗi: NotificationPurger chưa được thiết lập")
			return
		}
		deleted, err := notificationPurger.PurgeReadNotifications()
		if err != nil {
			log.Printf("Lỗi khi dọn thông báo đã đọc: %v", err)
			return
		}
		log.Printf("Đã dọn %d thông báo đã đọc quá hạn", deleted)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
