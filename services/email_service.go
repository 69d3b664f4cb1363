package services

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail gửi một email HTML qua SMTP. Người gọi tự quyết định việc gửi
// có chặn request hay không (fan-out thông báo gửi trong goroutine riêng).
func SendEmail(to string, subject string, body string) error {
	from := os.Getenv("EMAIL_USERNAME")
	password := os.Getenv("EMAIL_PASSWORD")

	host := "smtp.gmail.com"
	port := "587"

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// WelcomeEmailBody là nội dung email chào mừng khi đăng ký
func WelcomeEmailBody(fullName string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Chào mừng</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Cảm ơn bạn đã tham gia nền tảng quyên góp từ thiện của chúng tôi.</p>
			<p>Với tài khoản của mình, bạn có thể:</p>
			<ul>
				<li>Xem các chiến dịch gây quỹ đang hoạt động</li>
				<li>Gửi đơn xin hỗ trợ</li>
				<li>Theo dõi tiến độ chiến dịch</li>
			</ul>
			<p>Nếu có thắc mắc, đừng ngần ngại liên hệ với chúng tôi.</p>
			<p>Xin cám ơn,<br>Đội ngũ hỗ trợ</p>
		</body>
		</html>
	`, fullName)
}

// NewApplicationEmailBody là nội dung email báo admin có đơn mới
func NewApplicationEmailBody(title, fullName, email, campaignTitle, description string) string {
	campaignLine := ""
	if campaignTitle != "" {
		campaignLine = fmt.Sprintf("<p><strong>Chiến dịch:</strong> %s</p>", campaignTitle)
	}
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Đơn xin hỗ trợ mới</title>
		</head>
		<body>
			<p>Có một đơn xin hỗ trợ mới cần được xét duyệt:</p>
			<p><strong>Tiêu đề:</strong> %s</p>
			<p><strong>Người gửi:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			%s
			<p><strong>Mô tả:</strong> %s</p>
			<p>Vui lòng đăng nhập trang quản trị để xét duyệt đơn.</p>
			<p>Xin cám ơn,<br>Đội ngũ hỗ trợ</p>
		</body>
		</html>
	`, title, fullName, email, campaignLine, description)
}

// ApplicationStatusEmailBody là nội dung email báo người dùng kết quả xét duyệt
func ApplicationStatusEmailBody(fullName, title, status, note string) string {
	noteLine := ""
	if note != "" {
		noteLine = fmt.Sprintf("<p><strong>Lời nhắn từ quản trị viên:</strong> %s</p>", note)
	}
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Cập nhật trạng thái đơn</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Đơn xin hỗ trợ "%s" của bạn đã được chuyển sang trạng thái <strong>%s</strong>.</p>
			%s
			<p>Bạn có thể đăng nhập để xem chi tiết.</p>
			<p>Xin cám ơn,<br>Đội ngũ hỗ trợ</p>
		</body>
		</html>
	`, fullName, title, status, noteLine)
}

// NewMessageEmailBody là nội dung email báo có tin nhắn mới
func NewMessageEmailBody(recipientName, applicationTitle, senderName, content string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Tin nhắn mới</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Bạn có tin nhắn mới liên quan đến đơn "%s":</p>
			<p><strong>Từ:</strong> %s</p>
			<p><strong>Nội dung:</strong> %s</p>
			<p>Vui lòng đăng nhập để trả lời.</p>
			<p>Xin cám ơn,<br>Đội ngũ hỗ trợ</p>
		</body>
		</html>
	`, recipientName, applicationTitle, senderName, content)
}

// ResetPasswordEmailBody là nội dung email gửi mã đặt lại mật khẩu
func ResetPasswordEmailBody(fullName, code string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<title>Đặt lại mật khẩu</title>
		</head>
		<body>
			<p>Xin chào %s,</p>
			<p>Chúng tôi đã nhận yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
			<p>Mã đặt lại mật khẩu của bạn là: <strong>%s</strong></p>
			<p>Mã có hiệu lực trong 15 phút. Nếu không yêu cầu thì bạn có thể bỏ qua email này một cách an toàn.</p>
			<p>Xin cám ơn,<br>Đội ngũ hỗ trợ</p>
		</body>
		</html>
	`, fullName, code)
}

// ContactEmailBody là nội dung email chuyển tiếp form liên hệ về hộp thư hỗ trợ
func ContactEmailBody(name, email, message string) string {
	return fmt.Sprintf(`<p><b>Họ tên:</b> %s</p><p><b>Email:</b> %s</p><p><b>Nội dung:</b><br/>%s</p>`,
		name, email, message)
}
