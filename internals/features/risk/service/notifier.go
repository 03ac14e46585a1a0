package service

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"edurisk_backend/internals/configs"
	sModel "edurisk_backend/internals/features/students/model"
)

// NotifyAtRisk emails every Yellow/Red student over a single authenticated
// SMTP session, one message per student, sequentially. A mid-loop failure
// aborts the remaining sends; the count of messages already dispatched is
// returned together with the error.
func NotifyAtRisk(db *gorm.DB) (int, error) {
	var atRisk []sModel.StudentModel
	if err := db.
		Where("risk_level IN ?", []string{sModel.RiskLevelYellow, sModel.RiskLevelRed}).
		Find(&atRisk).Error; err != nil {
		return 0, err
	}
	if len(atRisk) == 0 {
		log.Println("[INFO] No at-risk students to notify.")
		return 0, nil
	}

	log.Printf("[INFO] Connecting to SMTP server to send %d emails...", len(atRisk))

	sender, err := newDialer().Dial()
	if err != nil {
		return 0, fmt.Errorf("smtp dial: %w", err)
	}
	defer func() {
		_ = sender.Close()
		log.Println("[INFO] SMTP connection closed.")
	}()
	log.Println("[INFO] SMTP login successful.")

	return sendNotifications(sender, atRisk)
}

// newDialer builds the SMTP dialer. The connection starts in plaintext and is
// upgraded via STARTTLS when the server offers it; MAIL_USE_SSL switches to
// implicit TLS for servers that expect a TLS handshake up front (port 465).
func newDialer() *gomail.Dialer {
	dialer := gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUsername, configs.SMTPPassword)
	dialer.SSL = configs.SMTPUseSSL
	return dialer
}

func sendNotifications(sender gomail.SendCloser, students []sModel.StudentModel) (int, error) {
	sent := 0
	for i := range students {
		msg := ComposeWarning(&students[i])
		if err := gomail.Send(sender, msg); err != nil {
			log.Printf("[ERROR] Failed to send emails: %v", err)
			return sent, err
		}
		sent++
		log.Printf("[INFO] Email sent to %s", students[i].Name)
	}
	return sent, nil
}

// ComposeWarning builds the plaintext warning message for one flagged student.
func ComposeWarning(s *sModel.StudentModel) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", configs.SMTPFrom)
	msg.SetHeader("To", s.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Academic Warning: Your Status is '%s'", s.RiskLevel))
	msg.SetBody("text/plain", warningBody(s))
	return msg
}

func warningBody(s *sModel.StudentModel) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a notification that your academic profile has been flagged for review.\n"+
			"Risk Level: %s\n"+
			"Identified Factors: %s\n\n"+
			"Please contact your academic advisor to discuss this.\n\n"+
			"Sincerely,\nEduRisk System",
		s.Name, s.RiskLevel, s.RiskReason,
	)
}
