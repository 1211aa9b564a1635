package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/hiredeck/ats-service/internal/config"
	"gopkg.in/gomail.v2"
)

// SendResult reports a notification attempt as data. A failed send is an
// outcome to surface, never an error to raise: by the time it runs the
// status mutation has already been persisted.
type SendResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type MailService struct {
	cfg     *config.SMTPConfig
	company string
}

func NewMailService() *MailService {
	return &MailService{
		cfg:     config.LoadSMTPConfig(),
		company: config.LoadAppConfig().CompanyName,
	}
}

// SendStatusNotification emails the candidate about a status change. The
// message template is keyed on whether the status equals "selected",
// case-insensitively; anything else gets the regret template.
func (s *MailService) SendStatusNotification(toEmail, candidateName, designation, status string) SendResult {
	if candidateName == "" {
		candidateName = "Candidate"
	}
	if designation == "" {
		designation = "the role"
	}
	subject, body := StatusMessage(candidateName, designation, status, s.company)

	if s.cfg.Host == "" || s.cfg.User == "" || s.cfg.Pass == "" || s.cfg.From == "" {
		err := "missing SMTP config"
		log.Printf("[SMTP] %s, not sending to %s", err, toEmail)
		return SendResult{OK: false, Error: err}
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	d.SSL = s.cfg.UseSSL

	if err := d.DialAndSend(m); err != nil {
		log.Printf("[SMTP] Send to %s failed: %v", toEmail, err)
		return SendResult{OK: false, Error: err.Error()}
	}
	log.Printf("[SMTP] Email sent to %s", toEmail)
	return SendResult{OK: true}
}

// StatusMessage builds the subject and body for a status notification.
func StatusMessage(candidateName, designation, status, company string) (subject, body string) {
	if strings.EqualFold(status, "selected") {
		subject = "Congratulations! Your Application Has Been Accepted"
		body = fmt.Sprintf(`Dear %s,
We are delighted to inform you that your application for the %s position has been accepted.
Our team was impressed by your skills, background, and passion. We believe you will make a strong contribution, and we are excited to move forward with you in the next steps of the hiring process.
Our HR team will contact you shortly with details about onboarding and the next stages.
Thank you once again for your interest in joining our team. We are looking forward to working with you!
Warm regards,
%s HR Team`, candidateName, designation, company)
		return subject, body
	}

	subject = "Update on Your Application"
	body = fmt.Sprintf(`Dear %s,
Thank you for taking the time to apply for the %s position with us.
After careful consideration, we regret to inform you that your application has not been selected for the current role. This was a very competitive process, and while your skills and background are impressive, we had to make some tough choices.
Please don't be discouraged - we encourage you to apply for future opportunities with us. Your profile remains valuable, and we would be happy to consider you again.
We sincerely wish you the best in your career journey and hope our paths cross again.
Warm regards,
%s HR Team`, candidateName, designation, company)
	return subject, body
}
