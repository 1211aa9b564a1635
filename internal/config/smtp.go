package config

import (
	"os"
	"strconv"
	"sync"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Pass     string
	UseSSL   bool
	From     string
	FromName string
}

var (
	smtpConfig *SMTPConfig
	smtpOnce   sync.Once
)

func LoadSMTPConfig() *SMTPConfig {
	smtpOnce.Do(func() {
		port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
		if err != nil {
			port = 465
		}
		useSSL := true
		if v := os.Getenv("SMTP_USE_SSL"); v != "" {
			useSSL = v == "true" || v == "1"
		}
		user := os.Getenv("SMTP_USER")
		from := os.Getenv("SMTP_FROM")
		if from == "" {
			from = user
		}
		fromName := os.Getenv("SMTP_FROM_NAME")
		if fromName == "" {
			fromName = "HR Team"
		}
		smtpConfig = &SMTPConfig{
			Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
			Port:     port,
			User:     user,
			Pass:     os.Getenv("SMTP_PASS"),
			UseSSL:   useSSL,
			From:     from,
			FromName: fromName,
		}
	})
	return smtpConfig
}
