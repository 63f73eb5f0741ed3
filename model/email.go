package model

// EmailConfig holds the SMTP settings for reminder mail.
type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}
