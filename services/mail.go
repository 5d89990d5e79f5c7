package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"HealisPortal/models"
)

// EmailSender delivers a single outbound message. The SMTP implementation is
// used when SMTP_HOST is configured; otherwise sends are logged and dropped.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

var mailSender EmailSender = newSenderFromEnv()

func newSenderFromEnv() EmailSender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return &logSender{}
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	return &smtpSender{
		addr:     host + ":" + port,
		host:     host,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
	}
}

type smtpSender struct {
	addr     string
	host     string
	username string
	password string
	from     string
}

func (s *smtpSender) SendEmail(to, subject, body string) error {
	from := s.from
	if from == "" {
		from = s.username
	}
	msg := strings.Join([]string{
		"From: HEALIS Healthcare <" + from + ">",
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	return smtp.SendMail(s.addr, auth, from, []string{to}, []byte(msg))
}

type logSender struct{}

func (l *logSender) SendEmail(to, subject, _ string) error {
	log.Printf("SMTP not configured, dropping email to %s: %s", to, subject)
	return nil
}

/*
* Notify an account owner about the outcome of admin verification
* Fire and forget: failures are logged, never surfaced to the request
 */
func SendVerificationEmail(email, status string) {
	subject := "MediSync Pro - Account Verified"
	body := "Your account has been verified. You can now log in to MediSync Pro."
	if status != "verified" {
		subject = "MediSync Pro - Account Verification Failed"
		body = "Your account verification was unsuccessful. Please contact support for more information."
	}
	go func() {
		if err := mailSender.SendEmail(email, subject, body); err != nil {
			log.Println("Email sending failed: ", err)
			return
		}
		log.Println("Verification email sent successfully")
	}()
}

// SendPrescriptionEmail mails the patient a plain-text summary of a newly
// created prescription. Fire and forget, same as verification mail.
func SendPrescriptionEmail(p *models.Prescription) {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", p.PatientName)
	fmt.Fprintf(&b, "Dr. %s has prescribed the following medications for you:\n\n", p.DoctorName)
	for _, med := range p.Medications {
		fmt.Fprintf(&b, "  - %s\n", med)
	}
	if p.Recommendations != "" {
		fmt.Fprintf(&b, "\nAdditional Recommendations:\n%s\n", p.Recommendations)
	}
	fmt.Fprintf(&b, "\nPrescription Date: %s\n", p.Date.Format("02 Jan 2006"))
	b.WriteString("\nThis is an automated message from HEALIS Healthcare. Please do not reply to this email.\n")

	go func() {
		if err := mailSender.SendEmail(p.PatientEmail, "New Prescription from Your Doctor", b.String()); err != nil {
			log.Println("Email sending failed: ", err)
		}
	}()
}
