package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"skillcert/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. Sendgrid is used when an API key is
// configured; otherwise it falls back to plain SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendgridApiKey != "" {
		return sendViaSendgrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendgrid(to []string, subject, htmlBody string) error {
	from := sgmail.NewEmail("SkillCert", config.AppConfig.EmailSender)

	p := sgmail.NewPersonalization()
	p.Subject = subject
	for _, addr := range to {
		p.AddTos(sgmail.NewEmail("", addr))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(m)
	if err != nil {
		log.Printf("[EMAIL] sendgrid error: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[EMAIL] sendgrid rejected message: %d %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

func sendViaSMTP(to []string, subject, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.SMTPPassword

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillCert <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		log.Printf("[EMAIL] smtp error: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the standard layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B3A4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A4B; line-height: 1.6; }
			.content h2 { color: #1B3A4B; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.code-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C946E; margin: 20px 0; font-family: monospace; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLCERT</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillCert. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered worker
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to SkillCert"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>SkillCert</strong>! Your account has been created.</p>
		<p>Once your employer or you purchase a course level, you will find it under your enrollments.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentCreatedEmail notifies a worker their enrollment is active
func SendEnrollmentCreatedEmail(email, name string, deadline time.Time) {
	subject := "Your Training Enrollment is Active"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment was approved and your enrollment is now <strong>active</strong>.</p>
		<p>Complete all content before <strong>%s</strong> to earn your certificate.</p>
	`, name, deadline.Format("January 2, 2006"))

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Active", body))
}

// SendCertificateIssuedEmail congratulates a worker on completion
func SendCertificateIssuedEmail(email, name, code string) {
	subject := "Your SkillCert Certificate is Ready"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! You completed your course level and your certificate has been issued.</p>
		<div class="code-box">%s</div>
		<p>You can view and print it from your certificates page.</p>
	`, name, code)

	go SendEmail([]string{email}, subject, getEmailTemplate("Certificate Issued", body))
}

// SendEnrollmentExpiredEmail notifies a worker their deadline passed
func SendEnrollmentExpiredEmail(email, name string) {
	subject := "Your Training Enrollment Has Expired"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your enrollment deadline has passed and the enrollment is now expired.</p>
		<p>To finish the certification you will need to re-enroll in the level.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Expired", body))
}
