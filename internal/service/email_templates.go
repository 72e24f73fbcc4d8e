package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/sanketsmane/portfolio-api/internal/model"
)

func htmlMessage(message string) string {
	return strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
}

func contactNotificationTemplate(sub model.ContactSubmission) (string, string) {
	subject := fmt.Sprintf("New Contact: %s", sub.Subject)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 20px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1>New Contact Form Submission</h1>
    <p>You have received a new message from your portfolio website</p>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Subject:</strong> %s</p>
    <div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #667eea;">%s</div>
    <p style="text-align: center;"><a href="mailto:%s" style="display: inline-block; background: #667eea; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px;">Reply to %s</a></p>
  </div>
  <p style="text-align: center; color: #666; font-size: 12px;">Received on %s &mdash; Portfolio Website Contact Form</p>
</body>
</html>`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Subject),
		htmlMessage(sub.Message),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Name),
		time.Now().Format("January 2, 2006 15:04"),
	)

	return subject, body
}

func autoReplyTemplate(sub model.ContactSubmission) (string, string) {
	subject := fmt.Sprintf("Thank you for contacting me, %s!", sub.Name)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1>Thank You, %s!</h1>
    <p>I've received your message and will get back to you soon</p>
  </div>
  <div style="background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px;">
    <p>Hi %s,</p>
    <p>Thank you for reaching out! I appreciate you taking the time to contact me through my portfolio website.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #667eea;">
      <h3>Your Message:</h3>
      <p><strong>Subject:</strong> %s</p>
      <p>%s</p>
    </div>
    <p>I'll review your message and get back to you as soon as possible, typically within 24-48 hours.</p>
    <p>In the meantime, feel free to connect with me on
      <a href="https://linkedin.com/in/sanket-mane-b16a35238">LinkedIn</a> or check out my projects on
      <a href="https://github.com/SanketsMane">GitHub</a>.</p>
    <p>Best regards,<br><strong>Sanket Mane</strong><br>Full Stack Developer</p>
  </div>
  <p style="text-align: center; color: #666; font-size: 12px;">This is an automated response. Please do not reply to this email.</p>
</body>
</html>`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Subject),
		htmlMessage(sub.Message),
	)

	return subject, body
}
