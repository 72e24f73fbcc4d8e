package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sanketsmane/portfolio-api/internal/model"
	"github.com/wneessen/go-mail"
)

var ErrDeliveryFailed = errors.New("failed to send email")

// EmailService delivers the two contact-form emails through an SMTP relay.
// Development mode logs the email instead of sending it.
type EmailService struct {
	host       string
	port       int
	secure     bool
	user       string
	pass       string
	ownerEmail string
	isDev      bool
}

func NewEmailService(host string, port int, secure bool, user, pass string, isDev bool) *EmailService {
	return &EmailService{
		host:       host,
		port:       port,
		secure:     secure,
		user:       user,
		pass:       pass,
		ownerEmail: user,
		isDev:      isDev,
	}
}

func (s *EmailService) send(ctx context.Context, to, subject, html string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "to", to, "subject", subject)
		return nil
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.user),
		mail.WithPassword(s.pass),
		mail.WithTimeout(15 * time.Second),
	}
	if s.secure {
		opts = append(opts, mail.WithSSLPort(false))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	msg := mail.NewMsg()
	err = msg.FromFormat("Sanket Mane Portfolio", s.user)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	err = msg.To(to)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	// DialAndSend verifies the relay connection before sending
	err = client.DialAndSendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return nil
}

// NotifyOwner sends the owner a notification about a contact-form submission.
func (s *EmailService) NotifyOwner(ctx context.Context, submission model.ContactSubmission) error {
	subject, html := contactNotificationTemplate(submission)
	return s.send(ctx, s.ownerEmail, subject, html)
}

// AutoReply sends the submitter an automated thank-you echoing their message.
func (s *EmailService) AutoReply(ctx context.Context, submission model.ContactSubmission) error {
	subject, html := autoReplyTemplate(submission)
	return s.send(ctx, submission.Email, subject, html)
}
