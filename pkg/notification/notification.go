// Package notification delivers subject/body messages to a recipient and
// reports a confirmation string.
//
// A confirmation beginning with SentPrefix means the message was accepted;
// anything else is a non-success. Senders never return errors: failures are
// folded into the confirmation text.
//
//	conf := notification.Dispatch(notification.Default(), "New Order", text, vendor.Email)
//	ok := notification.Accepted(conf)
package notification

import (
	"strings"
	"sync"

	"github.com/acme/acme/config"
	"github.com/acme/acme/pkg/logger"
	"github.com/acme/acme/pkg/mail"
	"github.com/acme/acme/pkg/metrics"
)

// SentPrefix starts every accepted confirmation.
const SentPrefix = "Message sent:"

// Sender is the notification collaborator.
type Sender interface {
	Send(subject, body, recipient string) string
}

// SenderFunc adapts a plain function to Sender.
type SenderFunc func(subject, body, recipient string) string

func (f SenderFunc) Send(subject, body, recipient string) string { return f(subject, body, recipient) }

// Accepted reports whether conf is a success confirmation.
func Accepted(conf string) bool {
	return strings.HasPrefix(conf, SentPrefix)
}

// Dispatch sends through s and counts the outcome.
func Dispatch(s Sender, subject, body, recipient string) string {
	conf := s.Send(subject, body, recipient)
	metrics.RecordDispatch(Accepted(conf))
	return conf
}

// ------------------- Log channel -------------------

// LogSender writes the message to the log instead of delivering it.
type LogSender struct{}

func (LogSender) Send(subject, body, recipient string) string {
	logger.Info("notification: message logged",
		"subject", subject, "recipient", recipient, "body", body)
	return SentPrefix + " " + subject
}

// ------------------- Mail channel -------------------

// MailSender delivers messages over SMTP.
type MailSender struct {
	// SMTP overrides the MAIL_* settings when Host is set.
	SMTP mail.SMTP
}

func (s MailSender) Send(subject, body, recipient string) string {
	msg := mail.To(recipient).Subject(subject).Text(body)
	if s.SMTP.Host != "" {
		msg = msg.UseConfig(s.SMTP)
	}

	if err := msg.Send(); err != nil {
		logger.Error("notification: mail failed",
			"recipient", recipient, "error", err)
		return "Message failed: " + err.Error()
	}
	return SentPrefix + " " + subject
}

// ------------------- Default sender -------------------

var (
	mu            sync.RWMutex
	defaultSender Sender
)

// SetDefault replaces the sender returned by Default. nil restores the
// config-selected sender.
func SetDefault(s Sender) {
	mu.Lock()
	defer mu.Unlock()
	defaultSender = s
}

// Default returns the sender set with SetDefault, or one chosen by
// NOTIFY_DRIVER.
func Default() Sender {
	mu.RLock()
	s := defaultSender
	mu.RUnlock()
	if s != nil {
		return s
	}
	return FromConfig()
}

// FromConfig builds the sender named by NOTIFY_DRIVER.
func FromConfig() Sender {
	switch config.NotifyDriver() {
	case "mail":
		return MailSender{}
	default:
		return LogSender{}
	}
}
