package notification_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/acme/acme/pkg/mail"
	"github.com/acme/acme/pkg/metrics"
	"github.com/acme/acme/pkg/notification"
	"github.com/acme/acme/pkg/testkit"
)

func TestLogSenderConfirms(t *testing.T) {
	conf := notification.LogSender{}.Send("Hello ABC Corp", "Test Message", "abc@example.com")

	assert.Equal(t, "Message sent: Hello ABC Corp", conf)
	assert.True(t, notification.Accepted(conf))
}

func TestAccepted(t *testing.T) {
	assert.True(t, notification.Accepted("Message sent: x"))
	assert.False(t, notification.Accepted("Message failed: x"))
	assert.False(t, notification.Accepted(" Message sent: x"))
	assert.False(t, notification.Accepted(""))
}

func TestMailSenderReportsFailure(t *testing.T) {
	s := notification.MailSender{SMTP: mail.SMTP{Host: "localhost", Port: "2525"}}

	conf := s.Send("New Order", "body", "vendor@example.com")

	assert.Equal(t, "Message failed: mail: MAIL_USERNAME not configured", conf)
	assert.False(t, notification.Accepted(conf))
}

func TestDispatchCountsOutcome(t *testing.T) {
	sent := testutil.ToFloat64(metrics.NotificationsDispatched.WithLabelValues("sent"))
	failed := testutil.ToFloat64(metrics.NotificationsDispatched.WithLabelValues("failed"))

	rec := &testkit.RecordingSender{}
	conf := notification.Dispatch(rec, "New Order", "text", "v@example.com")
	assert.Equal(t, "Message sent: New Order", conf)

	rec.Reply = "queue full"
	conf = notification.Dispatch(rec, "New Order", "text", "v@example.com")
	assert.Equal(t, "queue full", conf)

	assert.Equal(t, sent+1, testutil.ToFloat64(metrics.NotificationsDispatched.WithLabelValues("sent")))
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.NotificationsDispatched.WithLabelValues("failed")))
	assert.Len(t, rec.Calls(), 2)
}

func TestDefaultSender(t *testing.T) {
	t.Cleanup(func() { notification.SetDefault(nil) })

	assert.IsType(t, notification.LogSender{}, notification.Default())

	mock := testkit.NewMockSender()
	notification.SetDefault(mock)
	assert.Same(t, mock, notification.Default())

	notification.SetDefault(nil)
	assert.IsType(t, notification.LogSender{}, notification.Default())
}

func TestFromConfigMailDriver(t *testing.T) {
	t.Setenv("NOTIFY_DRIVER", "mail")

	assert.IsType(t, notification.MailSender{}, notification.FromConfig())
}

func TestSenderFunc(t *testing.T) {
	s := notification.SenderFunc(func(subject, body, recipient string) string {
		return subject + "|" + body + "|" + recipient
	})

	assert.Equal(t, "a|b|c", s.Send("a", "b", "c"))
}
