// Package testkit provides substitutable collaborators for tests: senders
// and action loggers that record what the code under test asked of them.
package testkit

import (
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/acme/acme/pkg/logger"
	"github.com/acme/acme/pkg/notification"
)

var (
	_ notification.Sender = (*MockSender)(nil)
	_ notification.Sender = (*RecordingSender)(nil)
	_ logger.ActionLogger = (*MockActionLogger)(nil)
)

// ─── MockSender ───────────────────────────────────────────────────────────────

// MockSender is a testify/mock-backed notification.Sender. Set expectations
// with On("Send", subject, body, recipient).Return(confirmation).
type MockSender struct {
	mock.Mock
}

// NewMockSender returns a MockSender that accepts any call and confirms it
// with "Message sent: <subject>".
func NewMockSender() *MockSender {
	m := &MockSender{}
	m.On("Send", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(func(subject, _, _ string) string {
			return notification.SentPrefix + " " + subject
		})
	return m
}

// Send records the call and returns the configured confirmation. Return
// values may be a string or a func(subject, body, recipient string) string.
func (m *MockSender) Send(subject, body, recipient string) string {
	args := m.Called(subject, body, recipient)
	switch v := args.Get(0).(type) {
	case func(string, string, string) string:
		return v(subject, body, recipient)
	case string:
		return v
	default:
		return ""
	}
}

// ─── RecordingSender ──────────────────────────────────────────────────────────

// Call is one recorded Send.
type Call struct {
	Subject   string
	Body      string
	Recipient string
}

// RecordingSender remembers every Send and answers with Reply, or with
// "Message sent: <subject>" when Reply is empty.
type RecordingSender struct {
	Reply string

	mu    sync.Mutex
	calls []Call
}

func (r *RecordingSender) Send(subject, body, recipient string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Subject: subject, Body: body, Recipient: recipient})
	if r.Reply != "" {
		return r.Reply
	}
	return notification.SentPrefix + " " + subject
}

// Calls returns a copy of the recorded calls.
func (r *RecordingSender) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call and whether there was one.
func (r *RecordingSender) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// ─── MockActionLogger ─────────────────────────────────────────────────────────

// MockActionLogger is a testify/mock-backed logger.ActionLogger.
type MockActionLogger struct {
	mock.Mock
}

// NewMockActionLogger accepts any description and returns "logged".
func NewMockActionLogger() *MockActionLogger {
	m := &MockActionLogger{}
	m.On("LogAction", mock.AnythingOfType("string")).Return("logged")
	return m
}

func (m *MockActionLogger) LogAction(description string) string {
	return m.Called(description).String(0)
}
