package mocks

import (
	"sync"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// MockNotificationService implements domain.NotificationService for testing
// and records every message it was asked to send.
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	mu       sync.Mutex
	SentSMS  []SentMessage
	SentMail []SentMessage
}

// SentMessage captures a delivered notification for assertions
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	m.mu.Lock()
	m.SentSMS = append(m.SentSMS, SentMessage{To: to, Body: message})
	m.mu.Unlock()
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	m.mu.Lock()
	m.SentMail = append(m.SentMail, SentMessage{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

var _ domain.NotificationService = (*MockNotificationService)(nil)
