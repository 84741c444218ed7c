package framework

import (
	"context"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

// SentMessage is a message recorded by MockSender.
type SentMessage struct {
	ChannelID snowflake.ID // Zero for direct messages
	UserID    snowflake.ID // Zero for channel messages
	Content   string
}

// MockSender is a test double for Sender.
type MockSender struct {
	mu   sync.Mutex
	Sent []SentMessage
	Err  error
}

// Send records a channel message.
func (m *MockSender) Send(_ context.Context, channelID snowflake.ID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, SentMessage{ChannelID: channelID, Content: content})
	return m.Err
}

// SendDirect records a direct message.
func (m *MockSender) SendDirect(_ context.Context, userID snowflake.ID, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, SentMessage{UserID: userID, Content: content})
	return m.Err
}

// Last returns the most recently recorded message.
func (m *MockSender) Last() (SentMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Sent) == 0 {
		return SentMessage{}, false
	}
	return m.Sent[len(m.Sent)-1], true
}

// Ensure MockSender implements Sender.
var _ Sender = (*MockSender)(nil)
