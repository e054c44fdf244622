package contact_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fezwebco/getintouch/pkg/email"
	"github.com/fezwebco/getintouch/svc/contact"
)

var fixedNow = time.Date(2026, time.March, 14, 15, 9, 0, 0, time.UTC)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func ofKind(kind string) any {
	return mock.MatchedBy(func(msg email.Message) bool { return msg.Tag == kind })
}

func testConfig() contact.Config {
	return contact.Config{
		OwnerEmail:      "owner@example.com",
		NotifyFromEmail: "notify@example.com",
		NotifyFromName:  "Portfolio Contact Form",
		ReplyFromEmail:  "hello@example.com",
		ReplyFromName:   "Ben Hicks - Portfolio",
		SignatureName:   "Ben Hicks",
		SignatureTitle:  "Full Stack Developer",
		Timezone:        "UTC",
	}
}

func testRenderer() *contact.Renderer {
	return contact.NewRenderer("Ben Hicks", "Full Stack Developer",
		contact.WithClock(func() time.Time { return fixedNow }),
	)
}

func messageOf(t mock.TestingT, m *mockSender, kind string) email.Message {
	for _, call := range m.Calls {
		if msg, ok := call.Arguments.Get(1).(email.Message); ok && msg.Tag == kind {
			return msg
		}
	}
	t.Errorf("no %s message sent", kind)
	return email.Message{}
}
