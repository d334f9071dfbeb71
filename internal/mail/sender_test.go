package mail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asconalumni/alumni-server/internal/model"
	"github.com/asconalumni/alumni-server/internal/testutil"
)

type fakePool struct {
	sent    []*email.Email
	timeout time.Duration
	err     error
	closed  bool
}

func (f *fakePool) Send(e *email.Email, timeout time.Duration) error {
	f.timeout = timeout
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

func (f *fakePool) Close() { f.closed = true }

func TestSMTPSender_Send(t *testing.T) {
	p := &fakePool{}
	s := newSMTPSender(p, "Alumni <no-reply@example.org>", 5*time.Second, testutil.MakeNoopLogger())

	err := s.Send(context.Background(), model.MailMessage{
		To: "alice@example.com", Subject: "Hi", Text: "plain", HTML: "<p>html</p>",
	})
	require.NoError(t, err)
	require.Len(t, p.sent, 1)

	e := p.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, e.To)
	assert.Equal(t, "Alumni <no-reply@example.org>", e.From)
	assert.Equal(t, "Hi", e.Subject)
	assert.Equal(t, []byte("plain"), e.Text)
	assert.Equal(t, []byte("<p>html</p>"), e.HTML)
	assert.Equal(t, 5*time.Second, p.timeout)

	s.Close()
	assert.True(t, p.closed)
}

func TestSMTPSender_Send_DeadlineShortensTimeout(t *testing.T) {
	p := &fakePool{}
	s := newSMTPSender(p, "from@example.org", time.Minute, testutil.MakeNoopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, s.Send(ctx, model.MailMessage{To: "a@b.c"}))
	assert.LessOrEqual(t, p.timeout, 2*time.Second)
	assert.Nil(t, p.sent[0].HTML)
}

func TestSMTPSender_Send_Errors(t *testing.T) {
	t.Run("relay failure", func(t *testing.T) {
		p := &fakePool{err: errors.New("421 service not available")}
		s := newSMTPSender(p, "from@example.org", time.Second, testutil.MakeNoopLogger())

		err := s.Send(context.Background(), model.MailMessage{To: "a@b.c"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send mail")
	})

	t.Run("cancelled context", func(t *testing.T) {
		p := &fakePool{}
		s := newSMTPSender(p, "from@example.org", time.Second, testutil.MakeNoopLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, s.Send(ctx, model.MailMessage{To: "a@b.c"}), context.Canceled)
		assert.Empty(t, p.sent)
	})
}

func TestLogSender_Send(t *testing.T) {
	s := NewLogSender(testutil.MakeNoopLogger())
	assert.NoError(t, s.Send(context.Background(), model.MailMessage{To: "a@b.c", Subject: "s"}))
}

func TestResetMessage(t *testing.T) {
	msg, err := ResetMessage("alice@example.com", "Alice", "https://alumni.example.org/reset-password/abc123", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, resetSubject, msg.Subject)
	assert.Contains(t, msg.Text, "Hello Alice")
	assert.Contains(t, msg.Text, "https://alumni.example.org/reset-password/abc123")
	assert.Contains(t, msg.Text, "1 hour")
	assert.Contains(t, msg.HTML, `href="https://alumni.example.org/reset-password/abc123"`)
}

func TestResetMessage_EscapesHTML(t *testing.T) {
	msg, err := ResetMessage("a@b.c", "<script>", "https://x/y", 30*time.Minute)
	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.Text, "30 minutes")
}

func TestHumanize(t *testing.T) {
	tests := map[time.Duration]string{
		time.Hour:        "1 hour",
		2 * time.Hour:    "2 hours",
		time.Minute:      "1 minute",
		45 * time.Minute: "45 minutes",
		90 * time.Second: "1m30s",
	}
	for d, want := range tests {
		assert.Equal(t, want, humanize(d))
	}
}
