package mail

import (
	"context"
	"testing"

	"jobtrack/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_UnconfiguredIsNoOp(t *testing.T) {
	mailer := NewMailer(&config.Config{
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
		EmailFrom: "Job Tracker <no-reply@example.com>",
	})

	assert.False(t, mailer.Configured())
	// Missing credentials must never surface as an error to the caller.
	require.NoError(t, mailer.Send(context.Background(), "user@example.com", "subject", "body"))
}
