package service

import (
	"context"
	"sync"
	"testing"

	"jobtrack/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}

type fakeRegistry struct {
	mu     sync.Mutex
	online map[string]bool
	pushed map[string][]model.NotificationEvent
}

func newFakeRegistry(online ...string) *fakeRegistry {
	r := &fakeRegistry{online: map[string]bool{}, pushed: map[string][]model.NotificationEvent{}}
	for _, id := range online {
		r.online[id] = true
	}
	return r
}

func (f *fakeRegistry) Send(userID string, event model.NotificationEvent) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.online[userID] {
		return false
	}
	f.pushed[userID] = append(f.pushed[userID], event)
	return true
}

func TestDispatch_EmailTarget(t *testing.T) {
	mailer := &fakeMailer{}
	// Even a target that could double as a user id goes down the mail path
	// when it contains "@".
	registry := newFakeRegistry("user@example.com")
	svc := NewNotificationService(nil, "", mailer, registry)

	svc.Dispatch(context.Background(), model.NotificationTask{
		Target:  "user@example.com",
		Subject: "New Job Added",
		Body:    "New application added for Engineer at Acme.",
	})

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "user@example.com", mailer.sent[0].To)
	assert.Equal(t, "New Job Added", mailer.sent[0].Subject)
	assert.Empty(t, registry.pushed)
}

func TestDispatch_PanelTarget(t *testing.T) {
	mailer := &fakeMailer{}
	registry := newFakeRegistry("user-1")
	svc := NewNotificationService(nil, "", mailer, registry)

	svc.Dispatch(context.Background(), model.NotificationTask{Target: "user-1", Body: "hello"})

	require.Len(t, registry.pushed["user-1"], 1)
	assert.Equal(t, "hello", registry.pushed["user-1"][0].Message)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_PanelTarget_NotConnected(t *testing.T) {
	mailer := &fakeMailer{}
	registry := newFakeRegistry() // nobody online
	svc := NewNotificationService(nil, "", mailer, registry)

	// Completes without error and without side effect.
	svc.Dispatch(context.Background(), model.NotificationTask{Target: "user-1", Body: "hello"})

	assert.Empty(t, registry.pushed)
	assert.Empty(t, mailer.sent)
}

func TestDispatch_NilCollaborators(t *testing.T) {
	svc := NewNotificationService(nil, "", nil, nil)

	// Neither path panics when its transport is absent.
	svc.Dispatch(context.Background(), model.NotificationTask{Target: "user@example.com", Body: "x"})
	svc.Dispatch(context.Background(), model.NotificationTask{Target: "user-1", Body: "x"})
}

func TestNotify_EmptyTarget(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(nil, "", mailer, newFakeRegistry())

	svc.Notify("", "subject", "body")
	assert.Empty(t, mailer.sent)
}
