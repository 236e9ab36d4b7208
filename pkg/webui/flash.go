package webui

import (
	"sync"

	"github.com/google/uuid"

	"github.com/edu2job/edu2job/pkg/auth"
)

// Flash is one queued notification, rendered once on the next page.
type Flash struct {
	ID       string
	Severity auth.Severity
	Message  string
}

// FlashQueue collects notifications between requests. It implements
// auth.Notifier so the auth manager can push outcomes into it.
type FlashQueue struct {
	mu      sync.Mutex
	pending []Flash
}

// NewFlashQueue creates the notification queue shared between the auth
// manager and the server.
func NewFlashQueue() *FlashQueue {
	return &FlashQueue{}
}

// Notify queues a notification for the next rendered page.
func (q *FlashQueue) Notify(severity auth.Severity, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, Flash{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  message,
	})
}

// Drain returns the queued notifications and clears the queue, so
// each toast shows exactly once.
func (q *FlashQueue) Drain() []Flash {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}
