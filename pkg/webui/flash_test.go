package webui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edu2job/edu2job/pkg/auth"
)

func TestFlashQueueDrainsOnce(t *testing.T) {
	q := NewFlashQueue()

	q.Notify(auth.SeveritySuccess, "first")
	q.Notify(auth.SeverityError, "second")

	flashes := q.Drain()
	assert.Len(t, flashes, 2)
	assert.Equal(t, "first", flashes[0].Message)
	assert.Equal(t, auth.SeverityError, flashes[1].Severity)
	assert.NotEqual(t, flashes[0].ID, flashes[1].ID)

	assert.Empty(t, q.Drain())
}
