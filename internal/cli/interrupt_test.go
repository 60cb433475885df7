package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a thread-safe wrapper around bytes.Buffer.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (sb *syncBuffer) Write(p []byte) (n int, err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

func TestInterruptHandler_Message(t *testing.T) {
	tests := []struct {
		name       string
		resumeHint string
		wantHint   bool
	}{
		{name: "with hint", resumeHint: "Files already imported are saved.", wantHint: true},
		{name: "without hint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf syncBuffer
			h := NewInterruptHandler(&buf, "Import", tt.resumeHint)
			assert.False(t, h.WasInterrupted())

			h.interrupt()
			h.interrupt()

			assert.True(t, h.WasInterrupted())
			out := buf.String()
			assert.Contains(t, out, "Import interrupted!")
			assert.Equal(t, 1, bytes.Count([]byte(out), []byte("interrupted!")))
			if tt.wantHint {
				assert.Contains(t, out, tt.resumeHint)
			}
		})
	}
}

func TestInterruptHandler_ParentCancel(t *testing.T) {
	var buf syncBuffer
	h := NewInterruptHandler(&buf, "Import", "")

	parent, cancel := context.WithCancel(context.Background())
	ctx := h.HandleInterrupts(parent)
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		require.Fail(t, "context was not canceled with its parent")
	}
	assert.False(t, h.WasInterrupted())
	assert.Empty(t, buf.String())
}
