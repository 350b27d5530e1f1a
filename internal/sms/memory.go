package sms

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryBridge is an in-process Bridge backed by a fixed message set. It
// stands in for the device content provider, which does not exist in this
// process: tests and the import command run against it with the same
// permission and pagination semantics the device bridge has.
type MemoryBridge struct {
	mu       sync.Mutex
	messages []Message
	granted  bool
}

// NewMemoryBridge creates a bridge over the given messages. Permission
// starts out denied unless granted is true.
func NewMemoryBridge(messages []Message, granted bool) *MemoryBridge {
	return &MemoryBridge{messages: messages, granted: granted}
}

// CheckPermission reports the current permission state.
func (b *MemoryBridge) CheckPermission(_ context.Context) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.granted, nil
}

// RequestPermission grants permission. On a device this is asynchronous and
// observed via a later CheckPermission; here it takes effect immediately.
func (b *MemoryBridge) RequestPermission(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.granted = true
	return nil
}

// QueryMessages returns messages newest first, filtered by body substring
// and paginated with limit/offset. It fails with ErrPermissionDenied when
// permission has not been granted.
func (b *MemoryBridge) QueryMessages(_ context.Context, filter string, limit, offset int) ([]Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.granted {
		return nil, ErrPermissionDenied
	}

	matched := make([]Message, 0, len(b.messages))
	for _, msg := range b.messages {
		if filter == "" || strings.Contains(strings.ToLower(msg.Body), strings.ToLower(filter)) {
			matched = append(matched, msg)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	if offset >= len(matched) {
		return []Message{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}
