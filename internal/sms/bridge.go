// Package sms defines the device SMS boundary: a narrow request/response
// contract for permission checks and message queries, plus the extraction
// of transactions from message bodies. The aggregation engine never touches
// this package; failures here stay at the application layer.
package sms

import (
	"context"
	"errors"
	"time"
)

// Bridge failure kinds. Callers distinguish these with errors.Is.
var (
	// ErrPermissionDenied indicates the SMS read permission was not granted.
	ErrPermissionDenied = errors.New("sms permission denied")
	// ErrQueryFailed indicates the underlying message query threw.
	ErrQueryFailed = errors.New("sms query failed")
)

// MessageType is the raw message-box code carried by the device provider.
type MessageType int

// Message-box codes, matching the content provider's type column.
const (
	TypeUnknown MessageType = 0
	TypeInbox   MessageType = 1
	TypeSent    MessageType = 2
	TypeDraft   MessageType = 3
	TypeOutbox  MessageType = 4
	TypeFailed  MessageType = 5
	TypeQueued  MessageType = 6
)

// String maps the raw code to its display name. Unrecognized codes map to
// "Unknown".
func (t MessageType) String() string {
	switch t {
	case TypeInbox:
		return "Inbox"
	case TypeSent:
		return "Sent"
	case TypeDraft:
		return "Draft"
	case TypeOutbox:
		return "Outbox"
	case TypeFailed:
		return "Failed"
	case TypeQueued:
		return "Queued"
	default:
		return "Unknown"
	}
}

// Message is one SMS as returned by the device bridge.
type Message struct {
	Date       time.Time
	Address    string
	Body       string
	DateMillis int64
	Type       MessageType
}

// Bridge is the device SMS boundary. QueryMessages returns messages newest
// first; filter restricts results to bodies containing the given substring,
// and limit/offset paginate. RequestPermission is fire-and-forget: the
// outcome is observed through a later CheckPermission call.
type Bridge interface {
	CheckPermission(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) error
	QueryMessages(ctx context.Context, filter string, limit, offset int) ([]Message, error)
}
