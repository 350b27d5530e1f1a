package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/durgas/budgetai/internal/common"
	"github.com/durgas/budgetai/internal/service"
)

// Importer pulls messages from the device bridge, extracts transactions,
// and persists them. It implements service.SMSImporter.
type Importer struct {
	bridge   Bridge
	store    service.Storage
	progress func(processed, total int)
	nowFn    func() time.Time
}

// ImporterOption customizes an Importer.
type ImporterOption func(*Importer)

// WithProgress reports extraction progress after each message.
func WithProgress(fn func(processed, total int)) ImporterOption {
	return func(i *Importer) {
		i.progress = fn
	}
}

// WithNow overrides the clock, for tests.
func WithNow(fn func() time.Time) ImporterOption {
	return func(i *Importer) {
		i.nowFn = fn
	}
}

// NewImporter creates an importer over the given bridge and storage.
func NewImporter(bridge Bridge, store service.Storage, opts ...ImporterOption) *Importer {
	importer := &Importer{
		bridge: bridge,
		store:  store,
		nowFn:  time.Now,
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// Import queries up to limit messages matching filter, extracts the
// transactions they carry, and saves them. Permission is requested once
// when not yet granted; if it still is not granted afterward the query
// fails with ErrPermissionDenied. Messages without transaction data are
// counted as skipped, never as failures.
func (i *Importer) Import(ctx context.Context, filter string, limit int) (int, int, error) {
	granted, err := i.bridge.CheckPermission(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if !granted {
		if err := i.bridge.RequestPermission(ctx); err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}

	messages, err := i.bridge.QueryMessages(ctx, filter, limit, 0)
	if err != nil {
		return 0, 0, err
	}

	now := i.nowFn()
	var (
		imported int
		skipped  int
	)
	for idx, msg := range messages {
		txn, err := ParseMessage(msg, now)
		if err != nil {
			skipped++
		} else if err := i.store.SaveTransaction(ctx, txn); err != nil {
			return imported, skipped, fmt.Errorf("failed to save extracted transaction: %w", err)
		} else {
			imported++
		}
		if i.progress != nil {
			i.progress(idx+1, len(messages))
		}
	}

	common.LogDebug("sms import complete", common.Fields{
		"messages": len(messages),
		"imported": imported,
		"skipped":  skipped,
	})

	return imported, skipped, nil
}
