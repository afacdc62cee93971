// Package session runs one full pass over a transaction feed: parse, apply
// in order, report. Malformed rows are logged and skipped; only I/O and
// storage failures abort the run.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sheikh-saqib/payments-engine/internal/csvio"
	"github.com/sheikh-saqib/payments-engine/internal/engine"
	"github.com/sheikh-saqib/payments-engine/internal/interfaces"
	"github.com/sheikh-saqib/payments-engine/internal/models"
	"github.com/sheikh-saqib/payments-engine/internal/models/events"
)

// Session wires the engine to its input and output collaborators. The event
// publisher and snapshot store are optional boundary observers; they never
// influence how records are applied.
type Session struct {
	engine    *engine.Engine
	publisher interfaces.EventPublisher
	snapshots interfaces.SnapshotStore
	logger    *slog.Logger
}

type Option func(*Session)

// WithPublisher emits boundary events for each processed record.
func WithPublisher(p interfaces.EventPublisher) Option {
	return func(s *Session) { s.publisher = p }
}

// WithSnapshotStore exports the final account states after processing.
func WithSnapshotStore(st interfaces.SnapshotStore) Option {
	return func(s *Session) { s.snapshots = st }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func New(e *engine.Engine, opts ...Option) *Session {
	s := &Session{
		engine: e,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run consumes the input feed and writes the final account report. It fails
// only on structural errors: unreadable input, storage failure, snapshot
// export failure, or unwritable output.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := csvio.NewReader(in)

	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var rowErr *csvio.RowError
		if errors.As(err, &rowErr) {
			s.logger.Warn("skipping malformed row", "line", rowErr.Line, "error", rowErr.Err)
			continue
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		res, err := s.engine.Process(rec)
		if err != nil {
			return fmt.Errorf("apply tx %d: %w", rec.Tx, err)
		}
		s.publish(ctx, rec, res)
	}

	accounts := s.engine.Accounts()

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshots(ctx, accounts); err != nil {
			return fmt.Errorf("export snapshots: %w", err)
		}
	}
	if err := csvio.WriteAccounts(out, accounts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// publish emits boundary events for one processed record. Publish failures
// are logged and swallowed so observability can never change the outcome of
// a run.
func (s *Session) publish(ctx context.Context, rec models.Record, res engine.Result) {
	if s.publisher == nil {
		return
	}

	switch {
	case !res.Applied:
		s.publishEvent(ctx, events.NewRecordDropped(rec, string(res.Reason)))
	case rec.Type.Monetary():
		s.publishEvent(ctx, events.NewTransactionAccepted(rec))
	}
	if res.LockedAccount {
		s.publishEvent(ctx, events.NewAccountLocked(rec))
	}
}

func (s *Session) publishEvent(ctx context.Context, event any) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publish event", "error", err)
	}
}
