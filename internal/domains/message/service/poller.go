package service

import (
	"agrirent/internal/domains/message/model"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// FetchFunc loads the whole thread of a booking.
type FetchFunc func(ctx context.Context) ([]model.Message, error)

// EmitFunc receives messages the poller has not delivered before. Returning an
// error stops the poller.
type EmitFunc func(ctx context.Context, messages []model.Message) error

// Poller fetches a thread immediately and then once per interval until its context
// is cancelled. Fetch errors are logged and the next tick tries again.
type Poller struct {
	bookingID string
	fetch     FetchFunc
	interval  time.Duration
	seen      map[string]struct{}
	refresh   chan struct{}
}

func NewPoller(bookingID string, fetch FetchFunc, interval time.Duration) *Poller {
	return &Poller{
		bookingID: bookingID,
		fetch:     fetch,
		interval:  interval,
		seen:      make(map[string]struct{}),
		refresh:   make(chan struct{}, 1),
	}
}

// Run blocks until ctx is cancelled, in which case it returns nil, or until emit fails.
func (p *Poller) Run(ctx context.Context, emit EmitFunc) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.poll(ctx, emit); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			log.Debug().Str("bookingID", p.bookingID).Msg("chat poller stopped")

			return nil
		case <-ticker.C:
		case <-p.refresh:
			ticker.Reset(p.interval)
		}
	}
}

func (p *Poller) poll(ctx context.Context, emit EmitFunc) error {
	messages, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Err(err).Str("bookingID", p.bookingID).Msg("failed to poll messages")
		}

		return nil
	}

	unseen := p.unseen(messages)
	if len(unseen) == 0 {
		return nil
	}

	return emit(ctx, unseen)
}

func (p *Poller) unseen(messages []model.Message) []model.Message {
	var res []model.Message

	for _, m := range messages {
		if _, ok := p.seen[m.ID]; ok {
			continue
		}

		p.seen[m.ID] = struct{}{}
		res = append(res, m)
	}

	return res
}

// Refresh asks a running poller to fetch now instead of waiting for the next tick.
// It never blocks.
func (p *Poller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}
