package checklistsvc

import (
	"context"

	"github.com/cockroachdb/pebble"

	"github.com/alkapone312/shared-checklist/internal/eventlog"
	"github.com/alkapone312/shared-checklist/internal/room"
	logpkg "github.com/alkapone312/shared-checklist/pkg/log"
)

// Sweep removes every room whose last activity predates the retention
// window, cascading to its events. The whole pass uses one now() snapshot
// and commits one batch: either all expired rooms and their events go, or
// none do.
func (s *Service) Sweep(ctx context.Context) error {
	cutoff := s.now() - s.rt.Config().RetentionSeconds
	db := s.rt.DB()

	low, high := room.PrefixBounds()
	iter, err := db.NewIter(&pebble.IterOptions{LowerBound: low, UpperBound: high})
	if err != nil {
		return err
	}

	b := db.NewBatch()
	defer b.Close()

	expired := 0
	for ok := iter.First(); ok; ok = iter.Next() {
		m, err := room.DecodeMeta(iter.Value())
		if err != nil {
			continue
		}
		last := m.CreatedAt
		if ts, hasEvents := s.rt.Log().LastActivity(m.ID); hasEvents {
			last = ts
		}
		if last >= cutoff {
			continue
		}
		elow, ehigh := eventlog.EntryBounds(m.ID)
		if err := b.DeleteRange(elow, ehigh, nil); err != nil {
			_ = iter.Close()
			return err
		}
		if err := b.Delete(eventlog.KeyActivity(m.ID), nil); err != nil {
			_ = iter.Close()
			return err
		}
		if err := b.Delete(room.MetaKey(m.ID), nil); err != nil {
			_ = iter.Close()
			return err
		}
		expired++
	}
	if err := iter.Close(); err != nil {
		return err
	}
	if expired == 0 {
		return nil
	}
	if err := db.CommitBatch(ctx, b); err != nil {
		return err
	}
	s.logger.Info("expired rooms swept", logpkg.Int("rooms", expired))
	return nil
}
