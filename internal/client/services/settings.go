package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/crystalpad/internal/client/live"
	"github.com/dmitrijs2005/crystalpad/internal/client/models"
	"github.com/dmitrijs2005/crystalpad/internal/client/repositories/settings"
	"github.com/dmitrijs2005/crystalpad/internal/common"
	"github.com/dmitrijs2005/crystalpad/internal/logging"
)

// SettingsService stores the theme and language preferences.
//
// Contract:
//   - Set: queues a write and returns immediately. Queued writes are applied
//     in submission order by a single background writer; each applied write
//     notifies the key's observers. Write failures are logged.
//   - Observe: streams the key's value, now and after every applied write,
//     until ctx is done. Unset keys read as models.DefaultPreference.
//   - Get: point read with the same default.
//   - All: every known key with its current value, defaults filled in.
//   - Reset: queues removal of the stored value, so the key reads as the
//     default again. Ordered with Set writes.
//   - Sync: waits until every write queued before the call has been applied.
//   - Close: stops accepting writes and drains the queue.
type SettingsService interface {
	Get(ctx context.Context, key models.PreferenceKey) (string, error)
	All(ctx context.Context) (map[models.PreferenceKey]string, error)
	Set(key models.PreferenceKey, value string) error
	Reset(key models.PreferenceKey) error
	Observe(ctx context.Context, key models.PreferenceKey) (<-chan string, error)
	Sync(ctx context.Context) error
	Close(ctx context.Context) error
}

type settingWrite struct {
	key    models.PreferenceKey
	value  string
	remove bool
	done   chan struct{}
}

type settingsService struct {
	repo  settings.Repository
	feeds map[models.PreferenceKey]*live.Feed[string]
	log   logging.Logger

	mu      sync.RWMutex
	closed  bool
	writes  chan settingWrite
	drained chan struct{}
}

func NewSettingsService(repo settings.Repository, log logging.Logger) SettingsService {
	s := &settingsService{
		repo:    repo,
		feeds:   make(map[models.PreferenceKey]*live.Feed[string]),
		log:     log,
		writes:  make(chan settingWrite, 32),
		drained: make(chan struct{}),
	}
	for _, k := range models.PreferenceKeys() {
		k := k
		s.feeds[k] = live.NewFeed(func(ctx context.Context) (string, error) {
			return s.Get(ctx, k)
		})
	}
	go s.run()
	return s
}

func (s *settingsService) Get(ctx context.Context, key models.PreferenceKey) (string, error) {
	if !key.Known() {
		return "", fmt.Errorf("%w: %q", common.ErrUnknownPreference, key)
	}
	v, ok, err := s.repo.Get(ctx, string(key))
	if err != nil {
		return "", err
	}
	if !ok {
		return models.DefaultPreference, nil
	}
	return v, nil
}

func (s *settingsService) All(ctx context.Context) (map[models.PreferenceKey]string, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[models.PreferenceKey]string, len(s.feeds))
	for _, k := range models.PreferenceKeys() {
		if v, ok := stored[string(k)]; ok {
			result[k] = v
		} else {
			result[k] = models.DefaultPreference
		}
	}
	return result, nil
}

func (s *settingsService) Reset(key models.PreferenceKey) error {
	if !key.Known() {
		return fmt.Errorf("%w: %q", common.ErrUnknownPreference, key)
	}
	return s.enqueue(settingWrite{key: key, remove: true})
}

func (s *settingsService) Set(key models.PreferenceKey, value string) error {
	if !key.Known() {
		return fmt.Errorf("%w: %q", common.ErrUnknownPreference, key)
	}
	return s.enqueue(settingWrite{key: key, value: value})
}

func (s *settingsService) Observe(ctx context.Context, key models.PreferenceKey) (<-chan string, error) {
	feed, ok := s.feeds[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownPreference, key)
	}
	return feed.Subscribe(ctx)
}

func (s *settingsService) Sync(ctx context.Context) error {
	done := make(chan struct{})
	if err := s.enqueue(settingWrite{done: done}); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *settingsService) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.writes)
	}
	s.mu.Unlock()

	select {
	case <-s.drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *settingsService) enqueue(w settingWrite) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return common.ErrClosed
	}
	s.writes <- w
	return nil
}

func (s *settingsService) run() {
	defer close(s.drained)
	ctx := context.Background()

	for w := range s.writes {
		if w.done != nil {
			close(w.done)
			continue
		}
		if err := s.apply(ctx, w); err != nil {
			s.log.Error(ctx, "preference write failed", "key", w.key, "error", err)
			continue
		}
		if err := s.feeds[w.key].Publish(ctx); err != nil {
			s.log.Warn(ctx, "preference refresh failed", "key", w.key, "error", err)
		}
	}
}

func (s *settingsService) apply(ctx context.Context, w settingWrite) error {
	if w.remove {
		if err := s.repo.Delete(ctx, string(w.key)); err != nil {
			return err
		}
		s.log.Debug(ctx, "preference reset", "key", w.key)
		return nil
	}
	if err := s.repo.Set(ctx, string(w.key), w.value); err != nil {
		return err
	}
	s.log.Debug(ctx, "preference saved", "key", w.key, "value", w.value)
	return nil
}
