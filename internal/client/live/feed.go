// Package live implements publish-on-mutation value feeds.
//
// A Feed re-reads its source through a Loader each time Publish is called and
// hands the fresh value to every subscriber. Subscribers receive the current
// value as soon as they subscribe. Each subscriber channel holds at most one
// pending value: a consumer that falls behind skips intermediate values and
// always ends up with the latest one.
//
// Publishes are serialised, so values arrive in the order the underlying
// mutations happened.
package live

import (
	"context"
	"fmt"
	"sync"
)

// Loader reads the current value of the observed source.
type Loader[T any] func(ctx context.Context) (T, error)

type subscriber[T any] struct {
	ch chan T
}

// Feed fans the latest value of a source out to its subscribers.
type Feed[T any] struct {
	mu   sync.Mutex
	load Loader[T]
	subs map[*subscriber[T]]struct{}
}

func NewFeed[T any](load Loader[T]) *Feed[T] {
	return &Feed[T]{
		load: load,
		subs: make(map[*subscriber[T]]struct{}),
	}
}

// Subscribe registers a subscriber and delivers the current value to it.
// The returned channel is closed once ctx is done.
func (f *Feed[T]) Subscribe(ctx context.Context) (<-chan T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, err := f.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("initial load: %w", err)
	}

	s := &subscriber[T]{ch: make(chan T, 1)}
	s.ch <- v
	f.subs[s] = struct{}{}

	go func() {
		<-ctx.Done()
		f.unsubscribe(s)
	}()

	return s.ch, nil
}

// Publish reloads the source and delivers the value to all subscribers.
// It does nothing when nobody is subscribed.
func (f *Feed[T]) Publish(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.subs) == 0 {
		return nil
	}

	v, err := f.load(ctx)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	for s := range f.subs {
		s.offer(v)
	}
	return nil
}

// Len returns the number of active subscribers.
func (f *Feed[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Feed[T]) unsubscribe(s *subscriber[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[s]; ok {
		delete(f.subs, s)
		close(s.ch)
	}
}

// offer replaces any undelivered value with v. Callers hold the feed lock,
// so the consumer is the only other party touching the channel.
func (s *subscriber[T]) offer(v T) {
	select {
	case s.ch <- v:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	s.ch <- v
}
