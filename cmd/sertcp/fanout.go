package main

import (
	"sync"
	"sync/atomic"
)

const buffer = 16

// fanout delivers each published value to every current subscriber.
// Slow subscribers lose values rather than blocking the publisher.
type fanout[T any] struct {
	mut     sync.Mutex
	subs    []chan<- T
	dropped atomic.Int64
}

func newFanout[T any]() *fanout[T] {
	return &fanout[T]{}
}

func (s *fanout[T]) Publish(val T) {
	s.mut.Lock()
	defer s.mut.Unlock()
	for _, sub := range s.subs {
		select {
		case sub <- val:
		default:
			s.dropped.Add(1)
		}
	}
}

// Dropped returns the number of deliveries skipped because a subscriber
// buffer was full.
func (s *fanout[T]) Dropped() int64 {
	return s.dropped.Load()
}

func (s *fanout[T]) Subscribers() int {
	s.mut.Lock()
	defer s.mut.Unlock()
	return len(s.subs)
}

func (s *fanout[T]) Listen() *fanoutSub[T] {
	ch := make(chan T, buffer)
	s.mut.Lock()
	s.subs = append(s.subs, ch)
	s.mut.Unlock()
	return &fanoutSub[T]{s, ch}
}

func (s *fanout[T]) release(ch chan<- T) {
	s.mut.Lock()
	defer s.mut.Unlock()
	for i, sub := range s.subs {
		if sub == ch {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

type fanoutSub[T any] struct {
	pubsub *fanout[T]
	ch     chan T
}

func (s *fanoutSub[T]) Channel() <-chan T {
	return s.ch
}

func (s *fanoutSub[T]) Close() error {
	s.pubsub.release(s.ch)
	return nil
}
