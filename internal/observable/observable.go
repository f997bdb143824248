package observable

import (
	"sync"
)

// Subscription receives values published to observable. Only the latest value is kept for slow readers.
type Subscription[T any] struct {
	ch chan T
}

func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

type Observable[T any] struct {
	mx          sync.Mutex
	subscribers map[*Subscription[T]]struct{}
}

func New[T any]() *Observable[T] {
	return &Observable[T]{
		subscribers: make(map[*Subscription[T]]struct{}),
	}
}

func (o *Observable[T]) Subscribe() *Subscription[T] {
	o.mx.Lock()
	defer o.mx.Unlock()

	sub := &Subscription[T]{
		ch: make(chan T, 1),
	}
	o.subscribers[sub] = struct{}{}

	return sub
}

func (o *Observable[T]) Unsubscribe(sub *Subscription[T]) {
	o.mx.Lock()
	defer o.mx.Unlock()

	delete(o.subscribers, sub)
}

// Notify publishes value to all subscribers without blocking.
func (o *Observable[T]) Notify(value T) {
	o.mx.Lock()
	defer o.mx.Unlock()

	for sub := range o.subscribers {
		select {
		case sub.ch <- value:
			continue
		default:
		}

		// drop stale value
		select {
		case <-sub.ch:
		default:
		}

		select {
		case sub.ch <- value:
		default:
		}
	}
}

func (o *Observable[T]) SubscribersCount() int {
	o.mx.Lock()
	defer o.mx.Unlock()

	return len(o.subscribers)
}
