package events

import (
	"fmt"
	"log/slog"
)

// Listener receives events of the kinds it subscribed to.
//
// Listener values are compared with == for subscription set semantics, so a
// listener must be comparable (a pointer receiver is the usual choice).
type Listener interface {
	Notify(e Event)
}

// Bus maintains one ordered subscriber list per Kind and dispatches events
// synchronously, in subscription order.
type Bus struct {
	log  *slog.Logger
	subs map[Kind][]Listener
}

// NewBus creates an empty Bus. A nil logger falls back to slog.Default();
// the logger is only used to report isolated listener failures.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}

	return &Bus{log: logger, subs: make(map[Kind][]Listener)}
}

// Subscribe registers l for events of the given kind. Subscribing an already
// registered listener is a no-op (set semantics); registration order is the
// dispatch order. Nil listeners are ignored.
func (b *Bus) Subscribe(kind Kind, l Listener) {
	if l == nil {
		return
	}
	for _, s := range b.subs[kind] {
		if s == l {
			return
		}
	}
	b.subs[kind] = append(b.subs[kind], l)
}

// Unsubscribe removes l from the given kind's subscriber list, preserving
// the order of the remaining listeners. Unknown listeners are ignored.
func (b *Bus) Unsubscribe(kind Kind, l Listener) {
	list := b.subs[kind]
	for i, s := range list {
		if s == l {
			b.subs[kind] = append(list[:i:i], list[i+1:]...)

			return
		}
	}
}

// Publish delivers e to every current subscriber of kind, once each, in
// subscription order. A panicking listener is recovered and logged; the
// remaining listeners are still notified.
func (b *Bus) Publish(kind Kind, e Event) {
	for _, l := range b.subs[kind] {
		b.notify(l, e)
	}
}

// notify dispatches to a single listener under panic isolation.
func (b *Bus) notify(l Listener, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("event listener panicked",
				slog.String("event", fmt.Sprintf("%T", e)),
				slog.String("source", e.Source()),
				slog.Any("panic", r),
			)
		}
	}()
	l.Notify(e)
}
