package enhancer

import (
	"sync"
	"sync/atomic"

	"github.com/comalice/statestore"
)

// Published bundles a dispatched action with the state it produced.
type Published struct {
	Action statestore.Action
	State  statestore.State
}

// ChannelPublisher forwards every successful reduction to a Go channel.
// Publishing never blocks the dispatching goroutine: when the channel is full, or
// the publisher is closed, the update is dropped and counted.
type ChannelPublisher struct {
	mu      sync.Mutex
	ch      chan<- Published
	closed  bool
	dropped atomic.Uint64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Published) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

// Publish returns an enhancer that forwards updates to ch, dropping on backpressure.
func Publish(ch chan<- Published) statestore.Enhancer {
	return NewChannelPublisher(ch).Enhancer()
}

// Enhancer returns the enhancer that feeds this publisher.
func (p *ChannelPublisher) Enhancer() statestore.Enhancer {
	return observe(func(action statestore.Action, state statestore.State) {
		p.publish(Published{Action: action, State: state})
	})
}

// Dropped reports how many updates were discarded.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped.Load()
}

// Close closes the output channel. Later updates are dropped; later calls are no-ops.
func (p *ChannelPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	close(p.ch)
	return nil
}

func (p *ChannelPublisher) publish(msg Published) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		p.dropped.Add(1)
		return
	}
	select {
	case p.ch <- msg:
	default:
		p.dropped.Add(1)
	}
}
