package store

import "sync"

const changeBufferSize = 16

// Change notifies subscribers that a mutation produced a new snapshot.
type Change struct {
	Version uint64 `json:"version"`
	Op      string `json:"op"`
}

// broker fans snapshot changes out to in-process subscribers. Slow
// subscribers drop events rather than blocking the writer.
type broker struct {
	mu          sync.RWMutex
	subscribers map[chan Change]struct{}
}

func newBroker() *broker {
	return &broker{subscribers: make(map[chan Change]struct{})}
}

func (b *broker) subscribe() (<-chan Change, func()) {
	channel := make(chan Change, changeBufferSize)

	b.mu.Lock()
	b.subscribers[channel] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[channel]; ok {
			delete(b.subscribers, channel)
			close(channel)
		}
		b.mu.Unlock()
	}

	return channel, cancel
}

func (b *broker) publish(change Change) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for channel := range b.subscribers {
		select {
		case channel <- change:
		default:
		}
	}
}
