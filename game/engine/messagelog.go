package engine

import (
	"sync"
	"time"
)

// MessageKind classifies a log entry for the UI feed
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageWarning
	MessageError
	MessageOther
)

// String returns the kind name
func (k MessageKind) String() string {
	switch k {
	case MessageInfo:
		return "info"
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	default:
		return "other"
	}
}

// Message is a single timestamped log entry
type Message struct {
	Text string      `json:"text"`
	Kind MessageKind `json:"kind"`
	Time time.Time   `json:"time"`
}

// subscriberBuffer is the channel depth for each log subscriber. Delivery is
// non-blocking: a subscriber that falls this far behind misses entries
// rather than stalling the log.
const subscriberBuffer = 32

// MessageLog stores game messages newest-first, bounded by a capacity.
// When the bound is exceeded the oldest entries by timestamp are dropped,
// which tolerates entries arriving with out-of-order times.
//
// Subscribers receive each new entry on their own buffered channel. A slow
// subscriber never blocks Add and never affects other subscribers, and no
// entry is delivered after its subscription is cancelled.
type MessageLog struct {
	mu       sync.Mutex
	capacity int
	messages []Message // newest-first
	subs     map[int]chan Message
	nextSub  int
}

// NewMessageLog creates an empty log holding at most capacity entries
func NewMessageLog(capacity int) *MessageLog {
	if capacity <= 0 {
		capacity = DefaultRules().MessageLogCapacity
	}
	return &MessageLog{
		capacity: capacity,
		subs:     make(map[int]chan Message),
	}
}

// Add appends a timestamped text entry
func (l *MessageLog) Add(text string, kind MessageKind) {
	l.AddMessage(Message{Text: text, Kind: kind, Time: time.Now()})
}

// AddMessage inserts an entry, keeping newest-first order by timestamp and
// trimming the oldest entries past capacity
func (l *MessageLog) AddMessage(msg Message) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Insert in timestamp order. Entries almost always arrive newest-last,
	// so scanning from the front is cheap.
	pos := 0
	for pos < len(l.messages) && l.messages[pos].Time.After(msg.Time) {
		pos++
	}
	l.messages = append(l.messages, Message{})
	copy(l.messages[pos+1:], l.messages[pos:])
	l.messages[pos] = msg

	if len(l.messages) > l.capacity {
		l.messages = l.messages[:l.capacity]
	}

	// Non-blocking fan-out under the lock: cancellation also takes the
	// lock, so a channel can never be closed mid-send.
	for _, ch := range l.subs {
		select {
		case ch <- msg:
		default:
			// Subscriber buffer full; it misses this entry
		}
	}
}

// Clear removes every entry. Subscriptions are unaffected.
func (l *MessageLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}

// Newest returns a copy of the entries, newest first
func (l *MessageLog) Newest() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of stored entries
func (l *MessageLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// Capacity returns the maximum number of stored entries
func (l *MessageLog) Capacity() int {
	return l.capacity
}

// Subscribe registers a listener for new entries. The returned cancel
// function removes the listener and closes its channel; it is safe to call
// more than once.
func (l *MessageLog) Subscribe() (<-chan Message, func()) {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	ch := make(chan Message, subscriberBuffer)
	l.subs[id] = ch
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if sub, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
