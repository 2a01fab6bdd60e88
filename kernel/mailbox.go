package kernel

import (
	"runtime"

	"go.uber.org/atomic"
)

// MaxMessageBytes is the maximum payload size of a message.
const MaxMessageBytes = 16

const mailboxSlots = 8

// Message is a fixed-size message envelope.
type Message struct {
	To   Endpoint
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

// Mailbox is a fixed-size multi-producer, single-consumer queue without allocations.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	ready [mailboxSlots]atomic.Bool
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}
		if mb.head.CompareAndSwap(head, head+1) {
			slot := head % mailboxSlots
			mb.slots[slot] = msg
			mb.ready[slot].Store(true)
			return true
		}
	}
}

// Send enqueues a message, yielding until it succeeds.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if none is ready.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	if tail == mb.head.Load() {
		return Message{}, false
	}
	slot := tail % mailboxSlots
	if !mb.ready[slot].Load() {
		return Message{}, false
	}
	msg := mb.slots[slot]
	mb.ready[slot].Store(false)
	mb.tail.Store(tail + 1)
	return msg, true
}

// Len returns the number of queued messages.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}
