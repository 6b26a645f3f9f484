package notify

import "sync"

// Delivery is one notification captured by the memory notifier
type Delivery struct {
	Kind    Kind
	Email   string
	Payload Payload
}

// MemoryNotifier records notifications in memory. Used in tests and when no
// SendGrid key is configured.
type MemoryNotifier struct {
	mu   sync.Mutex
	sent []Delivery
}

// NewMemoryNotifier creates an in-memory notifier
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

// Notify records the notification
func (n *MemoryNotifier) Notify(kind Kind, email string, payload Payload) {
	if email == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Delivery{Kind: kind, Email: email, Payload: payload})
}

// Sent returns a copy of everything recorded so far
func (n *MemoryNotifier) Sent() []Delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Delivery, len(n.sent))
	copy(out, n.sent)
	return out
}
