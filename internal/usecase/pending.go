package usecase

import (
	"sync"

	"github.com/google/uuid"
)

// PendingQueue is the process-local bookkeeping list of recently created
// order ids. Best-effort only: it is not durable and is never replayed
// across restarts. Appends are safe for concurrent callers.
type PendingQueue struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func NewPendingQueue() *PendingQueue {
	return &PendingQueue{}
}

func (q *PendingQueue) Append(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ids = append(q.ids, id)
}

// Snapshot returns the ids in insertion order.
func (q *PendingQueue) Snapshot() []uuid.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]uuid.UUID, len(q.ids))
	copy(out, q.ids)
	return out
}

func (q *PendingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ids)
}
