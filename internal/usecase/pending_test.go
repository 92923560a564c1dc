//go:build unit

package usecase_test

import (
	"sync"
	"testing"

	"orderflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPendingQueue(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		q := usecase.NewPendingQueue()
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		for _, id := range ids {
			q.Append(id)
		}
		assert.Equal(t, ids, q.Snapshot())
		assert.Equal(t, 3, q.Len())
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		q := usecase.NewPendingQueue()
		q.Append(uuid.New())
		snap := q.Snapshot()
		snap[0] = uuid.Nil
		assert.NotEqual(t, uuid.Nil, q.Snapshot()[0])
	})

	t.Run("loses no entries under concurrent appends", func(t *testing.T) {
		q := usecase.NewPendingQueue()
		const workers = 16
		const perWorker = 100

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				for j := 0; j < perWorker; j++ {
					q.Append(uuid.New())
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, workers*perWorker, q.Len())
	})
}
