package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	User    string
	Attempt int
}

func TestQueue_PushPopOrder(t *testing.T) {
	q := New[event]()
	require.True(t, q.Empty())

	q.Push(event{User: "ana", Attempt: 1})
	q.Push(event{User: "ana", Attempt: 2}, event{User: "bob", Attempt: 1})
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, event{User: "ana", Attempt: 1}, q.Pop())
	assert.Equal(t, event{User: "ana", Attempt: 2}, q.Pop())
	assert.Equal(t, event{User: "bob", Attempt: 1}, q.Pop())
	assert.True(t, q.Empty())
}

func TestQueue_PopEmptyReturnsZero(t *testing.T) {
	q := New[event]()
	assert.Equal(t, event{}, q.Pop())
}

func TestQueue_Clear(t *testing.T) {
	q := New[event]()
	q.Push(event{User: "ana"}, event{User: "bob"})
	q.Clear()
	assert.True(t, q.Empty())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_GetAndEmpty(t *testing.T) {
	q := New[event]()
	q.Push(event{User: "ana", Attempt: 1}, event{User: "bob", Attempt: 1})

	batch := q.GetAndEmpty()
	require.Len(t, batch, 2)
	assert.Equal(t, "ana", batch[0].User)
	assert.Equal(t, "bob", batch[1].User)
	assert.True(t, q.Empty())

	assert.Empty(t, q.GetAndEmpty())
}

func TestQueue_PopThenGetAndEmptySkipsConsumed(t *testing.T) {
	q := New[event]()
	q.Push(event{Attempt: 1}, event{Attempt: 2}, event{Attempt: 3})
	q.Pop()

	batch := q.GetAndEmpty()
	require.Len(t, batch, 2)
	assert.Equal(t, 2, batch[0].Attempt)
	assert.Equal(t, 3, batch[1].Attempt)
}

func TestQueue_ConcurrentPush(t *testing.T) {
	q := New[event]()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Push(event{Attempt: j})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1000, q.Len())
}
