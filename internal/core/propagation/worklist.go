package propagation

import "github.com/agenthands/polarity/internal/core/model"

// worklist is a FIFO queue of words with constant time membership checks.
// Membership is by word identity and ends when the word is popped.
type worklist struct {
	items  []*model.Word
	head   int
	queued map[string]struct{}
}

func newWorklist(capacity int) *worklist {
	return &worklist{
		items:  make([]*model.Word, 0, capacity),
		queued: make(map[string]struct{}, capacity),
	}
}

// push appends w unless it is already queued.
func (q *worklist) push(w *model.Word) bool {
	if q.contains(w) {
		return false
	}
	q.items = append(q.items, w)
	q.queued[w.Text()] = struct{}{}
	return true
}

// pop removes and returns the oldest word. It must not be called on an empty
// worklist.
func (q *worklist) pop() *model.Word {
	w := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	delete(q.queued, w.Text())
	return w
}

func (q *worklist) contains(w *model.Word) bool {
	_, ok := q.queued[w.Text()]
	return ok
}

func (q *worklist) len() int { return len(q.items) - q.head }

type visitSet map[string]struct{}

func (v visitSet) add(w *model.Word)           { v[w.Text()] = struct{}{} }
func (v visitSet) contains(w *model.Word) bool { _, ok := v[w.Text()]; return ok }
