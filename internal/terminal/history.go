package terminal

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const welcomeInput = "welcome"

// History is the session log. It only grows, except through Clear, and pending
// placeholders which are resolved in place by id.
type History struct {
	mu      sync.Mutex
	records []Record
	cursor  int
	welcome Result
	now     func() time.Time
}

// NewHistory returns a log seeded with a single welcome record.
func NewHistory(welcome Result) *History {
	h := &History{welcome: welcome, now: time.Now}
	h.Clear()
	return h
}

// Append adds a record and resets the recall cursor to the live line.
func (h *History) Append(input string, result Result) Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.newRecord(input, result)
	h.records = append(h.records, rec)
	h.cursor = -1
	return rec
}

// ReplaceLast swaps the result of the newest record. It is a no-op on an empty log.
func (h *History) ReplaceLast(result Result) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.records) == 0 {
		return false
	}
	h.records[len(h.records)-1].Result = result
	return true
}

// Replace swaps the result of the record with the given id. It returns false
// when the record no longer exists.
func (h *History) Replace(id string, result Result) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i := range h.records {
		if h.records[i].ID == id {
			h.records[i].Result = result
			return true
		}
	}
	return false
}

// Clear drops every record and re-seeds the welcome record.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = []Record{h.newRecord(welcomeInput, h.welcome)}
	h.cursor = -1
}

// Previous steps one record further into the past and returns its input.
// ok is false when the cursor is already at the oldest record.
func (h *History) Previous() (input string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.records)-1 {
		return "", false
	}
	h.cursor++
	return h.records[len(h.records)-1-h.cursor].Input, true
}

// Next steps one record towards the present. Leaving the newest record returns
// the empty live line; ok is false when already on the live line.
func (h *History) Next() (input string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch {
	case h.cursor > 0:
		h.cursor--
		return h.records[len(h.records)-1-h.cursor].Input, true
	case h.cursor == 0:
		h.cursor = -1
		return "", true
	}
	return "", false
}

// ResetCursor moves recall back to the live line.
func (h *History) ResetCursor() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = -1
}

func (h *History) Cursor() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Records returns a snapshot, oldest first.
func (h *History) Records() []Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.records)
}

func (h *History) newRecord(input string, result Result) Record {
	return Record{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		CreatedAt: h.now(),
	}
}
