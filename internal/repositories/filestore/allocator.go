package filestore

import "github.com/SscSPs/bookkeeping_app/internal/core/domain"

// IDAllocator hands out IDs shared by sales, purchases and users.
// It is not safe for concurrent use; the Store serialises access.
type IDAllocator struct {
	next int64
}

// NewIDAllocator returns an allocator whose first ID is maxExisting+1.
func NewIDAllocator(maxExisting int64) *IDAllocator {
	if maxExisting < 0 {
		maxExisting = 0
	}
	return &IDAllocator{next: maxExisting + 1}
}

// Next returns the current counter and advances it. IDs are never handed out twice.
func (a *IDAllocator) Next() int64 {
	id := a.next
	a.next++
	return id
}

// Peek returns the ID the next call to Next will return.
func (a *IDAllocator) Peek() int64 {
	return a.next
}

// MaxID returns the largest ID across the three collections, or 0 when all are empty.
func MaxID(sales []domain.Sale, purchases []domain.Purchase, users []domain.User) int64 {
	var max int64
	for _, s := range sales {
		if s.ID > max {
			max = s.ID
		}
	}
	for _, p := range purchases {
		if p.ID > max {
			max = p.ID
		}
	}
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max
}
