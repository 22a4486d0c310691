package models

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepo is the non-durable fallback store used when MongoDB cannot be
// reached at startup. Semantics match the Mongo adapter except that all data
// is lost on process restart. A mutex guards the backing slice so concurrent
// requests cannot interleave mid-operation.
type MemoryRepo struct {
	mu       sync.Mutex
	bookings []*Booking
}

func MemoryNewRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking.ID = uuid.NewString()
	stored := *booking
	m.bookings = append(m.bookings, &stored)

	return booking, nil
}

func (m *MemoryRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copied := *b
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (m *MemoryRepo) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) UpdateBookingStatus(ctx context.Context, id, status string) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = status
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) DeleteBooking(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryRepo) BookingStats(ctx context.Context) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &Stats{Total: int64(len(m.bookings))}
	for _, b := range m.bookings {
		switch b.Status {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCompleted:
			stats.Completed++
		case StatusCancelled:
			stats.Cancelled++
		}
	}

	return stats, nil
}
