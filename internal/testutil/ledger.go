package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	blockRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/block"
	bookingRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
)

// MemoryLedger хранилище броней и блокировок в памяти
// Реализует методы репозиториев booking и block, которые нужны usecase-ам
type MemoryLedger struct {
	mu       sync.Mutex
	bookings map[string]*domain.Booking
	blocks   map[string]*domain.InventoryBlock

	// LockedRooms комнаты, для которых вызывался LockRoom
	LockedRooms []string
	// Err если задан, возвращается всеми методами
	Err error
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		bookings: make(map[string]*domain.Booking),
		blocks:   make(map[string]*domain.InventoryBlock),
	}
}

// Seed добавляет брони без проверок
func (m *MemoryLedger) Seed(bookings ...*domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range bookings {
		cp := *b
		m.bookings[b.ID] = &cp
	}
}

// SeedBlocks добавляет блокировки без проверок
func (m *MemoryLedger) SeedBlocks(blocks ...*domain.InventoryBlock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range blocks {
		cp := *b
		m.blocks[b.ID] = &cp
	}
}

// Booking возвращает копию брони или nil
func (m *MemoryLedger) Booking(id string) *domain.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil
	}
	cp := *b
	return &cp
}

// BookingCount количество броней в хранилище
func (m *MemoryLedger) BookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

// BlockCount количество блокировок в хранилище
func (m *MemoryLedger) BlockCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blocks)
}

func (m *MemoryLedger) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if _, exists := m.bookings[booking.ID]; exists {
		return nil, bookingRepo.ErrDuplicateBooking
	}
	if booking.HasUnit() && booking.OccupiesInventory() {
		for _, other := range m.bookings {
			if other.RoomID == booking.RoomID && other.HasUnit() && *other.UnitID == *booking.UnitID &&
				other.OccupiesInventory() && other.Range().Overlaps(booking.Range()) {
				return nil, bookingRepo.ErrOverlapConflict
			}
		}
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	cp := *booking
	m.bookings[booking.ID] = &cp
	return booking, nil
}

func (m *MemoryLedger) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *MemoryLedger) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if filter.Location != nil && b.Location != *filter.Location {
			continue
		}
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if filter.Status != nil {
			if b.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeCancelled && !b.OccupiesInventory() {
			continue
		}
		if filter.From != nil && !b.CheckOut.After(domain.DateOf(*filter.From)) {
			continue
		}
		if filter.To != nil && !b.CheckIn.Before(domain.DateOf(*filter.To)) {
			continue
		}
		cp := *b
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CheckIn.Before(result[j].CheckIn) })
	return result, nil
}

func (m *MemoryLedger) GetActiveByRoomAndRange(_ context.Context, roomID string, rng domain.DateRange, excludeID string) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.RoomID != roomID || b.ID == excludeID || !b.OccupiesInventory() {
			continue
		}
		if b.Range().Overlaps(rng) {
			cp := *b
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (m *MemoryLedger) LockRoom(_ context.Context, roomID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.LockedRooms = append(m.LockedRooms, roomID)
	return nil
}

func (m *MemoryLedger) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	return m.mutate(id, func(b *domain.Booking) { b.Status = status })
}

func (m *MemoryLedger) UpdateStay(_ context.Context, id string, checkOut time.Time, totalPrice float64) error {
	return m.mutate(id, func(b *domain.Booking) {
		b.CheckOut = domain.DateOf(checkOut)
		b.TotalPrice = totalPrice
	})
}

func (m *MemoryLedger) Cancel(_ context.Context, id string, reason string) error {
	return m.mutate(id, func(b *domain.Booking) {
		now := time.Now()
		b.Status = domain.StatusCancelled
		b.CancellationReason = &reason
		b.CancelledAt = &now
	})
}

func (m *MemoryLedger) MarkNoShows(_ context.Context, before time.Time) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	updated := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		candidate := false
		for _, s := range domain.NoShowCandidateStatuses {
			if b.Status == s {
				candidate = true
			}
		}
		if candidate && b.CheckIn.Before(domain.DateOf(before)) {
			b.Status = domain.StatusNoShow
			updated = append(updated, &domain.Booking{ID: b.ID, Location: b.Location, RoomID: b.RoomID, Status: b.Status})
		}
	}
	return updated, nil
}

func (m *MemoryLedger) mutate(id string, fn func(b *domain.Booking)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	fn(b)
	b.UpdatedAt = time.Now()
	return nil
}

// MemoryBlocks репозиторий блокировок поверх того же MemoryLedger
type MemoryBlocks struct {
	*MemoryLedger
}

// Blocks возвращает представление хранилища как репозитория блокировок
func (m *MemoryLedger) Blocks() *MemoryBlocks {
	return &MemoryBlocks{MemoryLedger: m}
}

func (m *MemoryBlocks) Create(_ context.Context, block *domain.InventoryBlock) (*domain.InventoryBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if !block.IsWholeRoom() {
		for _, other := range m.blocks {
			if other.RoomID == block.RoomID && !other.IsWholeRoom() && *other.UnitID == *block.UnitID &&
				other.Range().Overlaps(block.Range()) {
				return nil, blockRepo.ErrOverlapConflict
			}
		}
	}
	block.CreatedAt = time.Now()
	cp := *block
	m.blocks[block.ID] = &cp
	return block, nil
}

func (m *MemoryBlocks) GetByID(_ context.Context, id string) (*domain.InventoryBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	b, ok := m.blocks[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *MemoryBlocks) GetByRoomAndRange(ctx context.Context, roomID string, rng domain.DateRange) ([]*domain.InventoryBlock, error) {
	return m.List(ctx, domain.BlocksFilter{RoomID: &roomID, From: &rng.Start, To: &rng.End})
}

func (m *MemoryBlocks) List(_ context.Context, filter domain.BlocksFilter) ([]*domain.InventoryBlock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]*domain.InventoryBlock, 0)
	for _, b := range m.blocks {
		if filter.Location != nil && b.Location != *filter.Location {
			continue
		}
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if filter.From != nil && !b.EndDate.After(domain.DateOf(*filter.From)) {
			continue
		}
		if filter.To != nil && !b.StartDate.Before(domain.DateOf(*filter.To)) {
			continue
		}
		cp := *b
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

func (m *MemoryBlocks) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.blocks[id]; !ok {
		return blockRepo.ErrBlockNotFound
	}
	delete(m.blocks, id)
	return nil
}

// TxManager выполняет функцию без транзакции
type TxManager struct {
	mu    sync.Mutex
	calls int
}

func (t *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return fn(ctx)
}

func (t *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

func (t *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.run(ctx, fn)
}

// Calls количество выполненных транзакций
func (t *TxManager) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}

// Clock фиксированное время
type Clock struct {
	T time.Time
}

func (c Clock) Now() time.Time {
	return c.T
}
