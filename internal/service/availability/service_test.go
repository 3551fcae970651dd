package availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
)

type fakeRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	err      error
	calls    int
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeRepo) set(bookings []*domain.Booking, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = bookings
	f.err = err
}

type fakeStream struct {
	ch chan struct{}
}

func (f *fakeStream) Events() <-chan struct{} { return f.ch }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(t *testing.T, date, company string) *domain.Booking {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	return &domain.Booking{BookingDate: d, CompanyName: company}
}

func TestCache_Refresh_ProjectsStore(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		booking(t, "2025-10-20", "Acme Corp"),
		booking(t, "2025-11-03", "Globex"),
	}}
	cache := NewCache(repo, nopLogger{}, nil)

	require.NoError(t, cache.Refresh(context.Background()))

	snap := cache.Snapshot()
	assert.Equal(t, 2, snap.Len())

	d, _ := domain.ParseDate("2025-10-20")
	assert.True(t, snap.IsBooked(d))
	owner, ok := snap.Owner(d)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", owner)

	free, _ := domain.ParseDate("2025-10-21")
	assert.False(t, snap.IsBooked(free))
	assert.False(t, cache.Loading())
}

// Два refresh-а подряд без изменений в хранилище дают одинаковый снапшот
func TestCache_Refresh_Idempotent(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{booking(t, "2025-10-20", "Acme Corp")}}
	cache := NewCache(repo, nopLogger{}, nil)

	require.NoError(t, cache.Refresh(context.Background()))
	first := cache.Snapshot()

	require.NoError(t, cache.Refresh(context.Background()))
	second := cache.Snapshot()

	assert.Equal(t, first.Len(), second.Len())
	for _, d := range first.BookedDates() {
		assert.True(t, second.IsBooked(d))
		firstOwner, _ := first.Owner(d)
		secondOwner, _ := second.Owner(d)
		assert.Equal(t, firstOwner, secondOwner)
	}
}

// Ошибка чтения не стирает предыдущий снапшот и сбрасывает loading
func TestCache_Refresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{booking(t, "2025-10-20", "Acme Corp")}}
	cache := NewCache(repo, nopLogger{}, nil)
	require.NoError(t, cache.Refresh(context.Background()))

	repo.set(nil, errors.New("connection refused"))

	err := cache.Refresh(context.Background())
	require.ErrorIs(t, err, ErrRefreshFailed)

	d, _ := domain.ParseDate("2025-10-20")
	assert.True(t, cache.Snapshot().IsBooked(d), "previous snapshot survives a failed refresh")
	assert.False(t, cache.Loading(), "loading flag is cleared after failure")
}

func TestCache_StartsEmpty(t *testing.T) {
	cache := NewCache(&fakeRepo{}, nopLogger{}, nil)

	snap := cache.Snapshot()
	require.NotNil(t, snap)
	assert.Zero(t, snap.Len())
	assert.False(t, cache.Loading())
}

// Каждый сигнал потока изменений приводит к перечитыванию хранилища
func TestCache_Run_RefreshesOnNotification(t *testing.T) {
	repo := &fakeRepo{}
	cache := NewCache(repo, nopLogger{}, nil)
	stream := &fakeStream{ch: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		cache.Run(ctx, stream)
		close(done)
	}()

	repo.set([]*domain.Booking{booking(t, "2025-10-20", "Acme Corp")}, nil)
	stream.ch <- struct{}{}

	require.Eventually(t, func() bool {
		d, _ := domain.ParseDate("2025-10-20")
		return cache.Snapshot().IsBooked(d)
	}, time.Second, 5*time.Millisecond, "notification triggers a full refresh")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}

// Ошибка refresh-а по уведомлению не останавливает подписку
func TestCache_Run_SurvivesRefreshFailure(t *testing.T) {
	repo := &fakeRepo{err: errors.New("boom")}
	cache := NewCache(repo, nopLogger{}, nil)
	stream := &fakeStream{ch: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cache.Run(ctx, stream)

	stream.ch <- struct{}{}
	require.Eventually(t, func() bool { return repo.callCount() >= 1 }, time.Second, 5*time.Millisecond)

	repo.set([]*domain.Booking{booking(t, "2025-10-21", "Globex")}, nil)
	stream.ch <- struct{}{}

	require.Eventually(t, func() bool {
		d, _ := domain.ParseDate("2025-10-21")
		return cache.Snapshot().IsBooked(d)
	}, time.Second, 5*time.Millisecond, "subscription keeps working after a failed refresh")
}
