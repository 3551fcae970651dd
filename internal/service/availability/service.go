package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	"github.com/m04kA/SwagDay-BookingService/pkg/metrics"
)

// Триггеры обновления снапшота (метка в метриках)
const (
	triggerManual       = "manual"
	triggerNotification = "notification"
)

// Cache кэш доступности дат: производное состояние, построенное из
// текущего содержимого таблицы бронирований.
//
// Снапшот - единственные данные, которыми кэш владеет монопольно;
// остальные компоненты его только читают. Подмена снапшота атомарна
// (замена целого объекта под мьютексом), инкрементальных патчей нет:
// payload уведомлений не считается полным или упорядоченным, поэтому
// каждый сигнал приводит к полному перечитыванию таблицы.
type Cache struct {
	repo      BookingRepository
	logger    Logger
	collector *metrics.Metrics // может быть nil, если метрики выключены

	// refreshMu сериализует сами refresh-и: одновременные обновления
	// (уведомление против принудительного refresh при конфликте)
	// выполняются по очереди, побеждает последний завершившийся
	refreshMu sync.Mutex

	mu       sync.RWMutex
	snapshot *domain.AvailabilitySnapshot
	loading  bool
}

// NewCache создает кэш с пустым снапшотом
func NewCache(repo BookingRepository, logger Logger, collector *metrics.Metrics) *Cache {
	return &Cache{
		repo:      repo,
		logger:    logger,
		collector: collector,
		snapshot:  domain.EmptyAvailabilitySnapshot(),
	}
}

// Snapshot возвращает текущий снапшот доступности (никогда не nil)
func (c *Cache) Snapshot() *domain.AvailabilitySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Loading сообщает, выполняется ли сейчас обновление снапшота
func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Refresh принудительно перечитывает все бронирования и подменяет снапшот.
// При ошибке чтения предыдущий снапшот сохраняется, флаг loading
// сбрасывается, ошибка возвращается вызывающему.
func (c *Cache) Refresh(ctx context.Context) error {
	return c.refresh(ctx, triggerManual)
}

// Run подписывает кэш на поток изменений и обновляет снапшот на каждый
// сигнал до отмены контекста. Сигналы, пришедшие во время выполняющегося
// refresh-а, схлопываются в один отложенный (буфер канала событий).
func (c *Cache) Run(ctx context.Context, stream ChangeStream) {
	c.logger.Info("availability: change stream subscription active")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("availability: change stream subscription stopped")
			return
		case _, ok := <-stream.Events():
			if !ok {
				c.logger.Warn("availability: change stream closed")
				return
			}
			// Ошибка уже залогирована и снапшот сохранен; следующее
			// уведомление исправит устаревание само
			_ = c.refresh(ctx, triggerNotification)
		}
	}
}

func (c *Cache) refresh(ctx context.Context, trigger string) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	start := time.Now()

	bookings, err := c.repo.ListAll(ctx)
	if err != nil {
		c.observeRefresh(trigger, "error", start)
		c.logger.Error("availability: refresh (%s) failed, keeping previous snapshot: %v", trigger, err)
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	snapshot := domain.NewAvailabilitySnapshot(bookings)

	c.mu.Lock()
	c.snapshot = snapshot
	c.mu.Unlock()

	c.observeRefresh(trigger, "success", start)
	c.logger.Info("availability: refresh (%s) completed, %d booked dates", trigger, snapshot.Len())
	return nil
}

func (c *Cache) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Cache) observeRefresh(trigger, status string, start time.Time) {
	if c.collector == nil {
		return
	}
	c.collector.AvailabilityRefreshesTotal.WithLabelValues(trigger, status).Inc()
	c.collector.AvailabilityRefreshDuration.Observe(time.Since(start).Seconds())
	if status == "success" {
		c.collector.AvailabilityBookedDates.Set(float64(c.Snapshot().Len()))
	}
}
