package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SwagDay-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SwagDay-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SwagDay-BookingService/pkg/metrics"
)

// UseCase use case создания бронирования.
//
// Координирует выбор даты, запись в хранилище и сходимость кэша
// доступности. Гонка двух клиентов за одну дату разрешается unique
// constraint-ом хранилища, а не предварительной проверкой: проверка
// по снапшоту всегда может оказаться устаревшей.
type UseCase struct {
	bookingRepo BookingRepository
	cache       AvailabilityCache
	selection   SelectionState
	collector   *metrics.Metrics // может быть nil, если метрики выключены
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	selection SelectionState,
	collector *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		cache:       cache,
		selection:   selection,
		collector:   collector,
		logger:      logger,
	}
}

// Execute выполняет попытку бронирования выбранной даты.
//
// Исходы:
//   - успех: выбор сброшен, кэш обновлен (best-effort; поток уведомлений
//     в любом случае доставит изменение всем наблюдателям);
//   - конфликт дат (ErrDateAlreadyBooked): кэш принудительно обновлен
//     синхронно, выбор сброшен - пользователь обязан выбрать другую дату;
//   - прочие ошибки (ErrInternal): состояние не трогаем, выбор и данные
//     формы переживают ошибку для повторной попытки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	selected := uc.selection.Selected()
	if selected == nil {
		uc.logger.Warn("CreateBooking: rejected, no date selected")
		uc.observeValidationError()
		return nil, ErrNoDateSelected
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observeValidationError()
		return nil, err
	}

	uc.logger.Info("CreateBooking: date=%s, company=%q", selected, req.CompanyName)

	booking := &domain.Booking{
		BookingDate: *selected,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Description: req.Description,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateDate) {
			return nil, uc.handleDuplicateDate(ctx, *selected)
		}

		uc.logger.Error("CreateBooking: failed to create booking for %s: %v", selected, err)
		if uc.collector != nil {
			uc.collector.BookingFailuresTotal.Inc()
		}
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// Бронирование создано - выбор больше не актуален
	uc.selection.ClearSelection()

	// Поток уведомлений обновит кэш и так, но явный refresh убирает окно,
	// в котором собственная запись еще не видна в календаре
	if rerr := uc.cache.Refresh(ctx); rerr != nil {
		uc.logger.Warn("CreateBooking: post-create refresh failed: %v", rerr)
	}

	if uc.collector != nil {
		uc.collector.BookingsCreatedTotal.Inc()
	}
	uc.logger.Info("CreateBooking: successfully created booking id=%d for %s", created.ID, created.BookingDate)

	return &Response{
		ID:          created.ID,
		BookingDate: created.BookingDate,
		CompanyName: created.CompanyName,
		Email:       created.Email,
		Description: created.Description,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// handleDuplicateDate обрабатывает конфликт дат: собственный insert
// отклонен, уведомления по нему не будет, поэтому refresh выполняется
// синхронно до возврата результата - календарь обязан показать дату
// занятой сразу, а не после следующего чужого события
func (uc *UseCase) handleDuplicateDate(ctx context.Context, date domain.Date) error {
	uc.logger.Warn("CreateBooking: date %s already booked by another client", date)

	if err := uc.cache.Refresh(ctx); err != nil {
		// Снапшот остался прежним, но исход для пользователя тот же:
		// дата занята, нужно выбрать другую
		uc.logger.Error("CreateBooking: forced refresh after conflict failed: %v", err)
	}

	uc.selection.ClearSelection()

	if uc.collector != nil {
		uc.collector.BookingConflictsTotal.Inc()
	}
	return ErrDateAlreadyBooked
}

func (uc *UseCase) observeValidationError() {
	if uc.collector != nil {
		uc.collector.BookingValidationErrors.Inc()
	}
}
