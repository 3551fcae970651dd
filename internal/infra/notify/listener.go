// Package notify реализует подписку на поток изменений таблицы
// бронирований через PostgreSQL LISTEN/NOTIFY.
package notify

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

var (
	// ErrListen возвращается, когда не удалось подписаться на канал
	ErrListen = errors.New("notify.listener: failed to listen on channel")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Listener подписка на канал уведомлений об изменениях таблицы.
// Payload уведомления не несет смысловой нагрузки: триггер шлет только
// TG_OP, и подписчик трактует любое событие как "что-то изменилось".
// Разрыв соединения (nil-событие от pq) трактуется так же: за время
// разрыва уведомления могли потеряться.
type Listener struct {
	pq      *pq.Listener
	channel string
	events  chan struct{}
	done    chan struct{}
	logger  Logger
}

// New создает подписку на указанный канал.
// minReconnect/maxReconnect управляют переподключением pq.Listener
// при обрывах соединения.
func New(dsn, channel string, minReconnect, maxReconnect time.Duration, logger Logger) (*Listener, error) {
	l := &Listener{
		channel: channel,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}

	l.pq = pq.NewListener(dsn, minReconnect, maxReconnect, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("notify: listener event %d: %v", event, err)
		}
	})

	if err := l.pq.Listen(channel); err != nil {
		l.pq.Close()
		return nil, fmt.Errorf("%w %q: %v", ErrListen, channel, err)
	}

	go l.run()

	logger.Info("notify: listening on channel %q", channel)
	return l, nil
}

// Events возвращает канал сигналов "таблица изменилась".
// Канал буферизован на один элемент: идущие подряд уведомления
// схлопываются, подписчику достаточно одного сигнала.
func (l *Listener) Events() <-chan struct{} {
	return l.events
}

// Close отписывается от канала и останавливает доставку событий
func (l *Listener) Close() error {
	close(l.done)
	return l.pq.Close()
}

func (l *Listener) run() {
	for {
		select {
		case n, ok := <-l.pq.Notify:
			if !ok {
				return
			}
			if n != nil {
				l.logger.Info("notify: change event on %q (op=%s)", l.channel, n.Extra)
			} else {
				// nil приходит после переподключения - уведомления могли потеряться
				l.logger.Warn("notify: connection re-established, forcing refresh signal")
			}
			l.signal()
		case <-time.After(90 * time.Second):
			// Периодический ping держит соединение живым при молчании канала
			go func() {
				if err := l.pq.Ping(); err != nil {
					l.logger.Warn("notify: ping failed: %v", err)
				}
			}()
		case <-l.done:
			return
		}
	}
}

// signal неблокирующе помещает событие в канал; если сигнал уже ждет
// обработки, новый не добавляется
func (l *Listener) signal() {
	select {
	case l.events <- struct{}{}:
	default:
	}
}
