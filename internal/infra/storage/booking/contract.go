package booking

import "github.com/m04kA/SwagDay-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает с *sql.DB и с оберткой метрик
type DBExecutor = dbmetrics.DBExecutor
