package limitconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RestaurantService/pkg/psqlbuilder"
)

// configRowID конфигурация ограничений - singleton: всегда одна строка
const configRowID = 1

// Repository репозиторий конфигурации ограничений бронирования
// Хранит единственный JSON документ вида
// {"online_enabled": bool, "disabled_hours": [..], "disabled_dates": [..]}
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Read читает сохранённую конфигурацию
// Возвращает ErrConfigNotFound, если конфигурация ещё не сохранялась,
// и ErrCorruptConfig, если документ не парсится - оба случая вызывающая
// сторона трактует как "использовать значения по умолчанию"
func (r *Repository) Read(ctx context.Context) (*domain.LimitConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("payload").
		From("reservation_limits").
		Where(squirrel.Eq{"id": configRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Read - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Read - scan payload: %v", ErrScanRow, err)
	}

	var config domain.LimitConfig
	if err := json.Unmarshal(payload, &config); err != nil {
		return nil, fmt.Errorf("%w: Read - unmarshal payload: %v", ErrCorruptConfig, err)
	}

	if config.DisabledHours == nil {
		config.DisabledHours = []string{}
	}
	if config.DisabledDates == nil {
		config.DisabledDates = []string{}
	}

	return &config, nil
}

// Write сохраняет конфигурацию целиком (upsert единственной строки)
func (r *Repository) Write(ctx context.Context, config *domain.LimitConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: Write - marshal payload: %v", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Insert("reservation_limits").
		Columns("id", "payload").
		Values(configRowID, payload).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Write - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Write - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
