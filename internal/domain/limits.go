package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// LimitConfig конфигурация ограничений онлайн-бронирования
// Единственный персистентный документ, управляется только администратором
type LimitConfig struct {
	OnlineEnabled bool     `json:"online_enabled"`
	DisabledHours []string `json:"disabled_hours"`
	DisabledDates []string `json:"disabled_dates"`
}

// DefaultLimitConfig возвращает конфигурацию по умолчанию:
// онлайн-бронирования включены, черных списков нет
func DefaultLimitConfig() *LimitConfig {
	return &LimitConfig{
		OnlineEnabled: true,
		DisabledHours: []string{},
		DisabledDates: []string{},
	}
}

// IsDateTimeAllowed проверяет, разрешён ли слот (date, t)
// false, если онлайн-бронирования выключены, либо дата в чёрном списке,
// либо время в чёрном списке. Порядок проверок на результат не влияет.
func (c *LimitConfig) IsDateTimeAllowed(date time.Time, t types.TimeString) bool {
	if !c.OnlineEnabled {
		return false
	}

	dateStr := date.Format(DateFormat)
	for _, d := range c.DisabledDates {
		if d == dateStr {
			return false
		}
	}

	timeStr := t.String()
	for _, h := range c.DisabledHours {
		if h == timeStr {
			return false
		}
	}

	return true
}

// NormalizeHours нормализует список запрещённых часов: trim, приведение к "HH:MM",
// отбрасывание значений вне сетки слотов, дедупликация с сохранением порядка.
// Возвращает валидные значения и список отклонённых входов.
func NormalizeHours(hours []string) (valid []string, rejected []string) {
	valid = make([]string, 0, len(hours))
	rejected = make([]string, 0)
	seen := make(map[string]struct{})

	for _, raw := range hours {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}

		ts, err := types.NewTimeStringFromString(s)
		if err != nil || !IsSlotTime(ts) {
			rejected = append(rejected, raw)
			continue
		}

		normalized := ts.String()
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		valid = append(valid, normalized)
	}

	return valid, rejected
}

// NormalizeDates нормализует список запрещённых дат: trim, приведение к "YYYY-MM-DD",
// отбрасывание непарсящихся значений, дедупликация с сохранением порядка.
// Возвращает валидные значения и список отклонённых входов.
func NormalizeDates(dates []string) (valid []string, rejected []string) {
	valid = make([]string, 0, len(dates))
	rejected = make([]string, 0)
	seen := make(map[string]struct{})

	for _, raw := range dates {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}

		parsed, err := parseDate(s)
		if err != nil {
			rejected = append(rejected, raw)
			continue
		}

		normalized := parsed.Format(DateFormat)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		valid = append(valid, normalized)
	}

	return valid, rejected
}

// parseDate принимает "YYYY-MM-DD" и полные timestamp-формы (RFC3339)
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
