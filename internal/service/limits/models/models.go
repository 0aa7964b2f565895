package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// Request модели

// UpdateLimitsRequest запрос на изменение ограничений бронирования
// nil-поля не меняются: админка может переключить один флаг, не трогая списки
type UpdateLimitsRequest struct {
	OnlineEnabled *bool     `json:"onlineEnabled,omitempty"`
	DisabledHours *[]string `json:"disabledHours,omitempty"`
	DisabledDates *[]string `json:"disabledDates,omitempty"`
}

// Response модели

// LimitsResponse текущая конфигурация ограничений
type LimitsResponse struct {
	OnlineEnabled bool     `json:"onlineEnabled"`
	DisabledHours []string `json:"disabledHours"`
	DisabledDates []string `json:"disabledDates"`
}

// UpdateLimitsResponse результат изменения ограничений
// Rejected-списки сообщают админке, какие введённые значения были отброшены
type UpdateLimitsResponse struct {
	LimitsResponse
	RejectedHours []string `json:"rejectedHours"`
	RejectedDates []string `json:"rejectedDates"`
}

// FromDomainConfig конвертирует domain конфигурацию в response
func FromDomainConfig(config *domain.LimitConfig) *LimitsResponse {
	return &LimitsResponse{
		OnlineEnabled: config.OnlineEnabled,
		DisabledHours: config.DisabledHours,
		DisabledDates: config.DisabledDates,
	}
}
