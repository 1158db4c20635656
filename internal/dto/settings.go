package dto

import "github.com/SscSPs/mtrack/internal/core/domain"

// UpdateSettingsRequest defines the preferences that may be changed. Omitted fields are kept.
type UpdateSettingsRequest struct {
	Currency       *string       `json:"currency"`
	CurrencyLocale *string       `json:"currencyLocale"`
	Theme          *domain.Theme `json:"theme" binding:"omitempty,oneof=dark light"`
	IsFirstRun     *bool         `json:"isFirstRun"`
}

// ToUpdate converts the request into a domain update.
func (r UpdateSettingsRequest) ToUpdate() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		Currency:       r.Currency,
		CurrencyLocale: r.CurrencyLocale,
		Theme:          r.Theme,
		IsFirstRun:     r.IsFirstRun,
	}
}

// DataTransferRequest names the directory to export to or import from.
type DataTransferRequest struct {
	Path string `json:"path" binding:"required"`
}

// DataTransferResponse lists the files that were copied.
type DataTransferResponse struct {
	Files []string `json:"files"`
}
