package domain

// Theme is the UI colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Settings is the flat preferences document.
type Settings struct {
	Currency       string `json:"currency"`
	CurrencyLocale string `json:"currencyLocale"`
	Theme          Theme  `json:"theme"`
	IsFirstRun     bool   `json:"isFirstRun"`
}

// DefaultSettings returns the preferences used before the user changes anything.
func DefaultSettings() Settings {
	return Settings{
		Currency:       "USD",
		CurrencyLocale: "en-US",
		Theme:          ThemeDark,
		IsFirstRun:     true,
	}
}

// SettingsUpdate carries the preferences to change.
type SettingsUpdate struct {
	Currency       *string `json:"currency" validate:"omitempty,min=1,max=10"`
	CurrencyLocale *string `json:"currencyLocale" validate:"omitempty,min=2,max=35"`
	Theme          *Theme  `json:"theme" validate:"omitempty,oneof=dark light"`
	IsFirstRun     *bool   `json:"isFirstRun"`
}

// ApplyTo merges u over s.
func (u SettingsUpdate) ApplyTo(s *Settings) {
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
	if u.CurrencyLocale != nil {
		s.CurrencyLocale = *u.CurrencyLocale
	}
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.IsFirstRun != nil {
		s.IsFirstRun = *u.IsFirstRun
	}
}
