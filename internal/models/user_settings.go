package models

import (
	"errors"
	"strings"
	"time"
)

const DefaultCurrency = "USD"

var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Currency describes a currency the dashboard can display amounts in.
type Currency struct {
	Code   string `json:"value"`
	Label  string `json:"label"`
	Locale string `json:"locale"`
}

// Currencies lists the supported display currencies.
var Currencies = []Currency{
	{Code: "USD", Label: "$ Dollar", Locale: "en-US"},
	{Code: "EUR", Label: "€ Euro", Locale: "de-DE"},
	{Code: "JPY", Label: "¥ Yen", Locale: "ja-JP"},
	{Code: "GBP", Label: "£ Pound", Locale: "en-GB"},
}

// LookupCurrency finds a supported currency by its ISO 4217 code (case-insensitive)
func LookupCurrency(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// IsSupportedCurrency reports whether code is one of Currencies
func IsSupportedCurrency(code string) bool {
	_, ok := LookupCurrency(code)
	return ok
}

// UserSettings holds per-user preferences.
type UserSettings struct {
	UserID    string    `gorm:"type:varchar(255);primaryKey" json:"userId"`
	Currency  string    `gorm:"type:varchar(3);not null" json:"currency"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// Validate validates the settings fields
func (s *UserSettings) Validate() error {
	if s.UserID == "" {
		return ErrMissingUserID
	}
	if !IsSupportedCurrency(s.Currency) {
		return ErrUnsupportedCurrency
	}
	return nil
}
