package dto

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"finance-dashboard/internal/models"
)

const DateLayout = "2006-01-02"

// jsDateLayout matches JavaScript's Date.prototype.toString without the
// trailing zone name.
const jsDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

var (
	ErrInvalidDate = errors.New("invalid date")

	zoneNameSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
)

// ParseDate accepts YYYY-MM-DD, RFC 3339 and the JavaScript Date string
// form, and returns the UTC calendar date at midnight.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return models.NormalizeDate(t), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return models.NormalizeDate(t), nil
	}

	js := zoneNameSuffix.ReplaceAllString(raw, "")
	// an unescaped '+' in a query string arrives as a space
	js = strings.Replace(js, "GMT ", "GMT+", 1)
	if t, err := time.Parse(jsDateLayout, js); err == nil {
		return models.NormalizeDate(t), nil
	}

	return time.Time{}, ErrInvalidDate
}

// Date is a calendar date bound from JSON bodies and query parameters.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: models.NormalizeDate(t)}
}

// UnmarshalParam implements echo.BindUnmarshaler
func (d *Date) UnmarshalParam(param string) error {
	t, err := ParseDate(param)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDate
	}
	return d.UnmarshalParam(raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}
