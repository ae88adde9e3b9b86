package helper

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// Date is a calendar date column that travels as "YYYY-MM-DD" in JSON.
type Date datatypes.Date

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Today returns the current UTC date.
func Today() Date { return NewDate(time.Now().UTC()) }

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) String() string { return time.Time(d).Format(DateLayout) }

func (Date) GormDataType() string { return "date" }

func (d Date) Value() (driver.Value, error) { return datatypes.Date(d).Value() }

func (d *Date) Scan(v interface{}) error {
	if s, ok := v.(string); ok {
		parsed, err := ParseDate(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return (*datatypes.Date)(d).Scan(v)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("fecha inválida %s", string(b))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDate accepts "YYYY-MM-DD" or a full RFC3339 timestamp.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Date(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t), nil
	}
	// sqlite hands dates back as "YYYY-MM-DD HH:MM:SS+00:00"
	if len(s) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, s[:len(DateLayout)]); err == nil {
			return Date(t), nil
		}
	}
	return Date{}, fmt.Errorf("fecha inválida %q, formato esperado YYYY-MM-DD", s)
}
