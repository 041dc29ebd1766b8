package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidDateString возвращается, когда строка не соответствует формату YYYY-MM-DD
var ErrInvalidDateString = errors.New("invalid date string format")

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateString календарная дата в формате "YYYY-MM-DD"
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит и валидирует строку формата YYYY-MM-DD
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет шаблон и существование даты в календаре
func (d DateString) Validate() error {
	if !datePattern.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// Time возвращает полночь даты в UTC
func (d DateString) Time() (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.Parse(dateLayout, string(d))
}

// Weekday возвращает день недели (0 = воскресенье).
// Второе значение false, если дата некорректна.
func (d DateString) Weekday() (int, bool) {
	t, err := d.Time()
	if err != nil {
		return -1, false
	}
	return int(t.Weekday()), true
}

func (d DateString) IsZero() bool {
	return d == ""
}

func (d DateString) String() string {
	return string(d)
}

// Scan реализует sql.Scanner (колонка TEXT)
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*d = DateString(v)
	case []byte:
		*d = DateString(v)
	case time.Time:
		*d = NewDateString(v)
	case nil:
		*d = ""
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidDateString, src)
	}
	return nil
}

// Value реализует driver.Valuer
func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}
