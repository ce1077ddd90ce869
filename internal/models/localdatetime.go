package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Event dates travel as ISO local datetimes with no timezone
// ("2024-05-22T14:00:00"); conversion to the viewer's zone is left to the
// consumer.
const localDateTimeLayout = "2006-01-02T15:04:05"

type LocalDateTime struct {
	time.Time
}

func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t}
}

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(localDateTimeLayout) + `"`), nil
}

func (d *LocalDateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(localDateTimeLayout, s)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d LocalDateTime) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
}
