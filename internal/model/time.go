package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Wire format for every timestamp: UTC, millisecond precision, trailing Z.
const timestampLayout = "2006-01-02T15:04:05.000Z"

type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(timestampLayout))
}

func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("model: cannot scan %T into Timestamp", src)
	}
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// Date is a bare UTC calendar date (birth_date on User responses).
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(time.DateOnly))
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("model: cannot scan %T into Date", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
