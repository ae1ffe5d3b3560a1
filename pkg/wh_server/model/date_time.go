package model

import (
	"encoding/json"
	"time"
)

// Date always use UTC timezone.
type Date struct {
	timeVal time.Time
}

func (dt Date) Unix() int64 {
	return dt.timeVal.Unix()
}

func (dt Date) GetTime() time.Time {
	return dt.timeVal
}

func (dt Date) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt Date) String() string {
	return dt.timeVal.Format(time.DateOnly)
}

// AddMonths moves the date by n calendar months. The day is clamped to the last day of the
// target month, so 2025-01-31 plus one month is 2025-02-28.
func (dt Date) AddMonths(n int) Date {
	y, m, d := dt.timeVal.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	lastDay := first.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return Date{
		timeVal: time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC),
	}
}

func (dt Date) AddDays(n int) Date {
	return Date{
		timeVal: dt.timeVal.AddDate(0, 0, n),
	}
}

func (dt Date) MarshalJSON() ([]byte, error) {
	strVal := dt.timeVal.Format(time.DateOnly)
	return json.Marshal(strVal)
}

func (dt *Date) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	newDt, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return err
}

func NewDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{
		timeVal: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

func NewDateFromString(t string) (Date, error) {
	ts, err := time.ParseInLocation(time.DateOnly, t, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{
		timeVal: ts,
	}, nil
}

func NewDateFromStringNoError(t string) Date {
	ts, err := time.ParseInLocation(time.DateOnly, t, time.UTC)
	if err != nil {
		panic(err)
	}
	return Date{
		timeVal: ts,
	}
}
