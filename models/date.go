package models

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateOnly je datum bez vremena, u JSON-u formata "2006-01-02".
type DateOnly time.Time

func (d DateOnly) Time() time.Time {
	return time.Time(d)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(DateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, DateLayout)
	}
	*d = DateOnly(t)
	return nil
}
