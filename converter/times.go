package converter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/saarmobil/extxml-to-fptf/extxml"
)

// Stop timing wire tags.
const (
	tagDeparture = "Dep"
	tagArrival   = "Arr"
	tagTime      = "Time"
	tagPrognosis = "StopPrognosis"
)

// Layout of the timestamps this package produces.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// DecodeWireTime reconstructs an absolute timestamp from the protocol's
// day-offset time encoding [D]dHH:MM[:SS]: an optional integer day offset
// before a literal d, then a clock time. The calendar date is now plus the
// day offset; the protocol carries no date of its own, so a time string is
// always relative to the injected reference clock. The UTC offset is
// derived from whether now is under daylight-saving time in its zone,
// since the wire carries no offset either.
func DecodeWireTime(raw string, now time.Time) (string, error) {
	value := strings.TrimSpace(raw)

	var parts []string
	if i := strings.IndexByte(value, 'd'); i >= 0 {
		clock := value[i+1:]
		if len(clock) > 8 {
			clock = clock[len(clock)-8:]
		}
		parts = append([]string{value[:i]}, strings.Split(clock, ":")...)
	} else {
		parts = append([]string{"0"}, strings.Split(value, ":")...)
	}
	if len(parts) < 3 || len(parts) > 4 {
		return "", &extxml.MalformedTimeError{Value: raw}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", &extxml.MalformedTimeError{Value: raw}
		}
		nums[i] = n
	}

	days, hour, minute := nums[0], nums[1], nums[2]
	second := 0
	if len(nums) == 4 {
		second = nums[3]
	}

	date := now.AddDate(0, 0, days)
	offset := "+01:00"
	if now.IsDST() {
		offset = "+02:00"
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		date.Year(), date.Month(), date.Day(), hour, minute, second, offset), nil
}

// DepartureTime decodes the planned departure of a stop element. A stop
// without a departure time is a MissingFieldError.
func DepartureTime(stop *extxml.Element, now time.Time) (string, error) {
	return stopTime(stop, tagDeparture, now)
}

// ArrivalTime decodes the planned arrival of a stop element.
func ArrivalTime(stop *extxml.Element, now time.Time) (string, error) {
	return stopTime(stop, tagArrival, now)
}

func stopTime(stop *extxml.Element, leg string, now time.Time) (string, error) {
	side := stop.Find(leg)
	if side == nil {
		return "", &extxml.MissingFieldError{Field: leg}
	}
	tm := side.Find(tagTime)
	if tm == nil || strings.TrimSpace(tm.Text) == "" {
		return "", &extxml.MissingFieldError{Field: leg + "/" + tagTime}
	}
	return DecodeWireTime(tm.Text, now)
}

// DepartureDelay computes actual minus planned departure in whole seconds
// from a stop's prognosis element. Negative means early. Prognosis data is
// best-effort telemetry: a missing or unparsable prognosis yields nil,
// never an error.
func DepartureDelay(stop *extxml.Element, planned string, now time.Time) *int64 {
	return stopDelay(stop, tagDeparture, planned, now)
}

// ArrivalDelay is the arrival-side counterpart of DepartureDelay.
func ArrivalDelay(stop *extxml.Element, planned string, now time.Time) *int64 {
	return stopDelay(stop, tagArrival, planned, now)
}

func stopDelay(stop *extxml.Element, leg string, planned string, now time.Time) *int64 {
	prognosis := stop.Find(tagPrognosis)
	if prognosis == nil {
		return nil
	}
	side := prognosis.Find(leg)
	if side == nil {
		return nil
	}
	tm := side.Find(tagTime)
	if tm == nil {
		return nil
	}
	actual, err := DecodeWireTime(tm.Text, now)
	if err != nil {
		return nil
	}
	actualAt, err := time.Parse(TimestampLayout, actual)
	if err != nil {
		return nil
	}
	plannedAt, err := time.Parse(TimestampLayout, planned)
	if err != nil {
		return nil
	}
	delay := int64(actualAt.Sub(plannedAt) / time.Second)
	return &delay
}
