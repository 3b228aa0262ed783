package payload

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only date format the bot accepts from users.
const DateLayout = "02.01.2006"

var ErrBadDateFormat error = errors.New("date must be in DD.MM.YYYY format")
var ErrFutureDate error = errors.New("date cannot be in the future")
var ErrBadPeriodFormat error = errors.New("period must be two DD.MM.YYYY dates separated by a space")
var ErrStartAfterEnd error = errors.New("start date cannot be after end date")

// ParseDate reads a single user-supplied date and extends it to the end of
// that day, so a balance query at the date includes the whole day.
func ParseDate(text string, now time.Time) (time.Time, error) {
	day, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadDateFormat, text)
	}

	at := endOfDay(day)
	if at.After(now) && !sameDay(day, now) {
		return time.Time{}, ErrFutureDate
	}
	return at, nil
}

// ParsePeriod reads a user-supplied "start end" date pair. The end date is
// extended to the end of its day; both bounds are validated before any
// network work happens.
func ParsePeriod(text string, now time.Time) (start, end time.Time, err error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return time.Time{}, time.Time{}, ErrBadPeriodFormat
	}

	start, err = time.Parse(DateLayout, fields[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrBadPeriodFormat, fields[0])
	}
	end, err = time.Parse(DateLayout, fields[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrBadPeriodFormat, fields[1])
	}

	end = endOfDay(end)
	if end.After(now) && !sameDay(end, now) {
		return time.Time{}, time.Time{}, ErrFutureDate
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrStartAfterEnd
	}

	return start, end, nil
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, day.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
