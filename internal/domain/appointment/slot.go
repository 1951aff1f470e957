package appointment

import (
	"slices"
	"strings"
	"time"

	"github.com/clinica/appointments-api/internal/httperr"
)

const (
	// DateTimeLayout is the external form of a slot: DD/MM/YYYY HH:00:00.
	DateTimeLayout  = "02/01/2006 15:04:05"
	DayLayout       = "02/01/2006"
	HourLayout      = "15"
	CreatedAtLayout = "02/01/2006 15:04:05"
)

// Slot is one bookable hour at one center.
type Slot struct {
	Day    string
	Hour   string
	Center string
}

// ParseSlot validates a DD/MM/YYYY HH:00:00 string. Minutes and seconds must
// be zero; bookings are hour-granular.
func ParseSlot(center, dateTime string) (Slot, error) {
	t, err := time.Parse(DateTimeLayout, strings.TrimSpace(dateTime))
	if err != nil || t.Minute() != 0 || t.Second() != 0 {
		return Slot{}, httperr.ErrBusiness(httperr.CodeInvalidDateFormat)
	}

	return Slot{
		Day:    t.Format(DayLayout),
		Hour:   t.Format(HourLayout),
		Center: center,
	}, nil
}

// ParseDay validates and normalises a DD/MM/YYYY day.
func ParseDay(day string) (string, error) {
	t, err := time.Parse(DayLayout, strings.TrimSpace(day))
	if err != nil {
		return "", httperr.ErrBusiness(httperr.CodeInvalidDateFormat)
	}
	return t.Format(DayLayout), nil
}

// DateTime joins a stored day and hour back into the external form.
func DateTime(day, hour string) string {
	return day + " " + hour + ":00:00"
}

func (s Slot) DateTime() string {
	return DateTime(s.Day, s.Hour)
}

// SortByDateTime orders items ascending by their external date-time string.
// Unparsable entries sort first; ties keep their input order.
func SortByDateTime[T any](items []T, dateTime func(T) string) {
	keys := make(map[string]time.Time, len(items))
	key := func(s string) time.Time {
		if k, ok := keys[s]; ok {
			return k
		}
		k, _ := time.Parse(DateTimeLayout, s)
		keys[s] = k
		return k
	}

	slices.SortStableFunc(items, func(a, b T) int {
		return key(dateTime(a)).Compare(key(dateTime(b)))
	})
}
