package booking

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/peershare/shareit-backend/internal/pkg/apperror"
)

// Filter is a named temporal/status bucket used when listing bookings.
type Filter string

const (
	FilterAll      Filter = "ALL"
	FilterCurrent  Filter = "CURRENT"
	FilterPast     Filter = "PAST"
	FilterFuture   Filter = "FUTURE"
	FilterWaiting  Filter = "WAITING"
	FilterRejected Filter = "REJECTED"
)

// ParseFilter maps a state token to a Filter. An absent token defaults to ALL;
// any present but unrecognized token is rejected, never silently widened.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch f := Filter(strings.ToUpper(s)); f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", apperror.Wrap(ErrUnknownFilter, http.StatusBadRequest,
			fmt.Sprintf("unknown state filter: %q", s))
	}
}

// Matches reports whether the booking falls into the filter's window at the
// given instant.
//
//	CURRENT: start <= now < end
//	PAST:    end <= now
//	FUTURE:  start > now
func (f Filter) Matches(b *Booking, now time.Time) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCurrent:
		return !b.Start.After(now) && b.End.After(now)
	case FilterPast:
		return !b.End.After(now)
	case FilterFuture:
		return b.Start.After(now)
	case FilterWaiting:
		return b.Status == StatusWaiting
	case FilterRejected:
		return b.Status == StatusRejected
	default:
		return false
	}
}

// SortBookings orders a result set by start descending, ties broken by id
// ascending so that listings are deterministic.
func SortBookings(bookings []*Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].Start.After(bookings[j].Start)
	})
}
