// Package duration projects shares onto a total duration and formats the
// result for display.
package duration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/timesplit/internal/partition"
)

// Entry is one item's slice of the total duration.
type Entry[T partition.Item] struct {
	Item     T
	Share    float64
	Duration time.Duration
}

// Project multiplies each item's share by total, in item order.
func Project[T partition.Item](items []T, shares partition.ShareMap, total time.Duration) []Entry[T] {
	entries := make([]Entry[T], len(items))
	for i, it := range items {
		share := shares[it.ID()]
		entries[i] = Entry[T]{
			Item:     it,
			Share:    share,
			Duration: time.Duration(share * float64(total)),
		}
	}
	return entries
}

// Format renders d as whole hours and minutes, truncating the rest.
// The hour part is dropped when zero: "3h 15m", "45m", "0m".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// ErrNonPositive is returned when a total duration is zero or negative.
var ErrNonPositive = errors.New("duration must be positive")

// ParseTotal parses a total duration such as "7h30m" or "90m".
func ParseTotal(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if err != nil {
		return 0, fmt.Errorf("parse total %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("total %q: %w", s, ErrNonPositive)
	}
	return d, nil
}
