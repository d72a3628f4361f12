// Package projection contains pure read models computed from a loaded
// document. Nothing here mutates or persists state; renderers consume the
// returned plain structures.
package projection

import (
	"time"

	"github.com/clinixhq/clinix/pkg/core"
)

// NotificationFilter selects which notifications a listing shows.
type NotificationFilter string

const (
	FilterAll    NotificationFilter = "all"
	FilterUnread NotificationFilter = "unread"
	FilterAgenda NotificationFilter = "agenda"
)

// DayBucket labels a calendar-day group in a notification listing.
type DayBucket string

const (
	BucketToday     DayBucket = "Hoje"
	BucketYesterday DayBucket = "Ontem"
	BucketOlder     DayBucket = "Antigas"
)

// NotificationGroup is one rendered bucket of the listing. Items keep their
// stored newest-first order.
type NotificationGroup struct {
	Bucket DayBucket
	Items  []core.Notification
}

// FilterNotifications applies the listing filter, preserving order.
func FilterNotifications(list []core.Notification, filter NotificationFilter) []core.Notification {
	switch filter {
	case FilterUnread:
		out := make([]core.Notification, 0, len(list))
		for _, n := range list {
			if !n.Read {
				out = append(out, n)
			}
		}
		return out
	case FilterAgenda:
		out := make([]core.Notification, 0, len(list))
		for _, n := range list {
			if n.Type == core.TypeAgenda {
				out = append(out, n)
			}
		}
		return out
	default:
		return list
	}
}

// GroupByDay buckets notifications into Today, Yesterday and Older relative
// to now, comparing calendar days rather than rolling 24h windows. Buckets
// come back in that fixed order with empty ones omitted.
func GroupByDay(list []core.Notification, now time.Time) []NotificationGroup {
	var today, yesterday, older []core.Notification
	prev := now.AddDate(0, 0, -1)

	for _, n := range list {
		switch {
		case sameDay(n.Date, now):
			today = append(today, n)
		case sameDay(n.Date, prev):
			yesterday = append(yesterday, n)
		default:
			older = append(older, n)
		}
	}

	var groups []NotificationGroup
	if len(today) > 0 {
		groups = append(groups, NotificationGroup{Bucket: BucketToday, Items: today})
	}
	if len(yesterday) > 0 {
		groups = append(groups, NotificationGroup{Bucket: BucketYesterday, Items: yesterday})
	}
	if len(older) > 0 {
		groups = append(groups, NotificationGroup{Bucket: BucketOlder, Items: older})
	}
	return groups
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// UnreadCount counts notifications not yet marked read.
func UnreadCount(list []core.Notification) int {
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count
}
