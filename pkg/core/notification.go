package core

import (
	"math/rand/v2"
	"time"
)

// NotificationType classifies a derived notification for rendering.
type NotificationType string

const (
	TypeAgenda  NotificationType = "agenda"
	TypeAlert   NotificationType = "alert"
	TypeSuccess NotificationType = "success"
	TypeSystem  NotificationType = "system"
)

// Notification is a derived record appended whenever a state-changing
// action succeeds. Date is the generation instant (RFC 3339 in JSON).
// Link is an opaque display hint; "#" means no target.
type Notification struct {
	ID    int64            `json:"id"`
	Title string           `json:"title"`
	Desc  string           `json:"desc"`
	Date  time.Time        `json:"date"`
	Type  NotificationType `json:"type"`
	Read  bool             `json:"read"`
	Link  string           `json:"link"`
}

// NotificationInput carries the caller-supplied fields. Type falls back to
// TypeSystem and Link to "#".
type NotificationInput struct {
	Title string
	Desc  string
	Type  NotificationType
	Link  string
}

// newNotificationID derives an id from the clock with a random tiebreak so
// notifications generated within the same millisecond stay distinct.
// Uniqueness is probabilistic, which is sufficient for display records.
func newNotificationID(now time.Time) int64 {
	return now.UnixMilli()*1000 + rand.Int64N(1000)
}

// prependNotification records a derived notification at the head of the
// collection (newest-first). It never fails and is only invoked on success
// paths, inside the same document write as the triggering mutation.
func prependNotification(doc *Document, in NotificationInput, now time.Time) Notification {
	if in.Type == "" {
		in.Type = TypeSystem
	}
	if in.Link == "" {
		in.Link = "#"
	}

	n := Notification{
		ID:    newNotificationID(now),
		Title: in.Title,
		Desc:  in.Desc,
		Date:  now,
		Type:  in.Type,
		Read:  false,
		Link:  in.Link,
	}
	doc.Notifications = append([]Notification{n}, doc.Notifications...)
	return n
}
