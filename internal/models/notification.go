package models

import "time"

// NotificationType classifies what produced a notification.
type NotificationType string

const (
	NotificationTypeContact NotificationType = "contact"
	NotificationTypeProject NotificationType = "project"
	NotificationTypeSystem  NotificationType = "system"
)

// Valid reports whether t is a known notification type.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeContact, NotificationTypeProject, NotificationTypeSystem:
		return true
	}
	return false
}

// Notification is an admin-console alert. Created as a side effect of contact
// and project creation (or by the seed action), never by a public actor.
type Notification struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	Type      NotificationType `bson:"type" json:"type"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	Link      string           `bson:"link,omitempty" json:"link,omitempty"`
	RelatedID string           `bson:"relatedId,omitempty" json:"relatedId,omitempty"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updatedAt"`
}
