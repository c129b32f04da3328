package models

// InterestStatus - тристабильное состояние интереса пользователя к событию.
type InterestStatus string

const (
	StatusInterested    InterestStatus = "interested"
	StatusNotInterested InterestStatus = "not_interested"
)

// InterestedEvent - запись об интересе пользователя к событию каталога.
// Инвариант: не более одной записи на CatalogEventID.
type InterestedEvent struct {
	CatalogEventID        string `json:"catalog_event_id"`
	InterestedAt          string `json:"interested_at"`
	NotificationScheduled bool   `json:"notification_scheduled"`
	NotificationID        string `json:"notification_id,omitempty"`
}
