package models

import "time"

// Comment is an update attached to a complaint. Internal comments are only
// shown in the staff console; public ones also appear on the tracker.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Internal  bool      `json:"isInternal"`
	CreatedAt time.Time `json:"timestamp"`
}
