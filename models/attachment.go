package models

import "time"

// Attachment is a validated file payload bound to a complaint. Data holds the
// file bytes in their transportable data-URL form.
type Attachment struct {
	Name        string    `json:"name"`
	ContentType string    `json:"type"`
	Size        int64     `json:"size"`
	Data        string    `json:"data"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
