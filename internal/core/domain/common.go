package domain

import "time"

// AuditFields holds the server-stamped timestamps shared by every entity.
// CreatedAt is set once on insert; LastUpdatedAt is re-stamped on every update.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"updatedAt"`
}

// DateFormat is the calendar-date wire format used throughout the API.
// Dates carry no time-of-day semantics.
const DateFormat = "2006-01-02"
