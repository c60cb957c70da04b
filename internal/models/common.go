package models

import "time"

// AuditFields holds standard audit information persisted for every row.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"updated_at"`
}
