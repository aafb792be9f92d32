package employee

import "time"

// Employee is keyed by email in practice; the id exists for foreign
// keys. The manager relation is a denormalized email match against
// other employees, resolved at query time, not a foreign key.
type Employee struct {
	ID                string
	Email             string
	FullName          string
	ManagerEmail      *string
	OneDriveFolderURL *string
	CreatedAt         time.Time
}
