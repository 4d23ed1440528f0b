package domain

import "time"

// Enrollment is the durable link recording that a user has engaged a given
// master for a given procedure. It is created lazily on the first booking of
// the triple and outlives any single booking.
type Enrollment struct {
	ID          int64
	UserID      int64
	MasterID    int64
	ProcedureID int64

	CreatedAt time.Time
}
