package domain

import "time"

// Procedure represents a salon procedure from the catalog
type Procedure struct {
	ID            int64
	Name          string
	DurationHours int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MasterListing represents a master's offering of a procedure with a price.
// Identity is the (MasterID, ProcedureID) pair, price is independently mutable.
type MasterListing struct {
	MasterID    int64
	ProcedureID int64
	Price       float64

	// Данные процедуры для выдачи списков (заполняются join'ом)
	ProcedureName     string
	ProcedureDuration int

	CreatedAt time.Time
	UpdatedAt time.Time
}
