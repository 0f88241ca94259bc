package domain

import (
	"time"

	"github.com/google/uuid"
)

type Year = int

// WasteLog is one logged disposal/treatment event from the waste_logs table.
// Rows are immutable once created; this core only reads them.
type WasteLog struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	CompanyID          uuid.UUID `db:"company_id" json:"company_id"`
	Quantity           float64   `db:"quantity" json:"quantity"`
	Unit               string    `db:"unit" json:"unit"`
	WasteDescription   string    `db:"waste_description" json:"waste_description"`
	WasteClass         string    `db:"waste_class" json:"waste_class"`
	FinalTreatmentType string    `db:"final_treatment_type" json:"final_treatment_type"`
	CollectionDate     time.Time `db:"collection_date" json:"collection_date"`
	MTRNumber          string    `db:"mtr_number" json:"mtr_number"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type Profile struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	CompanyID *uuid.UUID `db:"company_id" json:"company_id"`
	FullName  string     `db:"full_name" json:"full_name"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}
