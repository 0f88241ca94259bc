package domain

import "time"

type Legislation struct {
	ID           int64             `db:"id" json:"id"`
	Number       string            `db:"number" json:"number"`
	Title        string            `db:"title" json:"title"`
	Sphere       string            `db:"sphere" json:"sphere"`
	Status       string            `db:"status" json:"status"`
	PublishedAt  *time.Time        `db:"published_at" json:"published_at,omitempty"`
	SourceURL    string            `db:"source_url" json:"source_url"`
	Requirements map[string]string `db:"requirements" json:"requirements"`
	CreatedAt    time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updated_at"`
}
