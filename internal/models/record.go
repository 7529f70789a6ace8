package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GenreList is an ordered list of genre tags. It is stored as a single
// JSON-encoded text column so the same model works against Postgres in
// production and SQLite in tests, and a genre may contain any character.
type GenreList []string

// Value implements driver.Valuer.
func (g GenreList) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (g *GenreList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*g = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported genre column type %T", src)
	}
	if raw == "" {
		*g = nil
		return nil
	}
	return json.Unmarshal([]byte(raw), g)
}

// Record represents a single vinyl release in the catalog.
// Released is a calendar date (2006-01-02) and DurationLength a clock
// duration (15:04:05), both carried as text.
type Record struct {
	RecordID       string    `json:"record_id" gorm:"column:record_id;primaryKey;type:varchar(36)"`
	Artist         string    `json:"artist" gorm:"type:varchar(255)"`
	Title          string    `json:"title" gorm:"type:varchar(255)"`
	Released       string    `json:"released" gorm:"type:varchar(10)"`
	Genre          GenreList `json:"genre" gorm:"type:text"`
	Format         string    `json:"format" gorm:"type:varchar(50)"`
	Price          float64   `json:"price"`
	Label          string    `json:"label" gorm:"type:varchar(255)"`
	DurationLength string    `json:"duration_length" gorm:"column:duration_length;type:varchar(8)"`
}

// TableName overrides the GORM default.
func (Record) TableName() string {
	return "records"
}

// CreateRecordSchema is the request body for adding a record. Format and
// price fall back to "LP" and 0 when absent.
type CreateRecordSchema struct {
	Artist         string   `json:"artist" validate:"required"`
	Title          string   `json:"title" validate:"required"`
	Released       string   `json:"released" validate:"required,datetime=2006-01-02"`
	Genre          []string `json:"genre"`
	Format         *string  `json:"format"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Label          string   `json:"label" validate:"required"`
	DurationLength string   `json:"duration_length" validate:"required,datetime=15:04:05"`
}

// UpdateRecordSchema is the patch body for editing a record.
type UpdateRecordSchema struct {
	Artist         *string  `json:"artist"`
	Title          *string  `json:"title"`
	Released       *string  `json:"released" validate:"omitempty,datetime=2006-01-02"`
	Genre          []string `json:"genre"`
	Format         *string  `json:"format"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Label          *string  `json:"label"`
	DurationLength *string  `json:"duration_length" validate:"omitempty,datetime=15:04:05"`
}

// RecordRefSchema carries a record id in a request body for the
// attach/detach association endpoints.
type RecordRefSchema struct {
	RecordID string `json:"record_id" validate:"required"`
}
