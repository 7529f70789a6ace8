package repositories

import "vinylswarm/internal/models"

// RecordRepository defines the interface for record data access.
type RecordRepository interface {
	GetAll(limit, offset int) ([]models.Record, error)
	GetByID(id string) (*models.Record, error)
	GetByIDs(ids []string) ([]models.Record, error)
	Create(record *models.Record) error
	Update(record *models.Record) error
	Delete(id string) (int64, error)
}
