package repositories

import (
	"vinylswarm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRecordRepository is a GORM implementation of RecordRepository.
type GORMRecordRepository struct {
	db *gorm.DB
}

// NewGORMRecordRepository creates a new instance of GORMRecordRepository.
func NewGORMRecordRepository(db *gorm.DB) *GORMRecordRepository {
	return &GORMRecordRepository{
		db: db,
	}
}

// GetAll retrieves a page of records ordered by artist.
func (r *GORMRecordRepository) GetAll(limit, offset int) ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Order("artist").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID retrieves a single record by its ID.
func (r *GORMRecordRepository) GetByID(id string) (*models.Record, error) {
	var record models.Record
	if err := r.db.First(&record, "record_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByIDs retrieves every record whose id is in ids.
func (r *GORMRecordRepository) GetByIDs(ids []string) ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Where("record_id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Create inserts a new record, generating its id when absent.
func (r *GORMRecordRepository) Create(record *models.Record) error {
	if record.RecordID == "" {
		record.RecordID = uuid.New().String()
	}
	return r.db.Create(record).Error
}

// Update writes every field of the record back in one statement.
func (r *GORMRecordRepository) Update(record *models.Record) error {
	return r.db.Save(record).Error
}

// Delete removes a record by id and returns the affected-row count.
func (r *GORMRecordRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Record{}, "record_id = ?", id)
	return res.RowsAffected, res.Error
}
