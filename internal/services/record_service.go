package services

import (
	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"
	"vinylswarm/internal/repositories"
)

// RecordService handles business logic related to catalog records.
type RecordService struct {
	repo repositories.RecordRepository
}

// NewRecordService creates a new RecordService.
func NewRecordService(repo repositories.RecordRepository) *RecordService {
	return &RecordService{
		repo: repo,
	}
}

// newRecordFromSchema applies the creation defaults: format falls back to
// "LP" and price to zero.
func newRecordFromSchema(body models.CreateRecordSchema) models.Record {
	record := models.Record{
		Artist:         body.Artist,
		Title:          body.Title,
		Released:       body.Released,
		Genre:          body.Genre,
		Format:         "LP",
		Label:          body.Label,
		DurationLength: body.DurationLength,
	}
	if body.Format != nil {
		record.Format = *body.Format
	}
	if body.Price != nil {
		record.Price = *body.Price
	}
	return record
}

// ListRecords retrieves a page of records ordered by artist.
func (s *RecordService) ListRecords(opts models.FilterOptions) ([]models.Record, error) {
	limit, offset := opts.Window(10)
	records, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return records, nil
}

// GetRecord retrieves a single record by id.
func (s *RecordService) GetRecord(id string) (*models.Record, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("record_id %s not found", id)
		}
		return nil, apperrors.Store(err)
	}
	return record, nil
}

// CreateRecord inserts a new record with the documented defaults applied.
func (s *RecordService) CreateRecord(body models.CreateRecordSchema) (*models.Record, error) {
	record := newRecordFromSchema(body)
	if err := s.repo.Create(&record); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.Conflictf("record %s by %s already exists", body.Title, body.Artist)
		}
		return nil, apperrors.Store(err)
	}
	return &record, nil
}

// UpdateRecord patch-merges the supplied fields over the stored record and
// writes every field back.
func (s *RecordService) UpdateRecord(id string, body models.UpdateRecordSchema) (*models.Record, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("record id: %s not found", id)
		}
		return nil, apperrors.Store(err)
	}

	if body.Artist != nil {
		record.Artist = *body.Artist
	}
	if body.Title != nil {
		record.Title = *body.Title
	}
	if body.Released != nil {
		record.Released = *body.Released
	}
	if body.Genre != nil {
		record.Genre = body.Genre
	}
	if body.Format != nil {
		record.Format = *body.Format
	}
	if body.Price != nil {
		record.Price = *body.Price
	}
	if body.Label != nil {
		record.Label = *body.Label
	}
	if body.DurationLength != nil {
		record.DurationLength = *body.DurationLength
	}

	if err := s.repo.Update(record); err != nil {
		return nil, apperrors.Store(err)
	}
	return record, nil
}

// DeleteRecord removes a record by id.
func (s *RecordService) DeleteRecord(id string) error {
	rowsAffected, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("record id: %s not found", id)
	}
	return nil
}
