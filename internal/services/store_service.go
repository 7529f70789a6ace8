package services

import (
	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"
	"vinylswarm/internal/repositories"
)

// StoreService handles business logic related to record stores.
type StoreService struct {
	repo repositories.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(repo repositories.StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

// newStoreFromSchema applies the creation defaults: phone number and website
// fall back to empty strings.
func newStoreFromSchema(body models.CreateRecordStoreSchema) models.RecordStore {
	store := models.RecordStore{
		StoreName:    body.StoreName,
		StoreAddress: body.StoreAddress,
		StoreCity:    body.StoreCity,
		StoreState:   body.StoreState,
		StoreZip:     body.StoreZip,
	}
	if body.PhoneNumber != nil {
		store.PhoneNumber = *body.PhoneNumber
	}
	if body.Website != nil {
		store.Website = *body.Website
	}
	return store
}

// ListStores retrieves a page of record stores ordered by store_name.
func (s *StoreService) ListStores(opts models.FilterOptions) ([]models.RecordStore, error) {
	limit, offset := opts.Window(10)
	stores, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return stores, nil
}

// GetStore retrieves a single record store by id.
func (s *StoreService) GetStore(id string) (*models.RecordStore, error) {
	store, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("record_store_id %s not found", id)
		}
		return nil, apperrors.Store(err)
	}
	return store, nil
}

// CreateStore inserts a new record store. A store with the same identifying
// tuple (name, address, city, state) is a conflict; the pre-check query runs
// before the insert, and a racing duplicate surfaced by the store at insert
// time maps to the same conflict.
func (s *StoreService) CreateStore(body models.CreateRecordStoreSchema) (*models.RecordStore, error) {
	found, err := s.repo.FindByIdentity(body.StoreName, body.StoreAddress, body.StoreCity, body.StoreState)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if found != nil {
		return nil, apperrors.Conflictf("Record store '%s' already exists.", found.StoreName)
	}

	store := newStoreFromSchema(body)
	if err := s.repo.Create(&store); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.Conflictf("Record store '%s' already exists.", body.StoreName)
		}
		return nil, apperrors.Store(err)
	}
	return &store, nil
}

// UpdateStore patch-merges the supplied fields over the stored record store
// and writes every field back.
func (s *StoreService) UpdateStore(id string, body models.UpdateRecordStoreSchema) (*models.RecordStore, error) {
	store, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("record store id: %s not found", id)
		}
		return nil, apperrors.Store(err)
	}

	if body.StoreName != nil {
		store.StoreName = *body.StoreName
	}
	if body.StoreAddress != nil {
		store.StoreAddress = *body.StoreAddress
	}
	if body.StoreCity != nil {
		store.StoreCity = *body.StoreCity
	}
	if body.StoreState != nil {
		store.StoreState = *body.StoreState
	}
	if body.StoreZip != nil {
		store.StoreZip = *body.StoreZip
	}
	if body.PhoneNumber != nil {
		store.PhoneNumber = *body.PhoneNumber
	}
	if body.Website != nil {
		store.Website = *body.Website
	}

	if err := s.repo.Update(store); err != nil {
		return nil, apperrors.Store(err)
	}
	return store, nil
}

// DeleteStore removes a record store by id.
func (s *StoreService) DeleteStore(id string) error {
	rowsAffected, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("record store id: %s not found", id)
	}
	return nil
}
