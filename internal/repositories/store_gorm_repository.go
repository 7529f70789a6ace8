package repositories

import (
	"errors"

	"vinylswarm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStoreRepository is a GORM implementation of StoreRepository.
type GORMStoreRepository struct {
	db *gorm.DB
}

// NewGORMStoreRepository creates a new instance of GORMStoreRepository.
func NewGORMStoreRepository(db *gorm.DB) *GORMStoreRepository {
	return &GORMStoreRepository{
		db: db,
	}
}

// GetAll retrieves a page of record stores ordered by store_name.
func (r *GORMStoreRepository) GetAll(limit, offset int) ([]models.RecordStore, error) {
	var stores []models.RecordStore
	if err := r.db.Order("store_name").Limit(limit).Offset(offset).Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// GetByID retrieves a single record store by its ID.
func (r *GORMStoreRepository) GetByID(id string) (*models.RecordStore, error) {
	var store models.RecordStore
	if err := r.db.First(&store, "record_store_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByIDs retrieves every store whose id is in ids.
func (r *GORMStoreRepository) GetByIDs(ids []string) ([]models.RecordStore, error) {
	var stores []models.RecordStore
	if err := r.db.Where("record_store_id IN ?", ids).Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByIdentity looks a store up by (name, address, city, state) and
// returns (nil, nil) when no store matches.
func (r *GORMStoreRepository) FindByIdentity(name, address, city, state string) (*models.RecordStore, error) {
	var store models.RecordStore
	err := r.db.First(&store,
		"store_name = ? AND store_address = ? AND store_city = ? AND store_state = ?",
		name, address, city, state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// Create inserts a new record store, generating its id when absent.
func (r *GORMStoreRepository) Create(store *models.RecordStore) error {
	if store.RecordStoreID == "" {
		store.RecordStoreID = uuid.New().String()
	}
	return r.db.Create(store).Error
}

// Update writes every field of the store back in one statement.
func (r *GORMStoreRepository) Update(store *models.RecordStore) error {
	return r.db.Save(store).Error
}

// Delete removes a record store by id and returns the affected-row count.
func (r *GORMStoreRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.RecordStore{}, "record_store_id = ?", id)
	return res.RowsAffected, res.Error
}
