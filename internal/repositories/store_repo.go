package repositories

import "vinylswarm/internal/models"

// StoreRepository defines the interface for record-store data access.
type StoreRepository interface {
	GetAll(limit, offset int) ([]models.RecordStore, error)
	GetByID(id string) (*models.RecordStore, error)
	GetByIDs(ids []string) ([]models.RecordStore, error)
	// FindByIdentity looks a store up by its identifying tuple. It returns
	// (nil, nil) when no store matches.
	FindByIdentity(name, address, city, state string) (*models.RecordStore, error)
	Create(store *models.RecordStore) error
	Update(store *models.RecordStore) error
	Delete(id string) (int64, error)
}
