package repositories

import "vinylswarm/internal/models"

// CollectionRepository defines data access for the user_records join table.
type CollectionRepository interface {
	RecordIDs(userID string) ([]string, error)
	Insert(link *models.UserRecord) error
	ExistsPair(userID, recordID string) (bool, error)
	DeletePair(userID, recordID string) (int64, error)
	DeleteAllByUser(userID string) (int64, error)
}

// WishlistRepository defines data access for the user_wishlist join table.
type WishlistRepository interface {
	RecordIDs(userID string) ([]string, error)
	Insert(entry *models.UserWishlist) error
	ExistsPair(userID, recordID string) (bool, error)
	DeletePair(userID, recordID string) (int64, error)
	DeleteAllByUser(userID string) (int64, error)
}

// FavoriteStoreRepository defines data access for the user_record_stores
// join table.
type FavoriteStoreRepository interface {
	StoreIDs(userID string) ([]string, error)
	Insert(link *models.UserRecordStore) error
	ExistsPair(userID, storeID string) (bool, error)
	DeletePair(userID, storeID string) (int64, error)
	DeleteAllByUser(userID string) (int64, error)
}
