package repositories

import (
	"vinylswarm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCollectionRepository is a GORM implementation of CollectionRepository.
type GORMCollectionRepository struct {
	db *gorm.DB
}

// NewGORMCollectionRepository creates a new instance of GORMCollectionRepository.
func NewGORMCollectionRepository(db *gorm.DB) *GORMCollectionRepository {
	return &GORMCollectionRepository{
		db: db,
	}
}

// RecordIDs returns the ids of every record in the user's collection.
func (r *GORMCollectionRepository) RecordIDs(userID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.UserRecord{}).
		Where("user_id = ?", userID).
		Pluck("record_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Insert adds a join row, generating its id when absent.
func (r *GORMCollectionRepository) Insert(link *models.UserRecord) error {
	if link.UserRecordID == "" {
		link.UserRecordID = uuid.New().String()
	}
	return r.db.Create(link).Error
}

// ExistsPair reports whether the user already holds the record.
func (r *GORMCollectionRepository) ExistsPair(userID, recordID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRecord{}).
		Where("user_id = ? AND record_id = ?", userID, recordID).
		Count(&count).Error
	return count > 0, err
}

// DeletePair removes exactly the join row matching both foreign keys.
func (r *GORMCollectionRepository) DeletePair(userID, recordID string) (int64, error) {
	res := r.db.Delete(&models.UserRecord{}, "user_id = ? AND record_id = ?", userID, recordID)
	return res.RowsAffected, res.Error
}

// DeleteAllByUser clears the user's collection.
func (r *GORMCollectionRepository) DeleteAllByUser(userID string) (int64, error) {
	res := r.db.Delete(&models.UserRecord{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// RecordIDs returns the ids of every record on the user's wishlist.
func (r *GORMWishlistRepository) RecordIDs(userID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.UserWishlist{}).
		Where("user_id = ?", userID).
		Pluck("record_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Insert adds a wishlist entry, generating its id when absent. AddedAt is
// set by the store on insert.
func (r *GORMWishlistRepository) Insert(entry *models.UserWishlist) error {
	if entry.UserWishlistID == "" {
		entry.UserWishlistID = uuid.New().String()
	}
	return r.db.Create(entry).Error
}

// ExistsPair reports whether the record is already on the user's wishlist.
func (r *GORMWishlistRepository) ExistsPair(userID, recordID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserWishlist{}).
		Where("user_id = ? AND record_id = ?", userID, recordID).
		Count(&count).Error
	return count > 0, err
}

// DeletePair removes exactly the wishlist entry matching both foreign keys.
func (r *GORMWishlistRepository) DeletePair(userID, recordID string) (int64, error) {
	res := r.db.Delete(&models.UserWishlist{}, "user_id = ? AND record_id = ?", userID, recordID)
	return res.RowsAffected, res.Error
}

// DeleteAllByUser clears the user's wishlist.
func (r *GORMWishlistRepository) DeleteAllByUser(userID string) (int64, error) {
	res := r.db.Delete(&models.UserWishlist{}, "user_id = ?", userID)
	return res.RowsAffected, res.Error
}

// GORMFavoriteStoreRepository is a GORM implementation of
// FavoriteStoreRepository.
type GORMFavoriteStoreRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteStoreRepository creates a new instance of
// GORMFavoriteStoreRepository.
func NewGORMFavoriteStoreRepository(db *gorm.DB) *GORMFavoriteStoreRepository {
	return &GORMFavoriteStoreRepository{
		db: db,
	}
}

// StoreIDs returns the ids of every store the user has favorited.
func (r *GORMFavoriteStoreRepository) StoreIDs(userID string) ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.UserRecordStore{}).
		Where("user_key = ?", userID).
		Pluck("record_store_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Insert adds a join row, generating its id when absent.
func (r *GORMFavoriteStoreRepository) Insert(link *models.UserRecordStore) error {
	if link.UserFavoriteStoresID == "" {
		link.UserFavoriteStoresID = uuid.New().String()
	}
	return r.db.Create(link).Error
}

// ExistsPair reports whether the user has already favorited the store.
func (r *GORMFavoriteStoreRepository) ExistsPair(userID, storeID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRecordStore{}).
		Where("user_key = ? AND record_store_id = ?", userID, storeID).
		Count(&count).Error
	return count > 0, err
}

// DeletePair removes exactly the join row matching both foreign keys.
func (r *GORMFavoriteStoreRepository) DeletePair(userID, storeID string) (int64, error) {
	res := r.db.Delete(&models.UserRecordStore{}, "user_key = ? AND record_store_id = ?", userID, storeID)
	return res.RowsAffected, res.Error
}

// DeleteAllByUser clears the user's favorite stores.
func (r *GORMFavoriteStoreRepository) DeleteAllByUser(userID string) (int64, error) {
	res := r.db.Delete(&models.UserRecordStore{}, "user_key = ?", userID)
	return res.RowsAffected, res.Error
}
