package models

import "time"

// UserRecord links a user to a record in their collection.
type UserRecord struct {
	UserRecordID string `json:"user_record_id" gorm:"column:user_record_id;primaryKey;type:varchar(36)"`
	UserID       string `json:"user_id" gorm:"column:user_id;index;type:varchar(36)"`
	RecordID     string `json:"record_id" gorm:"column:record_id;index;type:varchar(36)"`
}

// TableName overrides the GORM default.
func (UserRecord) TableName() string {
	return "user_records"
}

// UserWishlist links a user to a record they want, with the time it was
// added.
type UserWishlist struct {
	UserWishlistID string    `json:"user_wishlist_id" gorm:"column:user_wishlist_id;primaryKey;type:varchar(36)"`
	UserID         string    `json:"user_id" gorm:"column:user_id;index;type:varchar(36)"`
	RecordID       string    `json:"record_id" gorm:"column:record_id;index;type:varchar(36)"`
	AddedAt        time.Time `json:"added_at" gorm:"column:added_at;autoCreateTime"`
}

// TableName overrides the GORM default.
func (UserWishlist) TableName() string {
	return "user_wishlist"
}

// UserRecordStore links a user to a favorite record store. The user column
// is named user_key, unlike the other join tables.
type UserRecordStore struct {
	UserFavoriteStoresID string `json:"user_favorite_stores_id" gorm:"column:user_favorite_stores_id;primaryKey;type:varchar(36)"`
	UserID               string `json:"user_id" gorm:"column:user_key;index;type:varchar(36)"`
	RecordStoreID        string `json:"record_store_id" gorm:"column:record_store_id;index;type:varchar(36)"`
}

// TableName overrides the GORM default.
func (UserRecordStore) TableName() string {
	return "user_record_stores"
}
