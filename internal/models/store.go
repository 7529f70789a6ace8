package models

// RecordStore represents a shop worth digging through. The tuple
// (store_name, store_address, store_city, store_state) identifies a store;
// creation is rejected when that tuple already exists.
type RecordStore struct {
	RecordStoreID string `json:"record_store_id" gorm:"column:record_store_id;primaryKey;type:varchar(36)"`
	StoreName     string `json:"store_name" gorm:"column:store_name;type:varchar(255)"`
	StoreAddress  string `json:"store_address" gorm:"column:store_address;type:varchar(255)"`
	StoreCity     string `json:"store_city" gorm:"column:store_city;type:varchar(100)"`
	StoreState    string `json:"store_state" gorm:"column:store_state;type:varchar(50)"`
	StoreZip      string `json:"store_zip" gorm:"column:store_zip;type:varchar(20)"`
	PhoneNumber   string `json:"phone_number" gorm:"column:phone_number;type:varchar(30)"`
	Website       string `json:"website" gorm:"type:varchar(255)"`
}

// TableName overrides the GORM default.
func (RecordStore) TableName() string {
	return "record_stores"
}

// CreateRecordStoreSchema is the request body for adding a store.
// PhoneNumber and Website default to empty strings when absent.
type CreateRecordStoreSchema struct {
	StoreName    string  `json:"store_name" validate:"required"`
	StoreAddress string  `json:"store_address" validate:"required"`
	StoreCity    string  `json:"store_city" validate:"required"`
	StoreState   string  `json:"store_state" validate:"required"`
	StoreZip     string  `json:"store_zip" validate:"required"`
	PhoneNumber  *string `json:"phone_number"`
	Website      *string `json:"website"`
}

// UpdateRecordStoreSchema is the patch body for editing a store.
type UpdateRecordStoreSchema struct {
	StoreName    *string `json:"store_name"`
	StoreAddress *string `json:"store_address"`
	StoreCity    *string `json:"store_city"`
	StoreState   *string `json:"store_state"`
	StoreZip     *string `json:"store_zip"`
	PhoneNumber  *string `json:"phone_number"`
	Website      *string `json:"website"`
}

// StoreRefSchema carries a store id in a request body for the
// favorite-store association endpoints.
type StoreRefSchema struct {
	RecordStoreID string `json:"record_store_id" validate:"required"`
}
