package services_test

import (
	"vinylswarm/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(limit, offset int) ([]models.User, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecordRepository is a mock implementation of
// repositories.RecordRepository.
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) GetAll(limit, offset int) ([]models.Record, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByID(id string) (*models.Record, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Record), args.Error(1)
}

func (m *MockRecordRepository) GetByIDs(ids []string) ([]models.Record, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Record), args.Error(1)
}

func (m *MockRecordRepository) Create(record *models.Record) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRecordRepository) Update(record *models.Record) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockRecordRepository) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository is a mock implementation of
// repositories.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) GetAll(limit, offset int) ([]models.RecordStore, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]models.RecordStore), args.Error(1)
}

func (m *MockStoreRepository) GetByID(id string) (*models.RecordStore, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecordStore), args.Error(1)
}

func (m *MockStoreRepository) GetByIDs(ids []string) ([]models.RecordStore, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.RecordStore), args.Error(1)
}

func (m *MockStoreRepository) FindByIdentity(name, address, city, state string) (*models.RecordStore, error) {
	args := m.Called(name, address, city, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecordStore), args.Error(1)
}

func (m *MockStoreRepository) Create(store *models.RecordStore) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Update(store *models.RecordStore) error {
	args := m.Called(store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCollectionRepository is a mock implementation of
// repositories.CollectionRepository.
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) RecordIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCollectionRepository) Insert(link *models.UserRecord) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockCollectionRepository) ExistsPair(userID, recordID string) (bool, error) {
	args := m.Called(userID, recordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCollectionRepository) DeletePair(userID, recordID string) (int64, error) {
	args := m.Called(userID, recordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollectionRepository) DeleteAllByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockWishlistRepository is a mock implementation of
// repositories.WishlistRepository.
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) RecordIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWishlistRepository) Insert(entry *models.UserWishlist) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWishlistRepository) ExistsPair(userID, recordID string) (bool, error) {
	args := m.Called(userID, recordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWishlistRepository) DeletePair(userID, recordID string) (int64, error) {
	args := m.Called(userID, recordID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishlistRepository) DeleteAllByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFavoriteStoreRepository is a mock implementation of
// repositories.FavoriteStoreRepository.
type MockFavoriteStoreRepository struct {
	mock.Mock
}

func (m *MockFavoriteStoreRepository) StoreIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFavoriteStoreRepository) Insert(link *models.UserRecordStore) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockFavoriteStoreRepository) ExistsPair(userID, storeID string) (bool, error) {
	args := m.Called(userID, storeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteStoreRepository) DeletePair(userID, storeID string) (int64, error) {
	args := m.Called(userID, storeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFavoriteStoreRepository) DeleteAllByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLibraryEvent(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}
