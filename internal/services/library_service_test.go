package services_test

import (
	"testing"

	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"
	"vinylswarm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type libraryMocks struct {
	users      *MockUserRepository
	records    *MockRecordRepository
	stores     *MockStoreRepository
	collection *MockCollectionRepository
	wishlist   *MockWishlistRepository
	favorites  *MockFavoriteStoreRepository
}

func newLibraryServiceWithMocks(events services.EventPublisher) (*services.LibraryService, libraryMocks) {
	m := libraryMocks{
		users:      new(MockUserRepository),
		records:    new(MockRecordRepository),
		stores:     new(MockStoreRepository),
		collection: new(MockCollectionRepository),
		wishlist:   new(MockWishlistRepository),
		favorites:  new(MockFavoriteStoreRepository),
	}
	svc := services.NewLibraryService(m.users, m.records, m.stores, m.collection, m.wishlist, m.favorites, events)
	return svc, m
}

func TestGetUserRecords_UnknownUser(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u9").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetUserRecords("u9")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, apiErr.Kind)
	assert.Equal(t, "user_id u9 not found", apiErr.Message)
}

func TestGetUserRecords_EmptyCollection(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.collection.On("RecordIDs", "u1").Return([]string{}, nil)

	records, err := svc.GetUserRecords("u1")

	assert.NoError(t, err)
	assert.Nil(t, records)
	m.records.AssertNotCalled(t, "GetByIDs", mock.Anything)
}

func TestGetUserRecords_ResolvesRecords(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.collection.On("RecordIDs", "u1").Return([]string{"r1", "r2"}, nil)
	m.records.On("GetByIDs", []string{"r1", "r2"}).Return([]models.Record{
		{RecordID: "r1", Artist: "Can"},
		{RecordID: "r2", Artist: "Neu!"},
	}, nil)

	records, err := svc.GetUserRecords("u1")

	assert.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCollectRecord_CreatesAndAttaches(t *testing.T) {
	publisher := new(MockEventPublisher)
	svc, m := newLibraryServiceWithMocks(publisher)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("Create", mock.AnythingOfType("*models.Record")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Record).RecordID = "r1"
	}).Return(nil)
	m.collection.On("Insert", mock.AnythingOfType("*models.UserRecord")).Return(nil)
	publisher.On("PublishLibraryEvent", mock.AnythingOfType("map[string]interface {}")).Return(nil)

	link, record, err := svc.CollectRecord("u1", models.CreateRecordSchema{
		Artist:         "Can",
		Title:          "Tago Mago",
		Released:       "1971-02-01",
		Label:          "United Artists",
		DurationLength: "01:13:31",
	})

	assert.NoError(t, err)
	assert.Equal(t, "u1", link.UserID)
	assert.Equal(t, "r1", link.RecordID)
	assert.Equal(t, "LP", record.Format)
	publisher.AssertExpectations(t)
}

func TestCollectRecord_NoPublisherIsFine(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("Create", mock.AnythingOfType("*models.Record")).Return(nil)
	m.collection.On("Insert", mock.AnythingOfType("*models.UserRecord")).Return(nil)

	_, _, err := svc.CollectRecord("u1", models.CreateRecordSchema{
		Artist:         "Can",
		Title:          "Tago Mago",
		Released:       "1971-02-01",
		Label:          "United Artists",
		DurationLength: "01:13:31",
	})

	assert.NoError(t, err)
}

func TestAttachRecord_AlreadyCollected(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("GetByID", "r1").Return(&models.Record{RecordID: "r1"}, nil)
	m.collection.On("ExistsPair", "u1", "r1").Return(true, nil)

	_, _, err := svc.AttachRecord("u1", "r1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.Conflict, apiErr.Kind)
	assert.Equal(t, "record_id: r1 already in collection", apiErr.Message)
	m.collection.AssertNotCalled(t, "Insert", mock.Anything)
}

func TestAttachRecord_UnknownRecord(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("GetByID", "r9").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.AttachRecord("u1", "r9")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, apiErr.Kind)
	assert.Equal(t, "record_id: r9 not found", apiErr.Message)
}

func TestDetachRecord_PairAbsent(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("GetByID", "r1").Return(&models.Record{RecordID: "r1"}, nil)
	m.collection.On("DeletePair", "u1", "r1").Return(int64(0), nil)

	err := svc.DetachRecord("u1", "r1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, apiErr.Kind)
	assert.Equal(t, "no user_records found for user_id: u1 and record_id: r1", apiErr.Message)
}

func TestClearRecords_EmptyCollection(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.collection.On("DeleteAllByUser", "u1").Return(int64(0), nil)

	err := svc.ClearRecords("u1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, apiErr.Kind)
	assert.Equal(t, "no records found for user id: u1", apiErr.Message)
}

func TestAttachWishlistRecord_AlreadyWished(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("GetByID", "r1").Return(&models.Record{RecordID: "r1"}, nil)
	m.wishlist.On("ExistsPair", "u1", "r1").Return(true, nil)

	_, _, err := svc.AttachWishlistRecord("u1", "r1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.Conflict, apiErr.Kind)
	assert.Equal(t, "record_id: r1 already in wishlist", apiErr.Message)
}

func TestWishRecord_PublishesEvent(t *testing.T) {
	publisher := new(MockEventPublisher)
	svc, m := newLibraryServiceWithMocks(publisher)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.records.On("Create", mock.AnythingOfType("*models.Record")).Return(nil)
	m.wishlist.On("Insert", mock.AnythingOfType("*models.UserWishlist")).Return(nil)

	var event map[string]interface{}
	publisher.On("PublishLibraryEvent", mock.AnythingOfType("map[string]interface {}")).Run(func(args mock.Arguments) {
		event = args.Get(0).(map[string]interface{})
	}).Return(nil)

	_, _, err := svc.WishRecord("u1", models.CreateRecordSchema{
		Artist:         "Neu!",
		Title:          "Neu! 75",
		Released:       "1975-02-01",
		Label:          "Brain",
		DurationLength: "00:41:52",
	})

	assert.NoError(t, err)
	assert.Equal(t, "record_wished", event["event"])
	assert.Equal(t, "u1", event["user_id"])
}

func TestAttachFavoriteStore_AlreadyFavorited(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.stores.On("GetByID", "s1").Return(&models.RecordStore{RecordStoreID: "s1"}, nil)
	m.favorites.On("ExistsPair", "u1", "s1").Return(true, nil)

	_, _, err := svc.AttachFavoriteStore("u1", "s1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.Conflict, apiErr.Kind)
	assert.Equal(t, "record_store_id: s1 already in favorites", apiErr.Message)
}

func TestRemoveFavoriteStore_PairAbsent(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.favorites.On("DeletePair", "u1", "s1").Return(int64(0), nil)

	err := svc.RemoveFavoriteStore("u1", "s1")

	apiErr := apperrors.From(err)
	assert.Equal(t, apperrors.NotFound, apiErr.Kind)
	assert.Equal(t, "no record stores found for user_id: u1 with record_store_id: s1", apiErr.Message)
}

func TestFavoriteNewStore_CreatesAndAttaches(t *testing.T) {
	svc, m := newLibraryServiceWithMocks(nil)

	m.users.On("GetByID", "u1").Return(&models.User{UserID: "u1"}, nil)
	m.stores.On("Create", mock.AnythingOfType("*models.RecordStore")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.RecordStore).RecordStoreID = "s1"
	}).Return(nil)
	m.favorites.On("Insert", mock.AnythingOfType("*models.UserRecordStore")).Return(nil)

	link, store, err := svc.FavoriteNewStore("u1", models.CreateRecordStoreSchema{
		StoreName:    "Groove Merchant",
		StoreAddress: "687 Haight St",
		StoreCity:    "San Francisco",
		StoreState:   "CA",
		StoreZip:     "94117",
	})

	assert.NoError(t, err)
	assert.Equal(t, "u1", link.UserID)
	assert.Equal(t, "s1", link.RecordStoreID)
	assert.Equal(t, "", store.PhoneNumber)
}
