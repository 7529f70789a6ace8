package services

import (
	"log"

	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"
	"vinylswarm/internal/repositories"
)

// EventPublisher publishes library activity to a message broker. A nil
// publisher disables events.
type EventPublisher interface {
	PublishLibraryEvent(event map[string]interface{}) error
}

// LibraryService handles the association flows linking users to records
// (collection and wishlist) and to record stores (favorites). Every
// operation verifies the owning user first; the check and the dependent
// insert are separate statements, so a user deleted in between surfaces as
// a store failure rather than a not-found.
type LibraryService struct {
	users      repositories.UserRepository
	records    repositories.RecordRepository
	stores     repositories.StoreRepository
	collection repositories.CollectionRepository
	wishlist   repositories.WishlistRepository
	favorites  repositories.FavoriteStoreRepository
	events     EventPublisher
}

// NewLibraryService creates a new LibraryService. events may be nil.
func NewLibraryService(
	users repositories.UserRepository,
	records repositories.RecordRepository,
	stores repositories.StoreRepository,
	collection repositories.CollectionRepository,
	wishlist repositories.WishlistRepository,
	favorites repositories.FavoriteStoreRepository,
	events EventPublisher,
) *LibraryService {
	return &LibraryService{
		users:      users,
		records:    records,
		stores:     stores,
		collection: collection,
		wishlist:   wishlist,
		favorites:  favorites,
		events:     events,
	}
}

// ensureUser verifies the owning user exists before an association flow.
func (s *LibraryService) ensureUser(userID string) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("user_id %s not found", userID)
		}
		return nil, apperrors.Store(err)
	}
	return user, nil
}

// ensureRecord verifies a referenced record exists.
func (s *LibraryService) ensureRecord(recordID string) (*models.Record, error) {
	record, err := s.records.GetByID(recordID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("record_id: %s not found", recordID)
		}
		return nil, apperrors.Store(err)
	}
	return record, nil
}

// publish fires a library event when a broker is wired; failures are logged
// and never surfaced to the request.
func (s *LibraryService) publish(event map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishLibraryEvent(event); err != nil {
		log.Printf("Failed to publish library event: %v", err)
	}
}

// --- collection ---

// GetUserRecords resolves the user's collected records. An empty collection
// returns (nil, nil).
func (s *LibraryService) GetUserRecords(userID string) ([]models.Record, error) {
	if _, err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	ids, err := s.collection.RecordIDs(userID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := s.records.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return records, nil
}

// CollectRecord creates a new record and attaches it to the user's
// collection in one call sequence.
func (s *LibraryService) CollectRecord(userID string, body models.CreateRecordSchema) (*models.UserRecord, *models.Record, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}

	record := newRecordFromSchema(body)
	if err := s.records.Create(&record); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, nil, apperrors.Conflictf("record %s by %s already exists", body.Title, body.Artist)
		}
		return nil, nil, apperrors.Store(err)
	}

	link := models.UserRecord{UserID: user.UserID, RecordID: record.RecordID}
	if err := s.collection.Insert(&link); err != nil {
		return nil, nil, apperrors.Storef("error when collecting records for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":     "record_collected",
		"user_id":   user.UserID,
		"record_id": record.RecordID,
		"title":     record.Title,
		"artist":    record.Artist,
	})
	return &link, &record, nil
}

// AttachRecord attaches an existing record to the user's collection. An
// already-collected record is a conflict.
func (s *LibraryService) AttachRecord(userID, recordID string) (*models.UserRecord, *models.Record, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}
	record, err := s.ensureRecord(recordID)
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.collection.ExistsPair(userID, recordID)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	if exists {
		return nil, nil, apperrors.Conflictf("record_id: %s already in collection", recordID)
	}

	link := models.UserRecord{UserID: user.UserID, RecordID: record.RecordID}
	if err := s.collection.Insert(&link); err != nil {
		return nil, nil, apperrors.Storef("error when collecting records for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":     "record_collected",
		"user_id":   user.UserID,
		"record_id": record.RecordID,
		"title":     record.Title,
		"artist":    record.Artist,
	})
	return &link, record, nil
}

// DetachRecord removes exactly one record from the user's collection.
func (s *LibraryService) DetachRecord(userID, recordID string) error {
	if _, err := s.ensureUser(userID); err != nil {
		return err
	}
	if _, err := s.ensureRecord(recordID); err != nil {
		return err
	}

	rowsAffected, err := s.collection.DeletePair(userID, recordID)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("no user_records found for user_id: %s and record_id: %s", userID, recordID)
	}
	return nil
}

// ClearRecords removes the user's whole collection.
func (s *LibraryService) ClearRecords(userID string) error {
	if _, err := s.ensureUser(userID); err != nil {
		return err
	}
	rowsAffected, err := s.collection.DeleteAllByUser(userID)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("no records found for user id: %s", userID)
	}
	return nil
}

// --- wishlist ---

// GetWishlist resolves the records on the user's wishlist. An empty
// wishlist returns (nil, nil).
func (s *LibraryService) GetWishlist(userID string) ([]models.Record, error) {
	if _, err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	ids, err := s.wishlist.RecordIDs(userID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := s.records.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return records, nil
}

// WishRecord creates a new record and puts it on the user's wishlist in one
// call sequence.
func (s *LibraryService) WishRecord(userID string, body models.CreateRecordSchema) (*models.UserWishlist, *models.Record, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}

	record := newRecordFromSchema(body)
	if err := s.records.Create(&record); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, nil, apperrors.Conflictf("record %s by %s already exists", body.Title, body.Artist)
		}
		return nil, nil, apperrors.Store(err)
	}

	entry := models.UserWishlist{UserID: user.UserID, RecordID: record.RecordID}
	if err := s.wishlist.Insert(&entry); err != nil {
		return nil, nil, apperrors.Storef("error when wishing record for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":     "record_wished",
		"user_id":   user.UserID,
		"record_id": record.RecordID,
		"title":     record.Title,
		"artist":    record.Artist,
	})
	return &entry, &record, nil
}

// AttachWishlistRecord puts an existing record on the user's wishlist. An
// already-wished record is a conflict.
func (s *LibraryService) AttachWishlistRecord(userID, recordID string) (*models.UserWishlist, *models.Record, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}
	record, err := s.ensureRecord(recordID)
	if err != nil {
		return nil, nil, err
	}

	exists, err := s.wishlist.ExistsPair(userID, recordID)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	if exists {
		return nil, nil, apperrors.Conflictf("record_id: %s already in wishlist", recordID)
	}

	entry := models.UserWishlist{UserID: user.UserID, RecordID: record.RecordID}
	if err := s.wishlist.Insert(&entry); err != nil {
		return nil, nil, apperrors.Storef("error when wishing record for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":     "record_wished",
		"user_id":   user.UserID,
		"record_id": record.RecordID,
		"title":     record.Title,
		"artist":    record.Artist,
	})
	return &entry, record, nil
}

// RemoveWishlistRecord takes exactly one record off the user's wishlist.
func (s *LibraryService) RemoveWishlistRecord(userID, recordID string) error {
	if _, err := s.ensureUser(userID); err != nil {
		return err
	}
	if _, err := s.ensureRecord(recordID); err != nil {
		return err
	}

	rowsAffected, err := s.wishlist.DeletePair(userID, recordID)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("no wishlist entries found for user_id: %s and record_id: %s", userID, recordID)
	}
	return nil
}

// ClearWishlist empties the user's wishlist.
func (s *LibraryService) ClearWishlist(userID string) error {
	if _, err := s.ensureUser(userID); err != nil {
		return err
	}
	rowsAffected, err := s.wishlist.DeleteAllByUser(userID)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("no wishlist entries found for user id: %s", userID)
	}
	return nil
}

// --- favorite stores ---

// GetFavoriteStores resolves the user's favorite record stores. No
// favorites returns (nil, nil).
func (s *LibraryService) GetFavoriteStores(userID string) ([]models.RecordStore, error) {
	if _, err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	ids, err := s.favorites.StoreIDs(userID)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	stores, err := s.stores.GetByIDs(ids)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return stores, nil
}

// FavoriteNewStore creates a new record store and marks it as a favorite of
// the user in one call sequence.
func (s *LibraryService) FavoriteNewStore(userID string, body models.CreateRecordStoreSchema) (*models.UserRecordStore, *models.RecordStore, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}

	store := newStoreFromSchema(body)
	if err := s.stores.Create(&store); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, nil, apperrors.Conflictf("Record store '%s' already exists.", body.StoreName)
		}
		return nil, nil, apperrors.Store(err)
	}

	link := models.UserRecordStore{UserID: user.UserID, RecordStoreID: store.RecordStoreID}
	if err := s.favorites.Insert(&link); err != nil {
		return nil, nil, apperrors.Storef("error when creating record store for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":           "store_favorited",
		"user_id":         user.UserID,
		"record_store_id": store.RecordStoreID,
		"store_name":      store.StoreName,
	})
	return &link, &store, nil
}

// AttachFavoriteStore marks an existing record store as a favorite of the
// user. An already-favorited store is a conflict.
func (s *LibraryService) AttachFavoriteStore(userID, storeID string) (*models.UserRecordStore, *models.RecordStore, error) {
	user, err := s.ensureUser(userID)
	if err != nil {
		return nil, nil, err
	}
	store, err := s.stores.GetByID(storeID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil, apperrors.NotFoundf("record_store_id: %s not found", storeID)
		}
		return nil, nil, apperrors.Store(err)
	}

	exists, err := s.favorites.ExistsPair(userID, storeID)
	if err != nil {
		return nil, nil, apperrors.Store(err)
	}
	if exists {
		return nil, nil, apperrors.Conflictf("record_store_id: %s already in favorites", storeID)
	}

	link := models.UserRecordStore{UserID: user.UserID, RecordStoreID: store.RecordStoreID}
	if err := s.favorites.Insert(&link); err != nil {
		return nil, nil, apperrors.Storef("error when collecting record for user_id: %s, %v", userID, err)
	}

	s.publish(map[string]interface{}{
		"event":           "store_favorited",
		"user_id":         user.UserID,
		"record_store_id": store.RecordStoreID,
		"store_name":      store.StoreName,
	})
	return &link, store, nil
}

// RemoveFavoriteStore removes exactly one store from the user's favorites.
func (s *LibraryService) RemoveFavoriteStore(userID, storeID string) error {
	if _, err := s.ensureUser(userID); err != nil {
		return err
	}

	rowsAffected, err := s.favorites.DeletePair(userID, storeID)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("no record stores found for user_id: %s with record_store_id: %s", userID, storeID)
	}
	return nil
}
