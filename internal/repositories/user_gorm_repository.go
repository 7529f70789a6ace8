package repositories

import (
	"vinylswarm/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// GetAll retrieves a page of users ordered by user_name.
func (r *GORMUserRepository) GetAll(limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("user_name").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves a user by their ID. A malformed id simply matches no
// row and surfaces as gorm.ErrRecordNotFound.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user, generating its id when absent.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	return r.db.Create(user).Error
}

// Update writes every field of the user back in one statement.
func (r *GORMUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user by id and returns the affected-row count.
func (r *GORMUserRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.User{}, "user_id = ?", id)
	return res.RowsAffected, res.Error
}
