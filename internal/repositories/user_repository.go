package repositories

import "vinylswarm/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll(limit, offset int) ([]models.User, error)
	GetByID(id string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) (int64, error)
}
