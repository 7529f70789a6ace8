package services

import (
	"vinylswarm/internal/apperrors"
	"vinylswarm/internal/models"
	"vinylswarm/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users.
type UserService struct {
	repo       repositories.UserRepository
	collection repositories.CollectionRepository
	wishlist   repositories.WishlistRepository
	favorites  repositories.FavoriteStoreRepository
}

// NewUserService creates a new UserService. The association repositories are
// needed so deleting a user also clears their join rows.
func NewUserService(
	repo repositories.UserRepository,
	collection repositories.CollectionRepository,
	wishlist repositories.WishlistRepository,
	favorites repositories.FavoriteStoreRepository,
) *UserService {
	return &UserService{
		repo:       repo,
		collection: collection,
		wishlist:   wishlist,
		favorites:  favorites,
	}
}

// hashPassword bcrypts a plaintext password for storage.
func hashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ListUsers retrieves a page of users ordered by user_name, stripped of
// password hashes. The default page size for users is 5.
func (s *UserService) ListUsers(opts models.FilterOptions) ([]models.PublicUser, error) {
	limit, offset := opts.Window(5)
	users, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	publicUsers := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		publicUsers = append(publicUsers, u.ToPublic())
	}
	return publicUsers, nil
}

// GetUser retrieves a single user by id.
func (s *UserService) GetUser(id string) (*models.PublicUser, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("user_id %s not found", id)
		}
		return nil, apperrors.Store(err)
	}
	public := user.ToPublic()
	return &public, nil
}

// CreateUser registers a new user, hashing the supplied plaintext password
// before storage. A duplicate user_name or email maps to a conflict.
func (s *UserService) CreateUser(body models.CreateUserSchema) (*models.PublicUser, error) {
	hashed, err := hashPassword(body.UserPassword)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	user := models.User{
		UserName:      body.UserName,
		UserFirstName: body.UserFirstName,
		UserLastName:  body.UserLastName,
		UserEmail:     body.UserEmail,
		UserPassword:  hashed,
	}
	if err := s.repo.Create(&user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.Conflictf("user_name %s already exists", body.UserName)
		}
		return nil, apperrors.Store(err)
	}

	public := user.ToPublic()
	return &public, nil
}

// UpdateUser patch-merges the supplied fields over the stored user and
// writes every field back. A supplied password is re-hashed; an absent one
// keeps the stored hash.
func (s *UserService) UpdateUser(id string, body models.UpdateUserSchema) (*models.PublicUser, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("user id: %s not found", id)
		}
		return nil, apperrors.Store(err)
	}

	if body.UserName != nil {
		user.UserName = *body.UserName
	}
	if body.UserFirstName != nil {
		user.UserFirstName = *body.UserFirstName
	}
	if body.UserLastName != nil {
		user.UserLastName = *body.UserLastName
	}
	if body.UserEmail != nil {
		user.UserEmail = *body.UserEmail
	}
	if body.UserPassword != nil {
		hashed, err := hashPassword(*body.UserPassword)
		if err != nil {
			return nil, apperrors.Store(err)
		}
		user.UserPassword = hashed
	}

	if err := s.repo.Update(user); err != nil {
		return nil, apperrors.Store(err)
	}

	public := user.ToPublic()
	return &public, nil
}

// DeleteUser removes a user and every association row that references them.
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.collection.DeleteAllByUser(id); err != nil {
		return apperrors.Store(err)
	}
	if _, err := s.wishlist.DeleteAllByUser(id); err != nil {
		return apperrors.Store(err)
	}
	if _, err := s.favorites.DeleteAllByUser(id); err != nil {
		return apperrors.Store(err)
	}

	rowsAffected, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.Store(err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("user id: %s not found", id)
	}
	return nil
}
