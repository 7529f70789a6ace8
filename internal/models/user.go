package models

import "time"

// User represents an account that collects records and stores.
// UserPassword holds a bcrypt hash and is never serialized.
type User struct {
	UserID        string    `json:"user_id" gorm:"column:user_id;primaryKey;type:varchar(36)"`
	UserName      string    `json:"user_name" gorm:"column:user_name;uniqueIndex;type:varchar(100)"`
	UserFirstName string    `json:"user_first_name" gorm:"column:user_first_name;type:varchar(100)"`
	UserLastName  string    `json:"user_last_name" gorm:"column:user_last_name;type:varchar(100)"`
	UserEmail     string    `json:"user_email" gorm:"column:user_email;uniqueIndex;type:varchar(255)"`
	UserPassword  string    `json:"-" gorm:"column:user_password;type:varchar(255)"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

// TableName overrides the GORM default.
func (User) TableName() string {
	return "users"
}

// PublicUser is the response shape for a user with the password hash stripped.
type PublicUser struct {
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserFirstName string    `json:"user_first_name"`
	UserLastName  string    `json:"user_last_name"`
	UserEmail     string    `json:"user_email"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPublic converts a stored user into its response shape. Every read
// boundary goes through this so the hash can never leak.
func (u User) ToPublic() PublicUser {
	return PublicUser{
		UserID:        u.UserID,
		UserName:      u.UserName,
		UserFirstName: u.UserFirstName,
		UserLastName:  u.UserLastName,
		UserEmail:     u.UserEmail,
		CreatedAt:     u.CreatedAt,
	}
}

// CreateUserSchema is the request body for registering a new user.
type CreateUserSchema struct {
	UserName      string `json:"user_name" validate:"required,min=3,max=100"`
	UserFirstName string `json:"user_first_name" validate:"required,max=100"`
	UserLastName  string `json:"user_last_name" validate:"required,max=100"`
	UserEmail     string `json:"user_email" validate:"required,email"`
	UserPassword  string `json:"user_password" validate:"required,min=6"`
}

// UpdateUserSchema is the patch body for editing a user. Every field is
// optional; absent fields keep their stored value.
type UpdateUserSchema struct {
	UserName      *string `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserFirstName *string `json:"user_first_name" validate:"omitempty,max=100"`
	UserLastName  *string `json:"user_last_name" validate:"omitempty,max=100"`
	UserEmail     *string `json:"user_email" validate:"omitempty,email"`
	UserPassword  *string `json:"user_password" validate:"omitempty,min=6"`
}
