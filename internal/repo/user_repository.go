package repo

import (
	"errors"

	"github.com/rkravchenko/bulletin-board/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	GetByID(id int) (models.User, error)
	GetByUsername(username string) (models.User, error)
	Create(u models.User) (models.User, error)
	Update(u models.User) (models.User, error)
	Delete(id int) error
}
