package repo

import (
	"errors"

	"github.com/rkravchenko/bulletin-board/internal/models"
)

var (
	ErrBulletinNotFound = errors.New("bulletin not found")
	ErrDuplicateHeader  = errors.New("bulletin header already exists")
)

type BulletinRepository interface {
	GetByID(id int) (models.Bulletin, error)
	Create(b models.Bulletin) (models.Bulletin, error)
	Delete(id int) error
}
