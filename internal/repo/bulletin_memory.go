package repo

import (
	"time"

	"github.com/rkravchenko/bulletin-board/internal/models"
)

// InMemoryBulletinRepository is an in-memory implementation of
// BulletinRepository. Owner usernames are resolved through the user
// repository at read time, mirroring the join the Postgres implementation
// performs.
type InMemoryBulletinRepository struct {
	users     UserRepository
	bulletins []models.Bulletin
	nextID    int
}

func NewInMemoryBulletinRepository(users UserRepository) *InMemoryBulletinRepository {
	return &InMemoryBulletinRepository{users: users, nextID: 1}
}

func (r *InMemoryBulletinRepository) GetByID(id int) (models.Bulletin, error) {
	for _, b := range r.bulletins {
		if b.ID == id {
			// A bulletin whose owner no longer resolves is an invalid
			// state; the store never serves it.
			u, err := r.users.GetByID(b.UserID)
			if err != nil {
				return models.Bulletin{}, ErrBulletinNotFound
			}
			b.OwnerUsername = u.Username
			return b, nil
		}
	}
	return models.Bulletin{}, ErrBulletinNotFound
}

func (r *InMemoryBulletinRepository) Create(b models.Bulletin) (models.Bulletin, error) {
	for _, existing := range r.bulletins {
		if existing.Header == b.Header {
			return models.Bulletin{}, ErrDuplicateHeader
		}
	}

	b.ID = r.nextID
	r.nextID++
	b.CreationTime = time.Now().UTC()
	r.bulletins = append(r.bulletins, b)
	return b, nil
}

func (r *InMemoryBulletinRepository) Delete(id int) error {
	for i, b := range r.bulletins {
		if b.ID == id {
			r.bulletins = append(r.bulletins[:i], r.bulletins[i+1:]...)
			return nil
		}
	}
	return ErrBulletinNotFound
}

func (r *InMemoryBulletinRepository) deleteByUserID(userID int) {
	kept := r.bulletins[:0]
	for _, b := range r.bulletins {
		if b.UserID != userID {
			kept = append(kept, b)
		}
	}
	r.bulletins = kept
}

// Count reports the number of stored bulletins.
func (r *InMemoryBulletinRepository) Count() int {
	return len(r.bulletins)
}

// Clear removes all stored bulletins.
func (r *InMemoryBulletinRepository) Clear() {
	r.bulletins = nil
	r.nextID = 1
}
