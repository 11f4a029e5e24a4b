package repo

import (
	"time"

	"github.com/rkravchenko/bulletin-board/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository
// used by the handler test suites.
type InMemoryUserRepository struct {
	users     []models.User
	nextID    int
	bulletins *InMemoryBulletinRepository
}

// AttachBulletins wires the bulletin store so that deleting a user also
// removes the user's bulletins, mirroring the ON DELETE CASCADE foreign key
// the Postgres schema enforces.
func (r *InMemoryUserRepository) AttachBulletins(b *InMemoryBulletinRepository) {
	r.bulletins = b
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{nextID: 1}
}

func (r *InMemoryUserRepository) GetByID(id int) (models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByUsername(username string) (models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Create(u models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return models.User{}, ErrDuplicateUsername
		}
	}

	u.ID = r.nextID
	r.nextID++
	u.CreationTime = time.Now().UTC()
	r.users = append(r.users, u)
	return u, nil
}

func (r *InMemoryUserRepository) Update(u models.User) (models.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username && existing.ID != u.ID {
			return models.User{}, ErrDuplicateUsername
		}
	}
	for i, existing := range r.users {
		if existing.ID == u.ID {
			u.CreationTime = existing.CreationTime
			r.users[i] = u
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *InMemoryUserRepository) Delete(id int) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			if r.bulletins != nil {
				r.bulletins.deleteByUserID(id)
			}
			return nil
		}
	}
	return ErrUserNotFound
}

// Count reports the number of stored users.
func (r *InMemoryUserRepository) Count() int {
	return len(r.users)
}

// Clear removes all stored users.
func (r *InMemoryUserRepository) Clear() {
	r.users = nil
	r.nextID = 1
}
