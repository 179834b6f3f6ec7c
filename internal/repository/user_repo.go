package repository

import (
	"campuspark/internal/db"
	"campuspark/internal/store"
)

type UserRepository interface {
	GetByID(id string) (db.User, bool)
	GetByEmail(email string) (db.User, bool)
	List() []db.User
	Insert(u db.User) db.User
}

type userRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetByID(id string) (db.User, bool) {
	return r.store.GetUser(id)
}

func (r *userRepository) GetByEmail(email string) (db.User, bool) {
	for _, u := range r.store.ListUsers() {
		if u.Email == email {
			return u, true
		}
	}
	return db.User{}, false
}

func (r *userRepository) List() []db.User {
	return r.store.ListUsers()
}

func (r *userRepository) Insert(u db.User) db.User {
	return r.store.InsertUser(u)
}
