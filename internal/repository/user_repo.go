package repository

import (
	"encoding/json"
	"log"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/store"
)

type UserRepo struct {
	store *store.Store
}

func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{store: s}
}

// List returns the user table in stored order.
func (r *UserRepo) List() ([]models.User, error) {
	raw, err := r.store.Read(store.UsersSlot)
	if err != nil {
		return nil, err
	}
	return decodeUsers(raw), nil
}

// SaveAll rewrites the whole user table.
func (r *UserRepo) SaveAll(users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Write(store.UsersSlot, data)
}

func (r *UserRepo) Append(user models.User) error {
	users, err := r.List()
	if err != nil {
		return err
	}
	return r.SaveAll(append(users, user))
}

// Update replaces the user with the same id in place. Returns false when the
// id was not present.
func (r *UserRepo) Update(user models.User) (bool, error) {
	users, err := r.List()
	if err != nil {
		return false, err
	}
	found := false
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			found = true
		}
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(users)
}

func (r *UserRepo) Remove(id string) (bool, error) {
	users, err := r.List()
	if err != nil {
		return false, err
	}
	kept := make([]models.User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return false, nil
	}
	return true, r.SaveAll(kept)
}

func decodeUsers(raw []byte) []models.User {
	if len(raw) == 0 {
		return []models.User{}
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		log.Printf("Warning: malformed %s slot, treating as empty: %v", store.UsersSlot, err)
		return []models.User{}
	}
	return users
}
