package service

import (
	"errors"
	"time"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/repository"
)

type UserService struct {
	users *repository.UserRepo
}

func NewUserService(users *repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// SeedDefaults merges the built-in accounts into the user table, each only
// when its email is not already present. Run once at startup; rerunning is a
// no-op.
func (s *UserService) SeedDefaults() error {
	existing, err := s.users.List()
	if err != nil {
		return err
	}
	present := map[string]bool{}
	for _, u := range existing {
		present[u.Email] = true
	}
	var toAdd []models.User
	for _, u := range models.DefaultUsers() {
		if !present[u.Email] {
			toAdd = append(toAdd, u)
		}
	}
	if len(toAdd) == 0 {
		return nil
	}
	return s.users.SaveAll(append(toAdd, existing...))
}

// List returns the full user table. Passwords are included: admins view and
// edit them in place, matching the system this replaces.
func (s *UserService) List() ([]models.User, error) {
	return s.users.List()
}

type UserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Base      string `json:"base"`
	Password  string `json:"password"`
}

func (in UserInput) validate() error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Base == "" || in.Password == "" {
		return errors.New("Todos os campos são obrigatórios")
	}
	if !models.ValidBase(in.Base) {
		return errors.New("base inválida")
	}
	return nil
}

// Create adds a user. Email uniqueness is enforced here, at creation only.
func (s *UserService) Create(in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.users.List()
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Email == in.Email {
			return nil, errors.New("Este email já está em uso")
		}
	}
	now := time.Now().UTC()
	user := models.User{
		ID:        nextTimeID(now, func(id string) bool { return userIDExists(existing, id) }),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Base:      in.Base,
		Password:  in.Password,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := s.users.Append(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update edits a user in place. Deliberately no email-uniqueness check: the
// table only guards emails at creation time.
func (s *UserService) Update(id string, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.users.List()
	if err != nil {
		return nil, err
	}
	var current *models.User
	for i := range existing {
		if existing[i].ID == id {
			current = &existing[i]
			break
		}
	}
	if current == nil {
		return nil, ErrNotFound
	}
	updated := models.User{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Base:      in.Base,
		Password:  in.Password,
		CreatedAt: current.CreatedAt,
	}
	if _, err := s.users.Update(updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *UserService) Delete(id string) error {
	found, err := s.users.Remove(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func userIDExists(users []models.User, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
