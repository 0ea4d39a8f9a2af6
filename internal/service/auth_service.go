package service

import (
	"errors"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/repository"
)

// builtinAccount is a hardcoded credential. Plaintext by design of the
// system being replaced; documented as a known weakness, not hardened here.
type builtinAccount struct {
	email    string
	password string
	role     string
	name     string
}

var builtinAccounts = []builtinAccount{
	{email: "admin@exemplo.com", password: "123456", role: "admin", name: "Administrador"},
	{email: "ti@exemplo.com", password: "123456", role: "admin", name: "Administrador TI"},
	{email: "usuario@exemplo.com", password: "123456", role: "user", name: "Usuário Padrão"},
	{email: "user@exemplo.com", password: "123456", role: "user", name: "Usuário Comum"},
}

type AuthService struct {
	users     *repository.UserRepo
	jwtSecret string
}

func NewAuthService(users *repository.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// SessionUser is the authenticated identity echoed back to clients.
type SessionUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Base  string `json:"base,omitempty"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// Login checks the fixed allow-list first, then scans the user table in
// stored order; the first record with matching email and password wins.
// Accounts from the table always get the "user" role.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	for _, acc := range builtinAccounts {
		if acc.email == email && acc.password == password {
			return s.issue(SessionUser{Email: email, Role: acc.role, Name: acc.name})
		}
	}

	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	// Email is supposed to be unique, but the table is not guaranteed to be:
	// take the first match in table order.
	for _, u := range users {
		if u.Email == email && u.Password == password {
			return s.issue(SessionUser{
				Email: u.Email,
				Role:  "user",
				Name:  u.DisplayName(),
				Base:  u.Base,
			})
		}
	}
	return nil, errors.New("invalid credentials")
}

func (s *AuthService) issue(user SessionUser) (*AuthResult, error) {
	token, err := auth.GenerateToken(s.jwtSecret, user.Email, user.Role, user.Name, user.Base)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
