package models

// Bases are the fixed organizational tags a user account can be assigned to.
var Bases = []string{"Lauro de Freitas", "Barros Reis", "Feira de São Joaquim", "Galpão"}

func ValidBase(base string) bool {
	for _, b := range Bases {
		if b == base {
			return true
		}
	}
	return false
}

// User is an account managed by an administrator. Passwords are stored in
// plaintext: admins view and edit them in place, and the access gate compares
// them byte-for-byte. A known weakness of the system, not a feature.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Base      string `json:"base"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Base      string `json:"base"`
	CreatedAt string `json:"createdAt"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Base:      u.Base,
		CreatedAt: u.CreatedAt,
	}
}

// DefaultUsers are merged into the user table at startup, each only when its
// email is not already present.
func DefaultUsers() []User {
	return []User{
		{
			ID:        "default-marlene",
			FirstName: "Marlene",
			LastName:  "Santos",
			Email:     "marlene@laticiniossantana.com.br",
			Base:      "Lauro de Freitas",
			Password:  "221224Ls",
			CreatedAt: "2024-01-01T00:00:00.000Z",
		},
		{
			ID:        "default-br",
			FirstName: "BR",
			LastName:  "User",
			Email:     "br@laticiniossantana.com.br",
			Base:      "Barros Reis",
			Password:  "221224Ls",
			CreatedAt: "2024-01-01T00:00:00.000Z",
		},
		{
			ID:        "default-fsj",
			FirstName: "FSJ",
			LastName:  "User",
			Email:     "fsj@laticiniossantana.com.br",
			Base:      "Feira de São Joaquim",
			Password:  "221224Ls",
			CreatedAt: "2024-01-01T00:00:00.000Z",
		},
		{
			ID:        "default-admin",
			FirstName: "Admin",
			LastName:  "User",
			Email:     "admin@laticiniossantana.com.br",
			Base:      "Galpão",
			Password:  "admin123Ls",
			CreatedAt: "2024-01-01T00:00:00.000Z",
		},
		{
			ID:        "default-jane",
			FirstName: "Jane",
			LastName:  "Silva",
			Email:     "jane@laticiniossantana.com.br",
			Base:      "Lauro de Freitas",
			Password:  "221224Ls",
			CreatedAt: "2024-01-01T00:00:00.000Z",
		},
	}
}
