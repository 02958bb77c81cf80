package schema

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is a registered user. Favorites is ordered and holds no duplicates.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Favorites    []string  `json:"favorites"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a Account) Clone() Account {
	c := a
	c.Favorites = cloneStrings(a.Favorites)
	return c
}

// View is the public projection of an account.
func (a Account) View() AccountView {
	return AccountView{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		Favorites: cloneStrings(a.Favorites),
	}
}

type AccountView struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Role      Role     `json:"role"`
	Favorites []string `json:"favorites"`
}

type AccountInput struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Principal is the authenticated caller handed over by token verification.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
