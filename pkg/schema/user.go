// Package schema defines the data structures shared by the GamingTech services,
// the record store file and the SDK.
package schema

import "time"

// Role represents a user's access level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserRecord is a stored account entry. Email is the unique key and is
// compared exactly as stored.
type UserRecord struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"createdAt"`
	Role         Role      `json:"role"`
}

// PublicUser is a UserRecord without its password hash. It is the only user
// shape that leaves the Account Service.
type PublicUser struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Role      Role      `json:"role"`
}

// Public strips the password hash.
func (u UserRecord) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Role:      u.Role,
	}
}

// UserFile is the on-disk layout of the record store: {"users": [...]}.
type UserFile struct {
	Users []UserRecord `json:"users"`
}

// FindByEmail returns the index of the record with the given email, or -1.
func (f *UserFile) FindByEmail(email string) int {
	for i := range f.Users {
		if f.Users[i].Email == email {
			return i
		}
	}
	return -1
}

// Claims is the decoded payload of a session token.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
