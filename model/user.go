package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

type User struct {
	Base                   `bson:",inline"`
	Name                   string     `bson:"name" json:"name"`
	Email                  string     `bson:"email" json:"email"`
	Password               string     `bson:"password" json:"-"` // bcrypt hash
	Role                   Role       `bson:"role" json:"role"`
	TwoFactorEnabled       bool       `bson:"twoFactorEnabled" json:"twoFactorEnabled"`
	TwoFactorSecret        string     `bson:"twoFactorSecret,omitempty" json:"-"`
	PendingTwoFactorSecret string     `bson:"pendingTwoFactorSecret,omitempty" json:"-"`
	LastLoginAt            *time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	LastLoginDevice        string     `bson:"lastLoginDevice,omitempty" json:"lastLoginDevice,omitempty"`
}

// NormalizeEmail lower-cases and trims an address for storage and lookup
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
