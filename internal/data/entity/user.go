package entity

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RolePartner UserRole = "partner"
)

type User struct {
	Base
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         UserRole   `db:"role"`
	PartnerID    *uuid.UUID `db:"partner_id"` // set for partner-scoped users
	IsActive     bool       `db:"is_active"`
}
