package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Estados de cuenta. Los usuarios nuevos quedan en pending hasta que un admin
// los apruebe.
const (
	UserStatusActive  = "active"
	UserStatusPending = "pending"
	UserStatusPaused  = "paused"
)

// User representa un usuario del sistema. No puede eliminarse mientras el libro
// de movimientos lo referencie (RESTRICT a nivel de store).
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin, operator
	Status       string // active, pending, paused
	CreatedAt    time.Time
}
