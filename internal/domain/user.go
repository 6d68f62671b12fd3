package domain

import "time"

// UserRole роль пользователя в системе
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User учётная запись; для бизнес-логики важна только как субъект авторизации
type User struct {
	ID           int64
	Name         string
	Phone        string
	Email        *string
	Role         UserRole
	PasswordHash *string
	CreatedAt    time.Time
}

// IsAdmin возвращает true, если у пользователя роль администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
