package model

import "time"

const (
	RoleMember        = "Membro"
	RoleAdministrator = "Administrador"
)

type User struct {
	ID           uint64    `gorm:"primaryKey"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	Email        string    `gorm:"uniqueIndex;size:120;not null"`
	Phone        *string   `gorm:"size:32"`
	// ISO yyyy-mm-dd; stored as text so it round-trips the API unchanged
	BirthDate    string    `gorm:"size:10;not null"`
	Role         string    `gorm:"size:20;not null;default:Membro"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection sent to clients. The password hash never
// leaves the model layer.
type PublicUser struct {
	ID        uint64  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	BirthDate string  `json:"birth_date"`
	Role      string  `json:"role"`
}

func (u *User) Public() PublicUser {
	role := u.Role
	if role == "" {
		role = RoleMember
	}
	return PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		BirthDate: u.BirthDate,
		Role:      role,
	}
}
