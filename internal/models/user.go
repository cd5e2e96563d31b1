package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name" binding:"required"`
	Email        string    `db:"email" json:"email" binding:"required,email"`
	Password     string    `db:"password_hash" json:"password" binding:"required"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	Avatar       *string   `db:"avatar" json:"avatar"`
	CreationDate time.Time `db:"creation_date" json:"creation_date"`
}

type UserForLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserView is the wire shape of a user record. The password hash never
// leaves the server.
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
	Avatar       *string   `json:"avatar"`
	CreationDate time.Time `json:"creation_date"`
}

func (u *User) View() UserView {
	return UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		IsAdmin:      u.IsAdmin,
		Avatar:       u.Avatar,
		CreationDate: u.CreationDate,
	}
}
