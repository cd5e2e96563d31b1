package store

import (
	"errors"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrAlreadyLiked   = errors.New("comment already liked by this user")
	ErrNotLiked       = errors.New("user has not liked this comment")
	ErrDuplicateEmail = errors.New("email is already taken")
)

// UserStore is the identity store boundary: user records keyed by uuid,
// with a unique email.
type UserStore interface {
	Insert(user *models.User) error
	FindByID(id uuid.UUID) (models.User, error)
	FindByEmail(email string) (models.User, error)
	All() ([]models.User, error)
	UpdatePassword(email string, passwordHash string) error
	UpdateAvatar(id uuid.UUID, avatar *string) error
}

// CommentStore is the persistence boundary for comments. AddLike and
// RemoveLike must keep like_count equal to the size of the liker set
// even under concurrent calls, so implementations perform them as a
// single conditional update.
type CommentStore interface {
	Insert(comment *models.Comment) error
	FindByID(id int64) (models.Comment, error)
	ListIDs() ([]int64, error)
	Delete(id int64) error
	AddLike(id int64, userID uuid.UUID) (models.Comment, error)
	RemoveLike(id int64, userID uuid.UUID) (models.Comment, error)
}

// ResetCodeStore holds outstanding password-reset codes keyed by email.
type ResetCodeStore interface {
	Put(reset *models.PasswordReset) error
	Find(email string) (models.PasswordReset, error)
	Delete(email string) error
}
