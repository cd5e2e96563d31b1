package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Comment is the storage shape of a comment. liked_by holds the set of
// user ids that have liked the comment; like_count must always equal
// its cardinality, which the store guarantees by mutating both in a
// single statement.
type Comment struct {
	ID           int64          `db:"id" json:"id"`
	Text         string         `db:"text" json:"text"`
	UserID       uuid.UUID      `db:"user_id" json:"user"`
	Cat          *int           `db:"cat" json:"cat,omitempty"`
	LikeCount    int            `db:"like_count" json:"-"`
	LikedBy      pq.StringArray `db:"liked_by" json:"-"`
	CreationDate time.Time      `db:"creation_date" json:"creation_date"`
}

type Likes struct {
	Count int         `json:"count"`
	Users []uuid.UUID `json:"users"`
}

// CommentView is the wire shape of a comment, with the likes facet
// folded into a single object.
type CommentView struct {
	ID           int64     `json:"id"`
	Text         string    `json:"text"`
	UserID       uuid.UUID `json:"user"`
	Cat          *int      `json:"cat,omitempty"`
	Likes        Likes     `json:"likes"`
	CreationDate time.Time `json:"creation_date"`
}

func (c *Comment) View() CommentView {
	users := make([]uuid.UUID, 0, len(c.LikedBy))
	for _, raw := range c.LikedBy {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		users = append(users, id)
	}

	return CommentView{
		ID:     c.ID,
		Text:   c.Text,
		UserID: c.UserID,
		Cat:    c.Cat,
		Likes: Likes{
			Count: c.LikeCount,
			Users: users,
		},
		CreationDate: c.CreationDate,
	}
}

func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// IsLikedBy reports whether userID is already in the liker set.
func (c *Comment) IsLikedBy(userID uuid.UUID) bool {
	for _, raw := range c.LikedBy {
		if raw == userID.String() {
			return true
		}
	}
	return false
}
