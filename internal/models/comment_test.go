package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCommentView(t *testing.T) {
	owner := uuid.New()
	liker := uuid.New()
	cat := 7

	comment := Comment{
		ID:        3,
		Text:      "cute cat",
		UserID:    owner,
		Cat:       &cat,
		LikeCount: 1,
		LikedBy:   pq.StringArray{liker.String()},
	}

	view := comment.View()
	assert.Equal(t, int64(3), view.ID)
	assert.Equal(t, owner, view.UserID)
	assert.Equal(t, 1, view.Likes.Count)
	assert.Equal(t, []uuid.UUID{liker}, view.Likes.Users)
	assert.Equal(t, &cat, view.Cat)
}

func TestCommentViewSkipsUnparsableLikers(t *testing.T) {
	comment := Comment{
		LikeCount: 1,
		LikedBy:   pq.StringArray{"garbage"},
	}

	view := comment.View()
	assert.Empty(t, view.Likes.Users)
}

func TestCommentIsLikedBy(t *testing.T) {
	liker := uuid.New()
	comment := Comment{LikedBy: pq.StringArray{liker.String()}}

	assert.True(t, comment.IsLikedBy(liker))
	assert.False(t, comment.IsLikedBy(uuid.New()))
}

func TestCommentIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	comment := Comment{UserID: owner}

	assert.True(t, comment.IsOwnedBy(owner))
	assert.False(t, comment.IsOwnedBy(uuid.New()))
}
