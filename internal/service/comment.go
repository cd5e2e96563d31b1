package service

import (
	"errors"
	"strings"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/google/uuid"
)

const (
	CAT_MIN = 1
	CAT_MAX = 27
)

// CommentService carries the comment operations: create, fetch, list,
// delete and like/unlike. Authorization lives here, not in handlers:
// delete goes through the canModify predicate, and the like operations
// rely on the store keeping count and liker set consistent.
type CommentService struct {
	comments store.CommentStore
	users    store.UserStore
}

func New(comments store.CommentStore, users store.UserStore) *CommentService {
	return &CommentService{comments: comments, users: users}
}

func (s *CommentService) Create(authorID uuid.UUID, text string, cat *int) (models.Comment, error) {
	if authorID == uuid.Nil {
		return models.Comment{}, api_error.Unauthenticated
	}

	if strings.TrimSpace(text) == "" {
		return models.Comment{}, api_error.EmptyText
	}

	if cat != nil && (*cat < CAT_MIN || *cat > CAT_MAX) {
		return models.Comment{}, api_error.InvalidCat
	}

	// The author reference must resolve at creation time.
	if _, err := s.users.FindByID(authorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, api_error.Unauthenticated
		}
		return models.Comment{}, err
	}

	comment := models.Comment{
		Text:   text,
		UserID: authorID,
		Cat:    cat,
	}

	if err := s.comments.Insert(&comment); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// Get returns a comment together with its author's record, resolved
// for display.
func (s *CommentService) Get(commentID int64) (models.Comment, models.User, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Comment{}, models.User{}, api_error.CommentNotFound
		}
		return models.Comment{}, models.User{}, err
	}

	author, err := s.users.FindByID(comment.UserID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.Comment{}, models.User{}, err
	}

	return comment, author, nil
}

func (s *CommentService) ListIDs() ([]int64, error) {
	return s.comments.ListIDs()
}

func (s *CommentService) Delete(requesterID uuid.UUID, commentID int64) error {
	if requesterID == uuid.Nil {
		return api_error.Unauthenticated
	}

	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return api_error.CommentNotFound
		}
		return err
	}

	allowed, err := s.canModify(requesterID, &comment)
	if err != nil {
		return err
	}
	if !allowed {
		return api_error.NotOwnerOrAdmin
	}

	return s.comments.Delete(commentID)
}

func (s *CommentService) AddLike(requesterID uuid.UUID, commentID int64) (models.Comment, error) {
	if requesterID == uuid.Nil {
		return models.Comment{}, api_error.Unauthenticated
	}

	comment, err := s.comments.AddLike(commentID, requesterID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Comment{}, api_error.CommentNotFound
	case errors.Is(err, store.ErrAlreadyLiked):
		return models.Comment{}, api_error.AlreadyLiked
	case err != nil:
		return models.Comment{}, err
	}

	return comment, nil
}

func (s *CommentService) RemoveLike(requesterID uuid.UUID, commentID int64) (models.Comment, error) {
	if requesterID == uuid.Nil {
		return models.Comment{}, api_error.Unauthenticated
	}

	comment, err := s.comments.RemoveLike(commentID, requesterID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.Comment{}, api_error.CommentNotFound
	case errors.Is(err, store.ErrNotLiked):
		return models.Comment{}, api_error.NotInLikes
	case err != nil:
		return models.Comment{}, err
	}

	return comment, nil
}

// canModify is the single authorization predicate for comment
// mutation: the owner may always modify, an admin may override.
func (s *CommentService) canModify(requesterID uuid.UUID, comment *models.Comment) (bool, error) {
	if comment.IsOwnedBy(requesterID) {
		return true, nil
	}

	requester, err := s.users.FindByID(requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return requester.IsAdmin, nil
}
