package service

import (
	"sync"
	"testing"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/models/api_error"
	"github.com/an1skat/catopia-backend/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserStore struct {
	users map[uuid.UUID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *memUserStore) Insert(user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) FindByID(id uuid.UUID) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *memUserStore) FindByEmail(email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *memUserStore) All() ([]models.User, error) {
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

func (s *memUserStore) UpdatePassword(email string, passwordHash string) error {
	for id, u := range s.users {
		if u.Email == email {
			u.Password = passwordHash
			s.users[id] = u
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memUserStore) UpdateAvatar(id uuid.UUID, avatar *string) error {
	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Avatar = avatar
	s.users[id] = u
	return nil
}

type memCommentStore struct {
	mu       sync.Mutex
	nextID   int64
	comments map[int64]*models.Comment
}

func newMemCommentStore() *memCommentStore {
	return &memCommentStore{comments: make(map[int64]*models.Comment)}
}

func (s *memCommentStore) Insert(comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	comment.ID = s.nextID
	stored := *comment
	s.comments[comment.ID] = &stored
	return nil
}

func (s *memCommentStore) FindByID(id int64) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, store.ErrNotFound
	}
	return *comment, nil
}

func (s *memCommentStore) ListIDs() ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.comments))
	for id := int64(1); id <= s.nextID; id++ {
		if _, ok := s.comments[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *memCommentStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

func (s *memCommentStore) AddLike(id int64, userID uuid.UUID) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, store.ErrNotFound
	}
	if comment.IsLikedBy(userID) {
		return models.Comment{}, store.ErrAlreadyLiked
	}

	comment.LikeCount++
	comment.LikedBy = append(comment.LikedBy, userID.String())
	return *comment, nil
}

func (s *memCommentStore) RemoveLike(id int64, userID uuid.UUID) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return models.Comment{}, store.ErrNotFound
	}
	if !comment.IsLikedBy(userID) {
		return models.Comment{}, store.ErrNotLiked
	}

	kept := comment.LikedBy[:0]
	for _, raw := range comment.LikedBy {
		if raw != userID.String() {
			kept = append(kept, raw)
		}
	}
	comment.LikedBy = kept
	comment.LikeCount--
	return *comment, nil
}

func setupService(t *testing.T) (*CommentService, *memUserStore, *memCommentStore) {
	t.Helper()
	users := newMemUserStore()
	comments := newMemCommentStore()
	return New(comments, users), users, comments
}

func addUser(t *testing.T, users *memUserStore, isAdmin bool) uuid.UUID {
	t.Helper()
	user := models.User{
		ID:      uuid.New(),
		Name:    "tester",
		Email:   uuid.NewString() + "@example.com",
		IsAdmin: isAdmin,
	}
	require.NoError(t, users.Insert(&user))
	return user.ID
}

func TestCreateComment(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)

	comment, err := svc.Create(author, "cute cat", nil)
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, "cute cat", comment.Text)
	assert.Equal(t, author, comment.UserID)
	assert.Equal(t, 0, comment.LikeCount)
	assert.Empty(t, comment.LikedBy)
}

func TestCreateCommentRejectsEmptyText(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)

	_, err := svc.Create(author, "", nil)
	assert.ErrorIs(t, err, api_error.EmptyText)

	_, err = svc.Create(author, "   ", nil)
	assert.ErrorIs(t, err, api_error.EmptyText)
}

func TestCreateCommentRequiresResolvedAuthor(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Create(uuid.Nil, "cute cat", nil)
	assert.ErrorIs(t, err, api_error.Unauthenticated)

	_, err = svc.Create(uuid.New(), "cute cat", nil)
	assert.ErrorIs(t, err, api_error.Unauthenticated)
}

func TestCreateCommentCatRange(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)

	for _, cat := range []int{0, 28, -3} {
		cat := cat
		_, err := svc.Create(author, "cute cat", &cat)
		assert.ErrorIs(t, err, api_error.InvalidCat)
	}

	cat := 27
	comment, err := svc.Create(author, "cute cat", &cat)
	require.NoError(t, err)
	require.NotNil(t, comment.Cat)
	assert.Equal(t, 27, *comment.Cat)
}

func TestGetComment(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)

	created, err := svc.Create(author, "cute cat", nil)
	require.NoError(t, err)

	comment, user, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, comment.ID)
	assert.Equal(t, author, user.ID)

	_, _, err = svc.Get(created.ID + 100)
	assert.ErrorIs(t, err, api_error.CommentNotFound)
}

func TestListCommentIDs(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)

	ids, err := svc.ListIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	first, err := svc.Create(author, "first", nil)
	require.NoError(t, err)
	second, err := svc.Create(author, "second", nil)
	require.NoError(t, err)

	ids, err = svc.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []int64{first.ID, second.ID}, ids)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	svc, users, _ := setupService(t)
	owner := addUser(t, users, false)
	stranger := addUser(t, users, false)
	admin := addUser(t, users, true)

	comment, err := svc.Create(owner, "cute cat", nil)
	require.NoError(t, err)

	err = svc.Delete(stranger, comment.ID)
	assert.ErrorIs(t, err, api_error.NotOwnerOrAdmin)

	// Still retrievable after the forbidden attempt.
	_, _, err = svc.Get(comment.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(owner, comment.ID))
	_, _, err = svc.Get(comment.ID)
	assert.ErrorIs(t, err, api_error.CommentNotFound)

	other, err := svc.Create(owner, "another cat", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(admin, other.ID))
	_, _, err = svc.Get(other.ID)
	assert.ErrorIs(t, err, api_error.CommentNotFound)
}

func TestDeleteCommentNotFound(t *testing.T) {
	svc, users, _ := setupService(t)
	requester := addUser(t, users, false)

	err := svc.Delete(requester, 42)
	assert.ErrorIs(t, err, api_error.CommentNotFound)
}

func TestAddLikeTwiceBySameUser(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)
	liker := addUser(t, users, false)

	comment, err := svc.Create(author, "cute cat", nil)
	require.NoError(t, err)

	liked, err := svc.AddLike(liker, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)

	_, err = svc.AddLike(liker, comment.ID)
	assert.ErrorIs(t, err, api_error.AlreadyLiked)

	current, _, err := svc.Get(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.LikeCount)
	assert.Equal(t, []string{liker.String()}, []string(current.LikedBy))
}

func TestRemoveLikeByNonLiker(t *testing.T) {
	svc, users, _ := setupService(t)
	author := addUser(t, users, false)
	liker := addUser(t, users, false)
	stranger := addUser(t, users, false)

	comment, err := svc.Create(author, "cute cat", nil)
	require.NoError(t, err)

	_, err = svc.AddLike(liker, comment.ID)
	require.NoError(t, err)

	_, err = svc.RemoveLike(stranger, comment.ID)
	assert.ErrorIs(t, err, api_error.NotInLikes)

	// Count and liker set are untouched by the rejected unlike.
	current, _, err := svc.Get(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.LikeCount)
	assert.Equal(t, []string{liker.String()}, []string(current.LikedBy))
}

func TestLikeNotFound(t *testing.T) {
	svc, users, _ := setupService(t)
	requester := addUser(t, users, false)

	_, err := svc.AddLike(requester, 99)
	assert.ErrorIs(t, err, api_error.CommentNotFound)

	_, err = svc.RemoveLike(requester, 99)
	assert.ErrorIs(t, err, api_error.CommentNotFound)
}

// Count must equal the size of the liker set after every successful
// like/unlike, and the set keeps insertion order.
func TestLikeSequenceKeepsCountConsistent(t *testing.T) {
	svc, users, _ := setupService(t)
	u1 := addUser(t, users, false)
	u2 := addUser(t, users, false)

	comment, err := svc.Create(u1, "cute cat", nil)
	require.NoError(t, err)

	after, err := svc.AddLike(u2, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.LikeCount)
	assert.Equal(t, []string{u2.String()}, []string(after.LikedBy))

	after, err = svc.AddLike(u1, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.LikeCount)
	assert.Equal(t, []string{u2.String(), u1.String()}, []string(after.LikedBy))

	after, err = svc.RemoveLike(u2, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.LikeCount)
	assert.Equal(t, []string{u1.String()}, []string(after.LikedBy))

	assert.Len(t, after.LikedBy, after.LikeCount)
}
