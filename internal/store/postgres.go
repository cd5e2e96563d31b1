package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/an1skat/catopia-backend/internal/models"
	"github.com/an1skat/catopia-backend/internal/utils/utils_db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type PostgresUserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Insert(user *models.User) error {
	user.CreationDate = time.Now().UTC()

	_, err := s.db.Exec(
		"INSERT INTO users(id, name, email, password_hash, is_admin, avatar, creation_date) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.IsAdmin,
		user.Avatar,
		user.CreationDate,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicateEmail
	}

	return err
}

func (s *PostgresUserStore) FindByID(id uuid.UUID) (models.User, error) {
	user, err := utils_db.FetchOne[models.User](
		s.db, "SELECT * FROM users WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *PostgresUserStore) FindByEmail(email string) (models.User, error) {
	user, err := utils_db.FetchOne[models.User](
		s.db, "SELECT * FROM users WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *PostgresUserStore) All() ([]models.User, error) {
	return utils_db.FetchAll[models.User](
		s.db, "SELECT * FROM users ORDER BY creation_date")
}

func (s *PostgresUserStore) UpdatePassword(email string, passwordHash string) error {
	res, err := s.db.Exec(
		"UPDATE users SET password_hash = $1 WHERE email = $2", passwordHash, email)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *PostgresUserStore) UpdateAvatar(id uuid.UUID, avatar *string) error {
	res, err := s.db.Exec(
		"UPDATE users SET avatar = $1 WHERE id = $2", avatar, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

type PostgresCommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *PostgresCommentStore {
	return &PostgresCommentStore{db: db}
}

func (s *PostgresCommentStore) Insert(comment *models.Comment) error {
	comment.CreationDate = time.Now().UTC()
	if comment.LikedBy == nil {
		comment.LikedBy = pq.StringArray{}
	}

	return s.db.Get(&comment.ID,
		"INSERT INTO comments(text, user_id, cat, like_count, liked_by, creation_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		comment.Text,
		comment.UserID,
		comment.Cat,
		comment.LikeCount,
		comment.LikedBy,
		comment.CreationDate,
	)
}

func (s *PostgresCommentStore) FindByID(id int64) (models.Comment, error) {
	comment, err := utils_db.FetchOne[models.Comment](
		s.db, "SELECT * FROM comments WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrNotFound
	}
	return comment, err
}

func (s *PostgresCommentStore) ListIDs() ([]int64, error) {
	ids, err := utils_db.FetchAll[int64](
		s.db, "SELECT id FROM comments ORDER BY id")
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (s *PostgresCommentStore) Delete(id int64) error {
	res, err := s.db.Exec("DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// AddLike appends the liker and bumps the count in one statement, so
// two concurrent likes cannot lose an update and the same user can
// never appear in the liker set twice.
func (s *PostgresCommentStore) AddLike(id int64, userID uuid.UUID) (models.Comment, error) {
	query := `
	UPDATE comments
	SET like_count = like_count + 1, liked_by = array_append(liked_by, $1)
	WHERE id = $2 AND NOT ($1 = ANY(liked_by))
	`

	res, err := s.db.Exec(query, userID.String(), id)
	if err != nil {
		return models.Comment{}, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Comment{}, err
	}

	if n == 0 {
		if _, err := s.FindByID(id); err != nil {
			return models.Comment{}, err
		}
		return models.Comment{}, ErrAlreadyLiked
	}

	return s.FindByID(id)
}

// RemoveLike decrements only when the requester is actually removed
// from the liker set; unliking a comment you never liked leaves the
// record untouched.
func (s *PostgresCommentStore) RemoveLike(id int64, userID uuid.UUID) (models.Comment, error) {
	query := `
	UPDATE comments
	SET like_count = like_count - 1, liked_by = array_remove(liked_by, $1)
	WHERE id = $2 AND $1 = ANY(liked_by)
	`

	res, err := s.db.Exec(query, userID.String(), id)
	if err != nil {
		return models.Comment{}, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Comment{}, err
	}

	if n == 0 {
		if _, err := s.FindByID(id); err != nil {
			return models.Comment{}, err
		}
		return models.Comment{}, ErrNotLiked
	}

	return s.FindByID(id)
}

type PostgresResetCodeStore struct {
	db *sqlx.DB
}

func NewResetCodeStore(db *sqlx.DB) *PostgresResetCodeStore {
	return &PostgresResetCodeStore{db: db}
}

func (s *PostgresResetCodeStore) Put(reset *models.PasswordReset) error {
	_, err := s.db.Exec(`
		INSERT INTO password_resets(email, code, expires) VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET code = $2, expires = $3`,
		reset.Email,
		reset.Code,
		reset.Expires,
	)
	return err
}

func (s *PostgresResetCodeStore) Find(email string) (models.PasswordReset, error) {
	reset, err := utils_db.FetchOne[models.PasswordReset](
		s.db, "SELECT * FROM password_resets WHERE email = $1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PasswordReset{}, ErrNotFound
	}
	return reset, err
}

func (s *PostgresResetCodeStore) Delete(email string) error {
	_, err := s.db.Exec("DELETE FROM password_resets WHERE email = $1", email)
	return err
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
