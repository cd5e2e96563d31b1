package models

import "time"

// PasswordReset is one outstanding reset code, keyed by email. A fresh
// request for the same email replaces the previous row.
type PasswordReset struct {
	Email   string    `db:"email" json:"email"`
	Code    string    `db:"code" json:"-"`
	Expires time.Time `db:"expires" json:"expires"`
}

func (r *PasswordReset) IsExpired(now time.Time) bool {
	return now.After(r.Expires)
}
