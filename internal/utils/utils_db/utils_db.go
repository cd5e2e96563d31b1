package utils_db

import (
	"github.com/jmoiron/sqlx"
)

func FetchOne[T any](db *sqlx.DB, query string, args ...interface{}) (T, error) {
	var obj T
	err := db.Get(&obj, query, args...)
	return obj, err
}

func FetchAll[T any](db *sqlx.DB, query string, args ...interface{}) ([]T, error) {
	var objs []T
	err := db.Select(&objs, query, args...)
	return objs, err
}
