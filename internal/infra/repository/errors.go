package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	repo "app/internal/repository"
)

// postgresのエラーコードをデータアクセス層のエラーに変換
// 23505: unique_violation / 23503: foreign_key_violation
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return repo.ErrDuplicate
		case "23503":
			return repo.ErrInUse
		}
	}

	return err
}
