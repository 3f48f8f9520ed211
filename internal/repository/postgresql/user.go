package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/equipped-hq/tradein-service/internal/db"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser seeds the account if it does not exist yet. Called at startup
// so a fresh deployment has an operator login before the first request.
func (r *UserRepo) EnsureUser(ctx context.Context, username, password string) error {
	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.CreateUser(ctx, username, password)
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		"INSERT INTO users (username, password) VALUES ($1, $2)",
		username, string(hashedPassword))
	return err
}

func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	var hashedPassword string
	err := r.db.ExecQueryRow(ctx,
		"SELECT password FROM users WHERE username = $1", username).Scan(&hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
