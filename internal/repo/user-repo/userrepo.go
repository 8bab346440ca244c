package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/roulette/internal/domain"
	"github.com/GlebRadaev/roulette/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	findByLoginQuery = `SELECT id, login, password_hash, role, cash_balance, created_at FROM users WHERE login = $1`

	// Two instances may seed the same admin, and two cashiers may race for a login.
	createQuery = `
		INSERT INTO users (login, password_hash, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (login) DO NOTHING
		RETURNING id, cash_balance, created_at
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByLogin returns nil without an error when the login is free.
func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	err := repo.db.QueryRow(ctx, findByLoginQuery, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &role, &user.CashBalance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, createQuery, user.Login, user.PasswordHash, string(user.Role)).
		Scan(&user.ID, &user.CashBalance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoginTaken
		}
		zap.L().Error("can't save user", zap.String("login", user.Login), zap.Error(err))
		return nil, err
	}
	return user, nil
}
