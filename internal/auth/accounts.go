package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/squadfit/internal/session"
	"github.com/2beens/squadfit/internal/telemetry/tracing"
	"github.com/2beens/squadfit/pkg"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

type Account struct {
	ID           int
	Username     string
	PasswordHash string
	Role         session.Role
}

type AccountsRepo struct {
	db *pgxpool.Pool
}

func NewAccountsRepo(db *pgxpool.Pool) *AccountsRepo {
	return &AccountsRepo{
		db: db,
	}
}

func (r *AccountsRepo) Add(ctx context.Context, username, passwordHash string, role session.Role) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	account := &Account{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO account (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id;`,
		username, passwordHash, string(role),
	).Scan(&account.ID); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accounts.get")
	span.SetAttributes(attribute.String("username", username))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	account := &Account{}
	var role string
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, role FROM account WHERE username = $1;`,
		username,
	).Scan(&account.ID, &account.Username, &account.PasswordHash, &role); err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	account.Role = session.Role(role)

	return account, nil
}
