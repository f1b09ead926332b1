package repository

import (
	"context"
	"errors"
	"time"

	"meetbook/internal/infra"
	"meetbook/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// Credential is one cached provider bearer token. Rows are superseded
// by inserting a newer one, never updated in place.
type Credential struct {
	Token     string
	ExpiresAt time.Time
}

type CredentialRepository struct {
	db db.DBTX
}

func NewCredentialRepository(dbtx db.DBTX) *CredentialRepository {
	return &CredentialRepository{db: dbtx}
}

const findCurrentCredentialSQL = `
SELECT token, expires_at
FROM provider_credentials
WHERE expires_at > $1
ORDER BY expires_at DESC
LIMIT 1`

func (r *CredentialRepository) FindCurrent(ctx context.Context, now time.Time) (*Credential, error) {
	var cred Credential
	err := r.db.QueryRow(ctx, findCurrentCredentialSQL, now).Scan(&cred.Token, &cred.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no current credential", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to look up credential", err)
	}
	return &cred, nil
}

const insertCredentialSQL = `
INSERT INTO provider_credentials (token, expires_at) VALUES ($1, $2)`

func (r *CredentialRepository) Insert(ctx context.Context, token string, expiresAt time.Time) error {
	if _, err := r.db.Exec(ctx, insertCredentialSQL, token, expiresAt); err != nil {
		return infra.WrapRepoErr("failed to store credential", err)
	}
	return nil
}

const deleteExpiredCredentialsSQL = `
DELETE FROM provider_credentials WHERE expires_at <= $1`

func (r *CredentialRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredCredentialsSQL, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired credentials", err)
	}
	return tag.RowsAffected(), nil
}
