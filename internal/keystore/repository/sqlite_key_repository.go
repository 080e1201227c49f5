package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	"github.com/AnakAmira/amira-vault/internal/database"
	apperrors "github.com/AnakAmira/amira-vault/internal/errors"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
)

// SQLiteKeyRepository implements key persistence for SQLite.
//
// Key material is never written to the database in plaintext: Store wraps it
// with the configured KMS keeper and Resolve unwraps it. The keeper URI (a
// gocloud.dev secrets URI, base64key:// for a local master key) is part of
// the deployment configuration; losing the wrapping key makes every stored
// key, and therefore every ciphertext, unrecoverable.
type SQLiteKeyRepository struct {
	db     *sql.DB
	keeper cryptoDomain.KMSKeeper
}

// NewSQLiteKeyRepository creates a SQLite-backed key store that wraps key
// material with the provided keeper.
func NewSQLiteKeyRepository(db *sql.DB, keeper cryptoDomain.KMSKeeper) *SQLiteKeyRepository {
	return &SQLiteKeyRepository{db: db, keeper: keeper}
}

// Resolve loads the key for the identifier and unwraps its material.
// Returns ErrKeyNotFound if no key exists for the identifier.
func (s *SQLiteKeyRepository) Resolve(
	ctx context.Context,
	identifier string,
) (*keystoreDomain.Key, error) {
	query := `SELECT id, identifier, algorithm, wrapped_key, require_user_presence, created_at, updated_at
			  FROM keys
			  WHERE identifier = ?`

	var (
		key       keystoreDomain.Key
		id        string
		algorithm string
	)
	querier := database.GetTx(ctx, s.db)
	err := querier.QueryRowContext(ctx, query, identifier).Scan(
		&id,
		&key.Identifier,
		&algorithm,
		&key.WrappedKey,
		&key.RequireUserPresence,
		&key.CreatedAt,
		&key.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, keystoreDomain.ErrKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to resolve key")
	}

	key.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse key id")
	}
	key.Algorithm = cryptoDomain.Algorithm(algorithm)

	key.Material, err = s.keeper.Decrypt(ctx, key.WrappedKey)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unwrap key material")
	}

	return &key, nil
}

// Store wraps the key material and inserts the row. An existing identifier is
// a constraint violation; replacing a key is Delete followed by Store inside
// one transaction, which the use case drives through TxManager.
func (s *SQLiteKeyRepository) Store(ctx context.Context, key *keystoreDomain.Key) error {
	if err := keystoreDomain.ValidateIdentifier(key.Identifier); err != nil {
		return err
	}

	wrapped, err := s.keeper.Encrypt(ctx, key.Material)
	if err != nil {
		return apperrors.Wrap(err, "failed to wrap key material")
	}

	query := `INSERT INTO keys (id, identifier, algorithm, wrapped_key, require_user_presence, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	querier := database.GetTx(ctx, s.db)
	_, err = querier.ExecContext(
		ctx,
		query,
		key.ID.String(),
		key.Identifier,
		string(key.Algorithm),
		wrapped,
		key.RequireUserPresence,
		key.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to store key")
	}
	return nil
}

// Delete removes the key for the identifier. Deleting an absent identifier is
// not an error.
func (s *SQLiteKeyRepository) Delete(ctx context.Context, identifier string) error {
	query := `DELETE FROM keys WHERE identifier = ?`

	querier := database.GetTx(ctx, s.db)
	if _, err := querier.ExecContext(ctx, query, identifier); err != nil {
		return apperrors.Wrap(err, "failed to delete key")
	}
	return nil
}
