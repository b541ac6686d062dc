package claimstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the claim store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) GetClaim(ctx context.Context, fp claim.Fingerprint) (*claim.Claim, error) {
	dao := new(ClaimDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("fingerprint = ?", []byte(fp)).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, claim.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return toClaim(dao), nil
}

func (s *pgStore) InsertClaim(ctx context.Context, fp claim.Fingerprint, c claim.Claim) error {
	_, err := s.db.NewInsert().
		Model(toClaimDao(fp, c)).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return claim.ErrAlreadyClaimed
		}
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	return nil
}

func (s *pgStore) UpdateClaim(ctx context.Context, fp claim.Fingerprint, c claim.Claim) error {
	res, err := s.db.NewUpdate().
		Model((*ClaimDao)(nil)).
		Set("owner = ?", c.Owner.String()).
		Set("registered_at = ?", int64(c.RegisteredAt)).
		Set("updated_at = NOW()").
		Where("fingerprint = ?", []byte(fp)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update claim: %w", err)
	}
	return requireOneRow(res)
}

func (s *pgStore) DeleteClaim(ctx context.Context, fp claim.Fingerprint) error {
	res, err := s.db.NewDelete().
		Model((*ClaimDao)(nil)).
		Where("fingerprint = ?", []byte(fp)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	return requireOneRow(res)
}

// CountClaims returns the number of fingerprints currently claimed.
func (s *pgStore) CountClaims(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().
		Model((*ClaimDao)(nil)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count claims: %w", err)
	}
	return n, nil
}

// MaxHeight returns the highest height recorded in either the claims or the event log.
func (s *pgStore) MaxHeight(ctx context.Context) (claim.Height, error) {
	var h int64
	err := s.db.NewSelect().
		ColumnExpr("GREATEST(" +
			"(SELECT COALESCE(MAX(registered_at), 0) FROM claims), " +
			"(SELECT COALESCE(MAX(height), 0) FROM claim_events))").
		Scan(ctx, &h)
	if err != nil {
		return 0, fmt.Errorf("failed to get max height: %w", err)
	}
	return claim.Height(h), nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return claim.ErrNotFound
	}
	return nil
}
