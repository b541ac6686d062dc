package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/claim-registry/pkg/migrations/registrydb"
	"github.com/chainsafe/claim-registry/pkg/pgutil"
)

func TestRegistryDBMigrations_Apply(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, registrydb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Fatal("Expected migrations to run, but none were applied")
	}

	for _, table := range []string{"claims", "claim_events", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}

	pgutil.AssertIndexExists(t, db, "idx_claims_owner")
	pgutil.AssertIndexExists(t, db, "idx_claim_events_fingerprint")
	pgutil.AssertIndexExists(t, db, "idx_claim_events_kind")
}

func TestRegistryDBMigrations_Rollback(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, registrydb.Migrations)

	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}

	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Fatal("Expected migrations to roll back, but none were")
	}

	pgutil.AssertTableNotExists(t, db, "claims")
	pgutil.AssertTableNotExists(t, db, "claim_events")
}
