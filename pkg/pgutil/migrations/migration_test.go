package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/claim-registry/pkg/config"
	"github.com/chainsafe/claim-registry/pkg/pgutil"
)

type noteDao struct {
	bun.BaseModel `bun:"table:notes"`
	ID            int64  `bun:",pk,autoincrement"`
	Author        string `bun:",notnull,type:varchar(100)"`
	Body          string `bun:",notnull"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg, nil)
	if err == nil {
		_ = db.Close()
		t.Fatal("ConnectDB() should fail with invalid host")
	}
}

func TestCreateTable(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateTable(ctx, db, &noteDao{}, "author"); err != nil {
		t.Fatalf("CreateTable() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "notes")
	pgutil.AssertIndexExists(t, db, "idx_notes_author")

	// idempotent
	if err := CreateTable(ctx, db, &noteDao{}, "author"); err != nil {
		t.Fatalf("CreateTable() second call failed: %v", err)
	}

	if err := CreateTable(ctx, db, nil); err == nil {
		t.Fatal("expected error for nil model")
	}
	if err := CreateTable(ctx, db, &noteDao{}, "missing_column"); err == nil {
		t.Fatal("expected error for unknown index column")
	}
}

func TestDropTable(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	if err := CreateTable(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("CreateTable() failed: %v", err)
	}
	if err := DropTable(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("DropTable() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "notes")

	if err := DropTable(ctx, db, &noteDao{}); err != nil {
		t.Fatalf("DropTable() on missing table failed: %v", err)
	}
}

func TestRunMigrations_Commands(t *testing.T) {
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateTable(ctx, db, &noteDao{}, "author")
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTable(ctx, db, &noteDao{})
	})
	migrator := migrate.NewMigrator(db, ms)

	if err := RunMigrations(ctx, migrator); err == nil {
		t.Fatal("expected error without a command")
	}
	if err := RunMigrations(ctx, migrator, "sideways"); err == nil {
		t.Fatal("expected error for unknown command")
	}

	for _, cmd := range []string{"init", "up", "status", "up"} {
		if err := RunMigrations(ctx, migrator, cmd); err != nil {
			t.Fatalf("RunMigrations(%s) failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "notes")

	if err := RunMigrations(ctx, migrator, "down"); err != nil {
		t.Fatalf("RunMigrations(down) failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "notes")

	if err := RunMigrations(ctx, migrator, "unlock"); err != nil {
		t.Fatalf("RunMigrations(unlock) failed: %v", err)
	}
}
