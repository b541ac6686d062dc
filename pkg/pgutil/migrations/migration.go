// Package migrations holds the helpers shared by bun migration sets and the migrate command.
package migrations

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

type command struct {
	help string
	run  func(ctx context.Context, m *migrate.Migrator) error
}

var commands = map[string]command{
	"init":   {help: "create the bun_migrations bookkeeping tables", run: initTables},
	"up":     {help: "apply every pending migration as one group", run: migrateUp},
	"down":   {help: "roll back the most recent migration group", run: migrateDown},
	"status": {help: "list applied and pending migrations", run: printStatus},
	"unlock": {help: "release a migration lock left by a crashed run", run: unlock},
}

// Usage prints the supported commands and flags, then exits with status 2.
func Usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Usage:\n  migrate -config config.yaml <command>\n\nCommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-7s %s\n", name, commands[name].help)
	}
	fmt.Fprint(os.Stderr, b.String())
	flag.PrintDefaults()
	os.Exit(2)
}

// Exitf reports a failure on stderr and exits through Usage.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "migrate: "+format+"\n", args...)
	Usage()
}

// CreateTable creates the model's table if missing, plus one idx_<table>_<column> index per column.
func CreateTable(ctx context.Context, db bun.IDB, model any, indexColumns ...string) error {
	if model == nil {
		return fmt.Errorf("model cannot be nil")
	}
	if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("create table for %T: %w", model, err)
	}

	table := tableName(db, model)
	for _, column := range indexColumns {
		_, err := db.NewCreateIndex().
			Model(model).
			Index(fmt.Sprintf("idx_%s_%s", table, column)).
			Column(column).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create index on %s(%s): %w", table, column, err)
		}
	}
	return nil
}

// DropTable drops the model's table and everything depending on it.
func DropTable(ctx context.Context, db bun.IDB, model any) error {
	if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
		return fmt.Errorf("drop table for %T: %w", model, err)
	}
	return nil
}

func tableName(db bun.IDB, model any) string {
	name := db.NewCreateIndex().Model(model).GetTableName()
	return strings.NewReplacer(`"`, "", ".", "_").Replace(name)
}

// RunMigrations executes the command named by args[0].
func RunMigrations(ctx context.Context, migrator *migrate.Migrator, args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command provided")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return cmd.run(ctx, migrator)
}

func initTables(ctx context.Context, m *migrate.Migrator) error {
	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("init migration tables: %w", err)
	}
	log.Println("migration tables ready")
	return nil
}

func migrateUp(ctx context.Context, m *migrate.Migrator) error {
	return locked(ctx, m, func() error {
		group, err := m.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if group.IsZero() {
			log.Println("claim registry schema is up to date")
			return nil
		}
		log.Printf("applied %s", group)
		return nil
	})
}

func migrateDown(ctx context.Context, m *migrate.Migrator) error {
	return locked(ctx, m, func() error {
		group, err := m.Rollback(ctx)
		if err != nil {
			return fmt.Errorf("rollback: %w", err)
		}
		if group.IsZero() {
			log.Println("nothing to roll back")
			return nil
		}
		log.Printf("rolled back %s", group)
		return nil
	})
}

func printStatus(ctx context.Context, m *migrate.Migrator) error {
	ms, err := m.MigrationsWithStatus(ctx)
	if err != nil {
		return fmt.Errorf("read migration status: %w", err)
	}
	for _, mig := range ms {
		state := "pending"
		if mig.IsApplied() {
			state = fmt.Sprintf("applied (group %d)", mig.GroupID)
		}
		log.Printf("%s %s", mig.Name, state)
	}
	log.Printf("last group: %s", ms.LastGroup())
	return nil
}

func unlock(ctx context.Context, m *migrate.Migrator) error {
	if err := m.Unlock(ctx); err != nil {
		return fmt.Errorf("release migration lock: %w", err)
	}
	log.Println("migration lock released")
	return nil
}

func locked(ctx context.Context, m *migrate.Migrator, fn func() error) error {
	if err := m.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := m.Unlock(ctx); err != nil {
			log.Printf("failed to release migration lock: %v", err)
		}
	}()
	return fn()
}
