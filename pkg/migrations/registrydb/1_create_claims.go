package registrydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/claim-registry/pkg/claimstore"
	mghelper "github.com/chainsafe/claim-registry/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating claims table...")
		return mghelper.CreateTable(ctx, db, &claimstore.ClaimDao{}, "owner")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping claims table...")
		return mghelper.DropTable(ctx, db, &claimstore.ClaimDao{})
	})
}
