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
		log.Println("creating claim_events table...")
		return mghelper.CreateTable(ctx, db, &claimstore.ClaimEventDao{}, "fingerprint", "kind")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping claim_events table...")
		return mghelper.DropTable(ctx, db, &claimstore.ClaimEventDao{})
	})
}
