package claimstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

// ClaimDao is a data access object that maps directly to the 'claims' table in PostgreSQL.
type ClaimDao struct {
	bun.BaseModel `bun:"table:claims,alias:c"`
	Fingerprint   []byte    `bun:"fingerprint,pk,type:bytea"`
	Owner         string    `bun:"owner,notnull,type:varchar(255)"`
	RegisteredAt  int64     `bun:"registered_at,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ClaimEventDao is a data access object that maps directly to the 'claim_events' table in PostgreSQL.
type ClaimEventDao struct {
	bun.BaseModel `bun:"table:claim_events,alias:ce"`
	Seq           int64     `bun:"seq,pk,autoincrement"`
	ID            string    `bun:"id,unique,notnull,type:uuid"`
	Kind          string    `bun:"kind,notnull,type:varchar(32)"`
	Who           string    `bun:"who,notnull,type:varchar(255)"`
	Fingerprint   []byte    `bun:"fingerprint,notnull,type:bytea"`
	Target        *string   `bun:"target,type:varchar(255)"`
	Height        int64     `bun:"height,notnull"`
	EmittedAt     time.Time `bun:"emitted_at,notnull"`
}

func toClaimDao(fp claim.Fingerprint, c claim.Claim) *ClaimDao {
	return &ClaimDao{
		Fingerprint:  []byte(fp),
		Owner:        c.Owner.String(),
		RegisteredAt: int64(c.RegisteredAt),
	}
}

func toClaim(dao *ClaimDao) *claim.Claim {
	return &claim.Claim{
		Owner:        claim.Identity(dao.Owner),
		RegisteredAt: claim.Height(dao.RegisteredAt),
	}
}

func toClaimEventDao(e claim.Event) *ClaimEventDao {
	dao := &ClaimEventDao{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Who:         e.Who.String(),
		Fingerprint: []byte(e.Fingerprint),
		Height:      int64(e.Height),
		EmittedAt:   e.EmittedAt,
	}
	if e.Target != "" {
		target := e.Target.String()
		dao.Target = &target
	}
	return dao
}

func toClaimEvent(dao *ClaimEventDao) claim.Event {
	e := claim.Event{
		ID:          dao.ID,
		Kind:        claim.EventKind(dao.Kind),
		Who:         claim.Identity(dao.Who),
		Fingerprint: claim.Fingerprint(dao.Fingerprint),
		Height:      claim.Height(dao.Height),
		EmittedAt:   dao.EmittedAt,
	}
	if dao.Target != nil {
		e.Target = claim.Identity(*dao.Target)
	}
	return e
}
