package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/chainsafe/claim-registry/internal/metrics"
	"github.com/chainsafe/claim-registry/pkg/claim"
	"github.com/chainsafe/claim-registry/pkg/claimstore"
)

const (
	alice claim.Identity = "alice"
	bob   claim.Identity = "bob"
)

// origins are plain identity strings; "" and non-strings are rejected.
type stubAuth struct{}

func (stubAuth) Authenticate(_ context.Context, origin claim.Origin) (claim.Identity, error) {
	s, ok := origin.(string)
	if !ok {
		return "", errors.New("unsupported origin")
	}
	return claim.Identity(s), nil
}

type stubHeight struct {
	mu    sync.Mutex
	h     claim.Height
	calls int
	err   error
}

func (s *stubHeight) CurrentHeight(context.Context) (claim.Height, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.h, s.err
}

func (s *stubHeight) set(h claim.Height) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h = h
}

type recordingSink struct {
	mu     sync.Mutex
	events []claim.Event
	err    error
}

func (s *recordingSink) Emit(_ context.Context, e claim.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingSink) all() []claim.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]claim.Event(nil), s.events...)
}

type failingStore struct {
	*claimstore.MemoryStore
	err error
}

func (s failingStore) InsertClaim(context.Context, claim.Fingerprint, claim.Claim) error {
	return s.err
}

type fixture struct {
	reg    *Registry
	store  *claimstore.MemoryStore
	height *stubHeight
	sink   *recordingSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:  claimstore.NewMemoryStore(),
		height: &stubHeight{h: 1},
		sink:   &recordingSink{},
	}
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f.reg = New(f.store, stubAuth{}, f.height, f.sink, WithClock(func() time.Time { return fixed }))
	return f
}

func (f *fixture) create(ctx context.Context, origin claim.Origin, fp claim.Fingerprint) error {
	_, err := f.reg.CreateClaim(ctx, origin, fp)
	return err
}

func (f *fixture) transfer(ctx context.Context, origin claim.Origin, fp claim.Fingerprint, target claim.Identity) error {
	_, err := f.reg.TransferClaim(ctx, origin, fp, target)
	return err
}

func (f *fixture) mustLookup(t *testing.T, fp claim.Fingerprint) claim.Claim {
	t.Helper()

	c, err := f.reg.Lookup(context.Background(), fp)
	if err != nil {
		t.Fatalf("Lookup(%s) failed: %v", fp, err)
	}
	return *c
}

func (f *fixture) expectAbsent(t *testing.T, fp claim.Fingerprint) {
	t.Helper()

	if _, err := f.reg.Lookup(context.Background(), fp); !errors.Is(err, claim.ErrNotFound) {
		t.Fatalf("expected %s to be unclaimed, got %v", fp, err)
	}
}

func TestRegistry_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fpA := claim.Fingerprint{0xaa}

	f.height.set(10)
	if err := f.create(ctx, string(alice), fpA); err != nil {
		t.Fatalf("alice CreateClaim() failed: %v", err)
	}
	if got := f.mustLookup(t, fpA); got != (claim.Claim{Owner: alice, RegisteredAt: 10}) {
		t.Fatalf("unexpected claim after create: %+v", got)
	}

	if err := f.create(ctx, string(bob), fpA); !errors.Is(err, claim.ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
	if err := f.reg.RevokeClaim(ctx, string(bob), fpA); !errors.Is(err, claim.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	f.height.set(15)
	if err := f.transfer(ctx, string(alice), fpA, bob); err != nil {
		t.Fatalf("TransferClaim() failed: %v", err)
	}
	if got := f.mustLookup(t, fpA); got != (claim.Claim{Owner: bob, RegisteredAt: 15}) {
		t.Fatalf("unexpected claim after transfer: %+v", got)
	}

	if err := f.reg.RevokeClaim(ctx, string(alice), fpA); !errors.Is(err, claim.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner for previous owner, got %v", err)
	}

	f.height.set(20)
	if err := f.reg.RevokeClaim(ctx, string(bob), fpA); err != nil {
		t.Fatalf("RevokeClaim() failed: %v", err)
	}
	f.expectAbsent(t, fpA)

	if err := f.reg.RevokeClaim(ctx, string(bob), fpA); !errors.Is(err, claim.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	events := f.sink.all()
	want := []claim.Event{
		{Kind: claim.EventClaimCreated, Who: alice, Fingerprint: fpA, Height: 10},
		{Kind: claim.EventClaimTransferred, Who: alice, Fingerprint: fpA, Target: bob, Height: 15},
		{Kind: claim.EventClaimRevoked, Who: bob, Fingerprint: fpA},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(events), events)
	}
	for i, w := range want {
		got := events[i]
		if got.Kind != w.Kind || got.Who != w.Who || !got.Fingerprint.Equal(w.Fingerprint) ||
			got.Target != w.Target || got.Height != w.Height {
			t.Fatalf("event %d: expected %+v, got %+v", i, w, got)
		}
		if got.ID == "" {
			t.Fatalf("event %d has no id", i)
		}
		if !got.EmittedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)) {
			t.Fatalf("event %d: unexpected emitted_at %s", i, got.EmittedAt)
		}
	}
}

func TestRegistry_ReclaimAfterRevoke(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x01, 0x02}

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	if err := f.reg.RevokeClaim(ctx, string(alice), fp); err != nil {
		t.Fatalf("RevokeClaim() failed: %v", err)
	}

	f.height.set(42)
	if err := f.create(ctx, string(bob), fp); err != nil {
		t.Fatalf("bob CreateClaim() after revoke failed: %v", err)
	}
	if got := f.mustLookup(t, fp); got != (claim.Claim{Owner: bob, RegisteredAt: 42}) {
		t.Fatalf("unexpected claim: %+v", got)
	}
}

func TestRegistry_TransferToSelf(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x07}

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	f.height.set(5)
	if err := f.transfer(ctx, string(alice), fp, alice); err != nil {
		t.Fatalf("TransferClaim() to self failed: %v", err)
	}
	if got := f.mustLookup(t, fp); got != (claim.Claim{Owner: alice, RegisteredAt: 5}) {
		t.Fatalf("expected height refresh on self-transfer, got %+v", got)
	}
	if n := len(f.sink.all()); n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}
}

func TestRegistry_TransferMissing(t *testing.T) {
	f := newFixture(t)

	err := f.transfer(context.Background(), string(alice), claim.Fingerprint{0x09}, bob)
	if !errors.Is(err, claim.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_EmptyFingerprintIsAKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	if err := f.create(ctx, string(alice), claim.Fingerprint{}); err != nil {
		t.Fatalf("CreateClaim() with empty fingerprint failed: %v", err)
	}
	if err := f.create(ctx, string(bob), claim.Fingerprint(nil)); !errors.Is(err, claim.ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
}

func TestRegistry_DistinctFingerprintsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	short := claim.Fingerprint{0x01}
	long := claim.Fingerprint{0x01, 0x00}

	if err := f.create(ctx, string(alice), short); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	if err := f.create(ctx, string(bob), long); err != nil {
		t.Fatalf("CreateClaim() on prefix-sharing fingerprint failed: %v", err)
	}
	if err := f.reg.RevokeClaim(ctx, string(alice), short); err != nil {
		t.Fatalf("RevokeClaim() failed: %v", err)
	}
	if got := f.mustLookup(t, long); got.Owner != bob {
		t.Fatalf("expected bob to keep %s, got %+v", long, got)
	}
}

func TestRegistry_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x0a}

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	callsBefore := f.height.calls

	tests := []struct {
		name   string
		origin claim.Origin
	}{
		{name: "anonymous", origin: ""},
		{name: "rejected origin", origin: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := map[string]error{
				"create":   f.create(ctx, tt.origin, claim.Fingerprint{0x0b}),
				"revoke":   f.reg.RevokeClaim(ctx, tt.origin, fp),
				"transfer": f.transfer(ctx, tt.origin, fp, bob),
			}
			for op, err := range ops {
				if !errors.Is(err, claim.ErrUnauthenticated) {
					t.Fatalf("%s: expected ErrUnauthenticated, got %v", op, err)
				}
			}
		})
	}

	if got := f.mustLookup(t, fp); got.Owner != alice {
		t.Fatalf("state changed after unauthenticated calls: %+v", got)
	}
	f.expectAbsent(t, claim.Fingerprint{0x0b})
	if f.height.calls != callsBefore {
		t.Fatalf("height read on unauthenticated call")
	}
	if n := len(f.sink.all()); n != 1 {
		t.Fatalf("expected only the create event, got %d", n)
	}
}

func TestRegistry_FailuresLeaveStateAndEmitNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x0c}

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	before := f.mustLookup(t, fp)
	callsBefore := f.height.calls

	_ = f.create(ctx, string(bob), fp)
	_ = f.reg.RevokeClaim(ctx, string(bob), fp)
	_ = f.transfer(ctx, string(bob), fp, bob)
	_ = f.reg.RevokeClaim(ctx, string(bob), claim.Fingerprint{0xff})

	if got := f.mustLookup(t, fp); got != before {
		t.Fatalf("state changed by failed calls: before %+v, after %+v", before, got)
	}
	if n := len(f.sink.all()); n != 1 {
		t.Fatalf("expected only the create event, got %d", n)
	}
	if f.height.calls != callsBefore {
		t.Fatalf("height read by calls that failed validation")
	}
}

func TestRegistry_RevokeDoesNotReadHeight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x0d}

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	f.height.err = errors.New("height unavailable")

	if err := f.reg.RevokeClaim(ctx, string(alice), fp); err != nil {
		t.Fatalf("RevokeClaim() failed: %v", err)
	}
}

func TestRegistry_HeightFailureAborts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.height.err = errors.New("node down")

	err := f.create(ctx, string(alice), claim.Fingerprint{0x0e})
	if !errors.Is(err, f.height.err) {
		t.Fatalf("expected height error, got %v", err)
	}
	f.expectAbsent(t, claim.Fingerprint{0x0e})
	if n := len(f.sink.all()); n != 0 {
		t.Fatalf("expected no events, got %d", n)
	}
}

func TestRegistry_SinkFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.sink.err = errors.New("sink down")
	fp := claim.Fingerprint{0x10}

	sinkErrors := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("registry", "event_sink"))

	if err := f.create(ctx, string(alice), fp); err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	if got := f.mustLookup(t, fp); got.Owner != alice {
		t.Fatalf("expected claim to be committed, got %+v", got)
	}
	if got := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("registry", "event_sink")) - sinkErrors; got != 1 {
		t.Fatalf("expected 1 sink error recorded, got %v", got)
	}
}

func TestRegistry_StoreFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	height := &stubHeight{h: 1}
	sink := &recordingSink{}
	reg := New(failingStore{MemoryStore: claimstore.NewMemoryStore(), err: storeErr}, stubAuth{}, height, sink)

	_, err := reg.CreateClaim(context.Background(), string(alice), claim.Fingerprint{0x11})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
	if n := len(sink.all()); n != 0 {
		t.Fatalf("expected no events, got %d", n)
	}
}

func TestRegistry_NilSink(t *testing.T) {
	reg := New(claimstore.NewMemoryStore(), stubAuth{}, &stubHeight{h: 1}, nil)

	if _, err := reg.CreateClaim(context.Background(), string(alice), claim.Fingerprint{0x12}); err != nil {
		t.Fatalf("CreateClaim() without sink failed: %v", err)
	}
}

func TestRegistry_ConcurrentCreatesHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x13}

	const callers = 16
	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results <- f.create(ctx, string(rune('a'+i)), fp)
		}(i)
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, claim.ErrAlreadyClaimed):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != callers-1 {
		t.Fatalf("expected 1 winner and %d losers, got %d and %d", callers-1, won, lost)
	}
	if n := len(f.sink.all()); n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestRegistry_OperationMetrics(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x14}

	ok := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues(opCreate, "ok"))
	conflict := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues(opCreate, "already_claimed"))

	_ = f.create(ctx, string(alice), fp)
	_ = f.create(ctx, string(bob), fp)

	if got := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues(opCreate, "ok")) - ok; got != 1 {
		t.Fatalf("expected 1 ok create, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues(opCreate, "already_claimed")) - conflict; got != 1 {
		t.Fatalf("expected 1 already_claimed create, got %v", got)
	}
}

func TestRegistry_ReturnsCommittedClaim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	fp := claim.Fingerprint{0x20}

	f.height.set(4)
	created, err := f.reg.CreateClaim(ctx, string(alice), fp)
	if err != nil {
		t.Fatalf("CreateClaim() failed: %v", err)
	}
	if *created != (claim.Claim{Owner: alice, RegisteredAt: 4}) {
		t.Fatalf("unexpected created claim %+v", *created)
	}
	if got := f.mustLookup(t, fp); got != *created {
		t.Fatalf("returned claim %+v differs from stored %+v", *created, got)
	}

	f.height.set(8)
	transferred, err := f.reg.TransferClaim(ctx, string(alice), fp, bob)
	if err != nil {
		t.Fatalf("TransferClaim() failed: %v", err)
	}
	if *transferred != (claim.Claim{Owner: bob, RegisteredAt: 8}) {
		t.Fatalf("unexpected transferred claim %+v", *transferred)
	}

	if c, err := f.reg.CreateClaim(ctx, string(bob), fp); c != nil || !errors.Is(err, claim.ErrAlreadyClaimed) {
		t.Fatalf("expected nil claim and ErrAlreadyClaimed, got %v, %v", c, err)
	}
}
