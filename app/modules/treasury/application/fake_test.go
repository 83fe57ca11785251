package treasuryservice

import (
	"context"
	"time"

	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Treasury Repo
// ------------------------

type FakeTreasuryRepo struct {
	trace []string

	CreateFeeFunc      func(ctx context.Context, db bun.IDB, fee *treasurydb.Fee) error
	GetFeeByIDFunc     func(ctx context.Context, db bun.IDB, id int64) (*treasurydb.Fee, error)
	GetFeeCoveringFunc func(ctx context.Context, db bun.IDB, day time.Time) (*treasurydb.Fee, error)
	CreatePaymentFunc  func(ctx context.Context, db bun.IDB, payment *treasurydb.Payment) error
}

func NewFakeTreasuryRepo() *FakeTreasuryRepo {
	return &FakeTreasuryRepo{
		trace: []string{},
	}
}

func (f *FakeTreasuryRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTreasuryRepo) CreateFee(ctx context.Context, db bun.IDB, fee *treasurydb.Fee) error {
	f.record("CreateFee")
	if f.CreateFeeFunc != nil {
		return f.CreateFeeFunc(ctx, db, fee)
	}
	return nil
}

func (f *FakeTreasuryRepo) GetFeeByID(ctx context.Context, db bun.IDB, id int64) (*treasurydb.Fee, error) {
	f.record("GetFeeByID")
	if f.GetFeeByIDFunc != nil {
		return f.GetFeeByIDFunc(ctx, db, id)
	}
	return nil, treasurydb.ErrNotFound
}

func (f *FakeTreasuryRepo) GetFeeCovering(ctx context.Context, db bun.IDB, day time.Time) (*treasurydb.Fee, error) {
	f.record("GetFeeCovering")
	if f.GetFeeCoveringFunc != nil {
		return f.GetFeeCoveringFunc(ctx, db, day)
	}
	return nil, treasurydb.ErrNotFound
}

func (f *FakeTreasuryRepo) CreatePayment(ctx context.Context, db bun.IDB, payment *treasurydb.Payment) error {
	f.record("CreatePayment")
	if f.CreatePaymentFunc != nil {
		return f.CreatePaymentFunc(ctx, db, payment)
	}
	return nil
}

func (f *FakeTreasuryRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ treasurydb.Repository = (*FakeTreasuryRepo)(nil)

// ------------------------
// Fake User Lookup
// ------------------------

type FakeUserLookup struct {
	users map[int64]*userdb.User
}

func NewFakeUserLookup(ids ...int64) *FakeUserLookup {
	f := &FakeUserLookup{users: map[int64]*userdb.User{}}
	for _, id := range ids {
		f.users[id] = &userdb.User{ID: id}
	}
	return f
}

func (f *FakeUserLookup) GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userdb.ErrNotFound
}

var _ UserLookup = (*FakeUserLookup)(nil)
