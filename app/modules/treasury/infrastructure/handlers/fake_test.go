package treasuryhandlers

import (
	"context"

	treasuryservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/application"
	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
)

type FakeTreasuryService struct {
	trace []string

	CreateFeeFunc     func(ctx context.Context, req treasuryservice.CreateFeeRequest) (*treasurydb.Fee, error)
	GetCurrentFeeFunc func(ctx context.Context) (*treasurydb.Fee, error)
	SubmitPaymentFunc func(ctx context.Context, req treasuryservice.SubmitPaymentRequest) (*treasurydb.Payment, error)
}

func NewFakeTreasuryService() *FakeTreasuryService {
	return &FakeTreasuryService{trace: []string{}}
}

func (f *FakeTreasuryService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTreasuryService) CreateFee(ctx context.Context, req treasuryservice.CreateFeeRequest) (*treasurydb.Fee, error) {
	f.record("CreateFee")
	if f.CreateFeeFunc != nil {
		return f.CreateFeeFunc(ctx, req)
	}
	return &treasurydb.Fee{ID: 1, Amount: req.Amount, SetBy: req.SetBy}, nil
}

func (f *FakeTreasuryService) GetCurrentFee(ctx context.Context) (*treasurydb.Fee, error) {
	f.record("GetCurrentFee")
	if f.GetCurrentFeeFunc != nil {
		return f.GetCurrentFeeFunc(ctx)
	}
	return nil, nil
}

func (f *FakeTreasuryService) SubmitPayment(ctx context.Context, req treasuryservice.SubmitPaymentRequest) (*treasurydb.Payment, error) {
	f.record("SubmitPayment")
	if f.SubmitPaymentFunc != nil {
		return f.SubmitPaymentFunc(ctx, req)
	}
	return &treasurydb.Payment{ID: 1, UserID: req.UserID, TreasuryFeeID: req.TreasuryFeeID, ProofURL: req.ProofURL}, nil
}

func (f *FakeTreasuryService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ treasuryservice.Service = (*FakeTreasuryService)(nil)
