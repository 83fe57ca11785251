package treasuryservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/pgerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

// MaxFeeAmount is the largest amount a NUMERIC(10,2) column holds.
const MaxFeeAmount = 99_999_999.99

const maxProofURL = 2048

type feeResult = results.OperationResult[*treasurydb.Fee, error]

type paymentResult = results.OperationResult[*treasurydb.Payment, error]

// CreateFee sets the fee for a week on behalf of an existing user.
func (s *TreasuryService) CreateFee(ctx context.Context, req CreateFeeRequest) (*treasurydb.Fee, error) {
	return operation.Run(s.run, ctx, "CreateFee", strconv.FormatInt(req.SetBy, 10), func(ctx context.Context, db bun.IDB) (feeResult, error) {
		return s.createFeeLogic(ctx, db, req)
	})
}

func (s *TreasuryService) createFeeLogic(ctx context.Context, db bun.IDB, req CreateFeeRequest) (feeResult, error) {
	if req.Amount <= 0 || req.Amount > MaxFeeAmount {
		return results.FailureResult[*treasurydb.Fee, error](domainerr.Invalid("amount must be positive and at most %.2f", MaxFeeAmount)), nil
	}
	if err := validate.ID("set_by", req.SetBy); err != nil {
		return results.FailureResult[*treasurydb.Fee, error](err), nil
	}

	weekStart, err := parseDay("week_start", req.WeekStart)
	if err != nil {
		return results.FailureResult[*treasurydb.Fee, error](err), nil
	}
	weekEnd, err := parseDay("week_end", req.WeekEnd)
	if err != nil {
		return results.FailureResult[*treasurydb.Fee, error](err), nil
	}
	if weekEnd.Before(weekStart) {
		return results.FailureResult[*treasurydb.Fee, error](domainerr.Invalid("week_end must not be before week_start")), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.SetBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*treasurydb.Fee, error](domainerr.NotFound("User not found")), nil
		}
		return feeResult{}, fmt.Errorf("failed to get fee setter: %w", err)
	}

	fee := &treasurydb.Fee{
		Amount:    req.Amount,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		SetBy:     req.SetBy,
	}
	if err := s.repo.CreateFee(ctx, db, fee); err != nil {
		return feeResult{}, err
	}
	return results.SuccessResult[*treasurydb.Fee, error](fee), nil
}

// GetCurrentFee returns the fee whose week covers today's UTC date. When weeks
// overlap, the most recently set fee wins.
func (s *TreasuryService) GetCurrentFee(ctx context.Context) (*treasurydb.Fee, error) {
	today := truncateDay(s.clock.Now())
	return operation.Run(s.run, ctx, "GetCurrentFee", today.Format(time.DateOnly), func(ctx context.Context, db bun.IDB) (feeResult, error) {
		fee, err := s.repo.GetFeeCovering(ctx, db, today)
		if err != nil {
			if errors.Is(err, treasurydb.ErrNotFound) {
				return results.SuccessResult[*treasurydb.Fee, error](nil), nil
			}
			return feeResult{}, err
		}
		return results.SuccessResult[*treasurydb.Fee, error](fee), nil
	})
}

// SubmitPayment records a member's proof of payment against a fee.
func (s *TreasuryService) SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*treasurydb.Payment, error) {
	identifier := fmt.Sprintf("fee:%d user:%d", req.TreasuryFeeID, req.UserID)
	return operation.Run(s.run, ctx, "SubmitPayment", identifier, func(ctx context.Context, db bun.IDB) (paymentResult, error) {
		return s.submitPaymentLogic(ctx, db, req)
	})
}

func (s *TreasuryService) submitPaymentLogic(ctx context.Context, db bun.IDB, req SubmitPaymentRequest) (paymentResult, error) {
	if err := validate.First(
		validate.ID("user_id", req.UserID),
		validate.ID("treasury_fee_id", req.TreasuryFeeID),
		validate.Length("proof_url", req.ProofURL, 1, maxProofURL),
	); err != nil {
		return results.FailureResult[*treasurydb.Payment, error](err), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.UserID); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*treasurydb.Payment, error](domainerr.NotFound("User with id %d does not exist", req.UserID)), nil
		}
		return paymentResult{}, fmt.Errorf("failed to get payer: %w", err)
	}

	if _, err := s.repo.GetFeeByID(ctx, db, req.TreasuryFeeID); err != nil {
		if errors.Is(err, treasurydb.ErrNotFound) {
			return results.FailureResult[*treasurydb.Payment, error](domainerr.NotFound("Treasury fee not found")), nil
		}
		return paymentResult{}, err
	}

	payment := &treasurydb.Payment{
		UserID:        req.UserID,
		TreasuryFeeID: req.TreasuryFeeID,
		ProofURL:      req.ProofURL,
	}
	if err := s.repo.CreatePayment(ctx, db, payment); err != nil {
		// A fee or user deleted since the checks above.
		if pgerr.IsForeignKeyViolation(err) {
			return results.FailureResult[*treasurydb.Payment, error](domainerr.NotFound("Treasury fee not found")), nil
		}
		return paymentResult{}, err
	}
	return results.SuccessResult[*treasurydb.Payment, error](payment), nil
}

// parseDay accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps its UTC date.
func parseDay(field, raw string) (time.Time, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, domainerr.Invalid("%s must be a date (YYYY-MM-DD)", field)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
