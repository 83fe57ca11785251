package suggestionservice

import (
	"context"
	"errors"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/uptrace/bun"
)

// AuditVoteCounters walks every suggestion and compares its counters with a
// fresh count of its vote rows. Each suggestion is checked in its own
// transaction under the same row lock CastVote takes, so the audit never races
// a vote. Vote rows are never modified.
func (s *SuggestionService) AuditVoteCounters(ctx context.Context) (AuditReport, error) {
	result, err := operation.WithTelemetry(s.run, ctx, "AuditVoteCounters", "all", func(ctx context.Context) (results.OperationResult[AuditReport, error], error) {
		ids, err := s.repo.ListSuggestionIDs(ctx, nil)
		if err != nil {
			return results.OperationResult[AuditReport, error]{}, err
		}

		var report AuditReport
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return results.OperationResult[AuditReport, error]{}, err
			}

			repaired, err := operation.RunInTx(s.run, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
				return s.auditSuggestion(ctx, db, id)
			})
			if err != nil {
				return results.OperationResult[AuditReport, error]{}, err
			}

			report.Checked++
			if repaired.IsSuccess() && *repaired.Success {
				report.Repaired++
			}
		}
		return results.SuccessResult[AuditReport, error](report), nil
	})
	if err != nil {
		return AuditReport{}, err
	}
	return *result.Success, nil
}

func (s *SuggestionService) auditSuggestion(ctx context.Context, db bun.IDB, id int64) (results.OperationResult[bool, error], error) {
	suggestion, err := s.repo.GetSuggestionForUpdate(ctx, db, id)
	if err != nil {
		// Deleted between listing and locking.
		if errors.Is(err, suggestiondb.ErrNotFound) {
			return results.SuccessResult[bool, error](false), nil
		}
		return results.OperationResult[bool, error]{}, err
	}

	tally, err := s.repo.CountVotes(ctx, db, id)
	if err != nil {
		return results.OperationResult[bool, error]{}, err
	}

	if tally.Upvotes == suggestion.Upvotes && tally.Downvotes == suggestion.Downvotes {
		return results.SuccessResult[bool, error](false), nil
	}

	s.run.Logger.WarnContext(ctx, "Vote counter drift repaired",
		attr.Int64("suggestion_id", id),
		attr.Int("stored_upvotes", suggestion.Upvotes),
		attr.Int("stored_downvotes", suggestion.Downvotes),
		attr.Int("counted_upvotes", tally.Upvotes),
		attr.Int("counted_downvotes", tally.Downvotes),
	)

	if err := s.repo.SetCounters(ctx, db, id, tally); err != nil {
		return results.OperationResult[bool, error]{}, err
	}
	return results.SuccessResult[bool, error](true), nil
}
