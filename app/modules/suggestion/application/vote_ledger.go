package suggestionservice

import (
	"context"
	"errors"
	"fmt"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/pgerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type voteResult = results.OperationResult[*suggestiondb.Vote, error]

// CastVote applies one user's vote to a suggestion.
//
// A first vote inserts a row and bumps the matching counter. Repeating the same
// vote is a conflict and changes nothing. Voting the other way flips the row and
// moves one count between the counters. The suggestion row stays locked for the
// whole transaction, so concurrent votes on the same suggestion apply one at a time.
func (s *SuggestionService) CastVote(ctx context.Context, suggestionID, userID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error) {
	identifier := fmt.Sprintf("suggestion:%d user:%d", suggestionID, userID)
	return operation.Run(s.run, ctx, "CastVote", identifier, func(ctx context.Context, db bun.IDB) (voteResult, error) {
		return s.castVoteLogic(ctx, db, suggestionID, userID, voteType)
	})
}

func (s *SuggestionService) castVoteLogic(ctx context.Context, db bun.IDB, suggestionID, userID int64, voteType suggestiondb.VoteType) (voteResult, error) {
	if err := validate.First(
		validate.ID("suggestion_id", suggestionID),
		validate.ID("user_id", userID),
		validate.OneOf("vote_type", voteType, suggestiondb.VoteTypes),
	); err != nil {
		return results.FailureResult[*suggestiondb.Vote, error](err), nil
	}

	if _, err := s.repo.GetSuggestionForUpdate(ctx, db, suggestionID); err != nil {
		if errors.Is(err, suggestiondb.ErrNotFound) {
			return results.FailureResult[*suggestiondb.Vote, error](domainerr.NotFound("suggestion not found")), nil
		}
		return voteResult{}, err
	}

	existing, err := s.repo.GetVote(ctx, db, suggestionID, userID)
	if err != nil && !errors.Is(err, suggestiondb.ErrNotFound) {
		return voteResult{}, err
	}

	if existing == nil {
		return s.insertVote(ctx, db, suggestionID, userID, voteType)
	}

	if existing.VoteType == voteType {
		return results.FailureResult[*suggestiondb.Vote, error](alreadyVoted(voteType)), nil
	}

	return s.switchVote(ctx, db, existing, voteType)
}

func (s *SuggestionService) insertVote(ctx context.Context, db bun.IDB, suggestionID, userID int64, voteType suggestiondb.VoteType) (voteResult, error) {
	vote := &suggestiondb.Vote{
		SuggestionID: suggestionID,
		UserID:       userID,
		VoteType:     voteType,
	}
	if err := s.repo.InsertVote(ctx, db, vote); err != nil {
		switch {
		case pgerr.IsUniqueViolation(err):
			return results.FailureResult[*suggestiondb.Vote, error](alreadyVoted(voteType)), nil
		case pgerr.IsForeignKeyViolation(err):
			return results.FailureResult[*suggestiondb.Vote, error](domainerr.NotFound("User with id %d not found", userID)), nil
		}
		return voteResult{}, err
	}

	up, down := counterDelta(voteType, 1)
	if err := s.repo.AdjustCounters(ctx, db, suggestionID, up, down); err != nil {
		return voteResult{}, err
	}

	return results.SuccessResult[*suggestiondb.Vote, error](vote), nil
}

func (s *SuggestionService) switchVote(ctx context.Context, db bun.IDB, existing *suggestiondb.Vote, voteType suggestiondb.VoteType) (voteResult, error) {
	vote, err := s.repo.UpdateVoteType(ctx, db, existing.ID, voteType)
	if err != nil {
		return voteResult{}, err
	}

	upNew, downNew := counterDelta(voteType, 1)
	upOld, downOld := counterDelta(voteType.Opposite(), -1)
	if err := s.repo.AdjustCounters(ctx, db, existing.SuggestionID, upNew+upOld, downNew+downOld); err != nil {
		return voteResult{}, err
	}

	return results.SuccessResult[*suggestiondb.Vote, error](vote), nil
}

// counterDelta returns the (upvotes, downvotes) change for adding n votes of voteType.
func counterDelta(voteType suggestiondb.VoteType, n int) (int, int) {
	if voteType == suggestiondb.Upvote {
		return n, 0
	}
	return 0, n
}

func alreadyVoted(voteType suggestiondb.VoteType) error {
	return domainerr.Conflict("User has already %sd this suggestion", voteType)
}
