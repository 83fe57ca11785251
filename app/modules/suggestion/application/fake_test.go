package suggestionservice

import (
	"context"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Suggestion Repo
// ------------------------

type FakeSuggestionRepo struct {
	trace []string

	CreateSuggestionFunc       func(ctx context.Context, db bun.IDB, suggestion *suggestiondb.Suggestion) error
	ListSuggestionsFunc        func(ctx context.Context, db bun.IDB) ([]suggestiondb.Suggestion, error)
	ListTopSuggestionsFunc     func(ctx context.Context, db bun.IDB, limit int) ([]suggestiondb.Suggestion, error)
	ListSuggestionIDsFunc      func(ctx context.Context, db bun.IDB) ([]int64, error)
	UpdateSuggestionStatusFunc func(ctx context.Context, db bun.IDB, id int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error)
	GetSuggestionForUpdateFunc func(ctx context.Context, db bun.IDB, id int64) (*suggestiondb.Suggestion, error)
	AdjustCountersFunc         func(ctx context.Context, db bun.IDB, id int64, upDelta, downDelta int) error
	SetCountersFunc            func(ctx context.Context, db bun.IDB, id int64, tally suggestiondb.Tally) error
	GetVoteFunc                func(ctx context.Context, db bun.IDB, suggestionID, userID int64) (*suggestiondb.Vote, error)
	InsertVoteFunc             func(ctx context.Context, db bun.IDB, vote *suggestiondb.Vote) error
	UpdateVoteTypeFunc         func(ctx context.Context, db bun.IDB, voteID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error)
	CountVotesFunc             func(ctx context.Context, db bun.IDB, suggestionID int64) (suggestiondb.Tally, error)
}

func NewFakeSuggestionRepo() *FakeSuggestionRepo {
	return &FakeSuggestionRepo{
		trace: []string{},
	}
}

func (f *FakeSuggestionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeSuggestionRepo) CreateSuggestion(ctx context.Context, db bun.IDB, suggestion *suggestiondb.Suggestion) error {
	f.record("CreateSuggestion")
	if f.CreateSuggestionFunc != nil {
		return f.CreateSuggestionFunc(ctx, db, suggestion)
	}
	return nil
}

func (f *FakeSuggestionRepo) ListSuggestions(ctx context.Context, db bun.IDB) ([]suggestiondb.Suggestion, error) {
	f.record("ListSuggestions")
	if f.ListSuggestionsFunc != nil {
		return f.ListSuggestionsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeSuggestionRepo) ListTopSuggestions(ctx context.Context, db bun.IDB, limit int) ([]suggestiondb.Suggestion, error) {
	f.record("ListTopSuggestions")
	if f.ListTopSuggestionsFunc != nil {
		return f.ListTopSuggestionsFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeSuggestionRepo) ListSuggestionIDs(ctx context.Context, db bun.IDB) ([]int64, error) {
	f.record("ListSuggestionIDs")
	if f.ListSuggestionIDsFunc != nil {
		return f.ListSuggestionIDsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeSuggestionRepo) UpdateSuggestionStatus(ctx context.Context, db bun.IDB, id int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error) {
	f.record("UpdateSuggestionStatus")
	if f.UpdateSuggestionStatusFunc != nil {
		return f.UpdateSuggestionStatusFunc(ctx, db, id, status)
	}
	return nil, suggestiondb.ErrNoRowsAffected
}

func (f *FakeSuggestionRepo) GetSuggestionForUpdate(ctx context.Context, db bun.IDB, id int64) (*suggestiondb.Suggestion, error) {
	f.record("GetSuggestionForUpdate")
	if f.GetSuggestionForUpdateFunc != nil {
		return f.GetSuggestionForUpdateFunc(ctx, db, id)
	}
	return nil, suggestiondb.ErrNotFound
}

func (f *FakeSuggestionRepo) AdjustCounters(ctx context.Context, db bun.IDB, id int64, upDelta, downDelta int) error {
	f.record("AdjustCounters")
	if f.AdjustCountersFunc != nil {
		return f.AdjustCountersFunc(ctx, db, id, upDelta, downDelta)
	}
	return nil
}

func (f *FakeSuggestionRepo) SetCounters(ctx context.Context, db bun.IDB, id int64, tally suggestiondb.Tally) error {
	f.record("SetCounters")
	if f.SetCountersFunc != nil {
		return f.SetCountersFunc(ctx, db, id, tally)
	}
	return nil
}

func (f *FakeSuggestionRepo) GetVote(ctx context.Context, db bun.IDB, suggestionID, userID int64) (*suggestiondb.Vote, error) {
	f.record("GetVote")
	if f.GetVoteFunc != nil {
		return f.GetVoteFunc(ctx, db, suggestionID, userID)
	}
	return nil, suggestiondb.ErrNotFound
}

func (f *FakeSuggestionRepo) InsertVote(ctx context.Context, db bun.IDB, vote *suggestiondb.Vote) error {
	f.record("InsertVote")
	if f.InsertVoteFunc != nil {
		return f.InsertVoteFunc(ctx, db, vote)
	}
	return nil
}

func (f *FakeSuggestionRepo) UpdateVoteType(ctx context.Context, db bun.IDB, voteID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error) {
	f.record("UpdateVoteType")
	if f.UpdateVoteTypeFunc != nil {
		return f.UpdateVoteTypeFunc(ctx, db, voteID, voteType)
	}
	return nil, suggestiondb.ErrNoRowsAffected
}

func (f *FakeSuggestionRepo) CountVotes(ctx context.Context, db bun.IDB, suggestionID int64) (suggestiondb.Tally, error) {
	f.record("CountVotes")
	if f.CountVotesFunc != nil {
		return f.CountVotesFunc(ctx, db, suggestionID)
	}
	return suggestiondb.Tally{}, nil
}

// --- Accessors for assertions ---

func (f *FakeSuggestionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ suggestiondb.Repository = (*FakeSuggestionRepo)(nil)

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

// ------------------------
// In-memory ledger
// ------------------------

// memoryLedger backs a FakeSuggestionRepo with maps so multi-step voting
// scenarios can be asserted against state.
type memoryLedger struct {
	suggestions map[int64]*suggestiondb.Suggestion
	votes       map[int64]*suggestiondb.Vote
	nextVoteID  int64
}

func newMemoryLedger(suggestions ...suggestiondb.Suggestion) *memoryLedger {
	m := &memoryLedger{
		suggestions: map[int64]*suggestiondb.Suggestion{},
		votes:       map[int64]*suggestiondb.Vote{},
	}
	for i := range suggestions {
		s := suggestions[i]
		m.suggestions[s.ID] = &s
	}
	return m
}

func (m *memoryLedger) wire(f *FakeSuggestionRepo) {
	f.GetSuggestionForUpdateFunc = func(ctx context.Context, db bun.IDB, id int64) (*suggestiondb.Suggestion, error) {
		s, ok := m.suggestions[id]
		if !ok {
			return nil, suggestiondb.ErrNotFound
		}
		cp := *s
		return &cp, nil
	}
	f.GetVoteFunc = func(ctx context.Context, db bun.IDB, suggestionID, userID int64) (*suggestiondb.Vote, error) {
		for _, v := range m.votes {
			if v.SuggestionID == suggestionID && v.UserID == userID {
				cp := *v
				return &cp, nil
			}
		}
		return nil, suggestiondb.ErrNotFound
	}
	f.InsertVoteFunc = func(ctx context.Context, db bun.IDB, vote *suggestiondb.Vote) error {
		m.nextVoteID++
		vote.ID = m.nextVoteID
		cp := *vote
		m.votes[vote.ID] = &cp
		return nil
	}
	f.UpdateVoteTypeFunc = func(ctx context.Context, db bun.IDB, voteID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error) {
		v, ok := m.votes[voteID]
		if !ok {
			return nil, suggestiondb.ErrNoRowsAffected
		}
		v.VoteType = voteType
		cp := *v
		return &cp, nil
	}
	f.AdjustCountersFunc = func(ctx context.Context, db bun.IDB, id int64, upDelta, downDelta int) error {
		s, ok := m.suggestions[id]
		if !ok {
			return suggestiondb.ErrNoRowsAffected
		}
		s.Upvotes += upDelta
		s.Downvotes += downDelta
		return nil
	}
	f.CountVotesFunc = func(ctx context.Context, db bun.IDB, suggestionID int64) (suggestiondb.Tally, error) {
		return m.tally(suggestionID), nil
	}
	f.SetCountersFunc = func(ctx context.Context, db bun.IDB, id int64, tally suggestiondb.Tally) error {
		s := m.suggestions[id]
		s.Upvotes = tally.Upvotes
		s.Downvotes = tally.Downvotes
		return nil
	}
	f.ListSuggestionIDsFunc = func(ctx context.Context, db bun.IDB) ([]int64, error) {
		ids := make([]int64, 0, len(m.suggestions))
		for id := range m.suggestions {
			ids = append(ids, id)
		}
		return ids, nil
	}
}

func (m *memoryLedger) tally(suggestionID int64) suggestiondb.Tally {
	var t suggestiondb.Tally
	for _, v := range m.votes {
		if v.SuggestionID != suggestionID {
			continue
		}
		if v.VoteType == suggestiondb.Upvote {
			t.Upvotes++
		} else {
			t.Downvotes++
		}
	}
	return t
}

func (m *memoryLedger) votesFor(suggestionID, userID int64) []suggestiondb.Vote {
	var out []suggestiondb.Vote
	for _, v := range m.votes {
		if v.SuggestionID == suggestionID && v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out
}
