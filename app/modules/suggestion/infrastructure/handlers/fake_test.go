package suggestionhandlers

import (
	"context"
	"errors"

	suggestionservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/application"
	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
)

// ------------------------
// Fake Suggestion Service
// ------------------------

type FakeSuggestionService struct {
	trace []string

	CastVoteFunc               func(ctx context.Context, suggestionID, userID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error)
	CreateSuggestionFunc       func(ctx context.Context, req suggestionservice.CreateSuggestionRequest) (*suggestiondb.Suggestion, error)
	ListSuggestionsFunc        func(ctx context.Context) ([]suggestiondb.Suggestion, error)
	UpdateSuggestionStatusFunc func(ctx context.Context, suggestionID int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error)
	RenderVoteChartFunc        func(ctx context.Context, limit int) ([]byte, error)
	AuditVoteCountersFunc      func(ctx context.Context) (suggestionservice.AuditReport, error)
}

func NewFakeSuggestionService() *FakeSuggestionService {
	return &FakeSuggestionService{
		trace: []string{},
	}
}

func (f *FakeSuggestionService) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Service Interface Implementation ---

func (f *FakeSuggestionService) CastVote(ctx context.Context, suggestionID, userID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error) {
	f.record("CastVote")
	if f.CastVoteFunc != nil {
		return f.CastVoteFunc(ctx, suggestionID, userID, voteType)
	}
	return &suggestiondb.Vote{SuggestionID: suggestionID, UserID: userID, VoteType: voteType}, nil
}

func (f *FakeSuggestionService) CreateSuggestion(ctx context.Context, req suggestionservice.CreateSuggestionRequest) (*suggestiondb.Suggestion, error) {
	f.record("CreateSuggestion")
	if f.CreateSuggestionFunc != nil {
		return f.CreateSuggestionFunc(ctx, req)
	}
	return &suggestiondb.Suggestion{}, nil
}

func (f *FakeSuggestionService) ListSuggestions(ctx context.Context) ([]suggestiondb.Suggestion, error) {
	f.record("ListSuggestions")
	if f.ListSuggestionsFunc != nil {
		return f.ListSuggestionsFunc(ctx)
	}
	return []suggestiondb.Suggestion{}, nil
}

func (f *FakeSuggestionService) UpdateSuggestionStatus(ctx context.Context, suggestionID int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error) {
	f.record("UpdateSuggestionStatus")
	if f.UpdateSuggestionStatusFunc != nil {
		return f.UpdateSuggestionStatusFunc(ctx, suggestionID, status)
	}
	return &suggestiondb.Suggestion{ID: suggestionID, Status: status}, nil
}

func (f *FakeSuggestionService) RenderVoteChart(ctx context.Context, limit int) ([]byte, error) {
	f.record("RenderVoteChart")
	if f.RenderVoteChartFunc != nil {
		return f.RenderVoteChartFunc(ctx, limit)
	}
	return []byte{}, nil
}

func (f *FakeSuggestionService) AuditVoteCounters(ctx context.Context) (suggestionservice.AuditReport, error) {
	f.record("AuditVoteCounters")
	if f.AuditVoteCountersFunc != nil {
		return f.AuditVoteCountersFunc(ctx)
	}
	return suggestionservice.AuditReport{}, nil
}

// --- Accessors for assertions ---

func (f *FakeSuggestionService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ suggestionservice.Service = (*FakeSuggestionService)(nil)

// ------------------------
// Recording Event Bus
// ------------------------

type published struct {
	topic   string
	payload any
}

type recordingBus struct {
	events []published
	err    error
}

func (b *recordingBus) Publish(_ context.Context, topic string, payload any) error {
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, published{topic: topic, payload: payload})
	return nil
}

func (b *recordingBus) Close() error { return nil }

var errBusDown = errors.New("nats: connection closed")
