package suggestionservice

import (
	"bytes"
	"context"
	"math"
	"strconv"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	DefaultChartLimit = 10
	MaxChartLimit     = 25

	chartLabelLength = 18
)

var (
	chartBackground = drawing.ColorFromHex("1b1f2a")
	chartText       = drawing.ColorFromHex("e6e6e6")
	chartUpvote     = drawing.ColorFromHex("3fb950")
	chartDownvote   = drawing.ColorFromHex("f85149")
)

// RenderVoteChart draws the top suggestions by net score as a PNG bar chart.
func (s *SuggestionService) RenderVoteChart(ctx context.Context, limit int) ([]byte, error) {
	if limit == 0 {
		limit = DefaultChartLimit
	}
	return operation.Run(s.run, ctx, "RenderVoteChart", strconv.Itoa(limit), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]byte, error], error) {
		if err := validate.Range("limit", limit, 1, MaxChartLimit); err != nil {
			return results.FailureResult[[]byte, error](err), nil
		}

		suggestions, err := s.repo.ListTopSuggestions(ctx, db, limit)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}

		png, err := GenerateVoteChart(suggestions)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
}

// GenerateVoteChart renders one bar per suggestion at its net score, drawn up
// from zero for positive scores and down for negative ones.
func GenerateVoteChart(suggestions []suggestiondb.Suggestion) ([]byte, error) {
	bars := make([]chart.Value, 0, len(suggestions))
	low, high := 0.0, 0.0
	for _, sg := range suggestions {
		score := float64(sg.Score())
		color := chartUpvote
		if score < 0 {
			color = chartDownvote
		}
		bars = append(bars, chart.Value{
			Label: chartLabel(sg.Title),
			Value: score,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
		low = math.Min(low, score)
		high = math.Max(high, score)
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: "No suggestions yet", Value: 0})
	}

	graph := chart.BarChart{
		Title:        "Suggestion votes (net score)",
		TitleStyle:   chart.Style{FontColor: chartText},
		Width:        120*len(bars) + 200,
		Height:       480,
		BarWidth:     60,
		Background:   chart.Style{FillColor: chartBackground},
		Canvas:       chart.Style{FillColor: chartBackground},
		XAxis:        chart.Style{FontColor: chartText, StrokeColor: chartText},
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: chartText, StrokeColor: chartText},
			// Pad by one vote so the range is never empty and zero is always visible.
			Range: &chart.ContinuousRange{Min: low - 1, Max: high + 1},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func chartLabel(title string) string {
	runes := []rune(title)
	if len(runes) <= chartLabelLength {
		return title
	}
	return string(runes[:chartLabelLength-1]) + "…"
}
