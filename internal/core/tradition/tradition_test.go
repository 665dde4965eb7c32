// Copyright (c) 2026 Our Philly. All rights reserved.

package tradition

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourphilly/ourphilly/pkg/pointer"
)

var philly, _ = time.LoadLocation("America/New_York")

func TestTradition_Span(t *testing.T) {
	tests := []struct {
		name      string
		dates     string
		endDate   *string
		ok        bool
		wantStart string
		wantEnd   string
	}{
		{"single_day", "7/4/2025", nil, true, "2025-07-04", "2025-07-04"},
		{"explicit_end", "5/3/2025", pointer.To("5/5/2025"), true, "2025-05-03", "2025-05-05"},
		{"range_text_in_dates", "5/3/2025 through 5/5/2025", nil, true, "2025-05-03", "2025-05-03"},
		{"unparseable_end_is_single_day", "7/4/2025", pointer.To("sometime later"), true, "2025-07-04", "2025-07-04"},
		{"empty_end_is_single_day", "7/4/2025", pointer.To(""), true, "2025-07-04", "2025-07-04"},
		{"inverted_range_rejected", "5/5/2025", pointer.To("5/3/2025"), false, "", ""},
		{"no_token_rejected", "early summer", nil, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tradition := &Tradition{Dates: tt.dates, EndDate: tt.endDate}

			start, end, ok := tradition.Span(philly)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}

			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, tt.wantEnd, end.Format("2006-01-02"))
		})
	}
}

type stubRepository struct{ rows []*Tradition }

func (s stubRepository) ListAll(context.Context) ([]*Tradition, error) { return s.rows, nil }
func (s stubRepository) List(context.Context, int, int) ([]*Tradition, int, error) {
	return s.rows, len(s.rows), nil
}
func (stubRepository) FindBySlug(context.Context, string) (*Tradition, error) { return nil, nil }
func (stubRepository) Create(context.Context, *Tradition) error              { return nil }
func (stubRepository) Update(context.Context, *Tradition) error              { return nil }
func (stubRepository) Delete(context.Context, string) error                  { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_ListInWindow(t *testing.T) {
	repo := stubRepository{rows: []*Tradition{
		{ID: "inside", Name: "Inside", Dates: "6/14/2025"},
		{ID: "spills-out", Name: "Spills", Dates: "6/29/2025", EndDate: pointer.To("7/2/2025")},
		{ID: "outside", Name: "Outside", Dates: "7/4/2025"},
		{ID: "unparseable", Name: "Bad", Dates: "sometime in june"},
	}}
	service := NewService(repo, philly, discardLogger())

	start, _ := time.ParseInLocation("2006-01-02", "2025-06-01", philly)
	end := time.Date(2025, 6, 30, 23, 59, 59, 0, philly)

	matched, err := service.ListInWindow(context.Background(), start, end)
	require.NoError(t, err)

	// The span starting inside the window counts even though it ends past
	// it; unparseable rows are skipped, not errors.
	require.Len(t, matched, 2)
	assert.Equal(t, "inside", matched[0].ID)
	assert.Equal(t, "spills-out", matched[1].ID)
}
