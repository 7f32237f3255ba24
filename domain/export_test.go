package domain

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	req := require.New(t)

	format, err := ParseExportFormat("HtmlLight")
	req.NoError(err)
	req.Equal(HTMLLight, format)
	req.Equal("Light", format.ThemeName())
	req.Equal("Dark", HTMLDark.ThemeName())

	// Configuration files keep using the historical names
	format, err = ParseExportFormat("HtmlDark")
	req.NoError(err)
	req.Equal(HTMLDark, format)

	_, err = ParseExportFormat("Csv")
	req.Error(err)
}

func TestRange_Contains(t *testing.T) {
	after := origin
	before := origin.Add(time.Hour)
	tests := []struct {
		description string
		r           Range
		at          time.Time
		want        bool
	}{
		{"Should accept anything when unbounded", Range{}, origin, true},
		{"Should exclude the lower bound", Range{After: &after}, origin, false},
		{"Should accept after the lower bound", Range{After: &after}, origin.Add(time.Second), true},
		{"Should exclude the upper bound", Range{Before: &before}, before, false},
		{"Should accept inside both bounds", Range{After: &after, Before: &before}, origin.Add(time.Minute), true},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, tt.r.Contains(tt.at))
		})
	}
}

func TestExportRequest_FormatDate(t *testing.T) {
	req := require.New(t)

	req.Equal("01-Mar-24 12:00 PM", ExportRequest{}.FormatDate(origin))
	req.Equal("2024-03-01", ExportRequest{DateFormat: "2006-01-02"}.FormatDate(origin))
}

func TestMessage_IsEdited(t *testing.T) {
	m := message("alice", 0)
	require.False(t, m.IsEdited())

	m.EditedTimestamp = lo.ToPtr(origin.Add(time.Minute))
	require.True(t, m.IsEdited())
}
