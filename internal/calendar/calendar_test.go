package calendar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAcrossPlatforms_Once(t *testing.T) {
	cal := New()
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	events := cal.ScheduleAcrossPlatforms("camp_1", "Launch", []string{"LinkedIn", "Twitter"},
		map[string]string{"LinkedIn": "post a", "Twitter": "post b"},
		start, FrequencyOnce)

	require.Len(t, events, 2)
	assert.Equal(t, "camp_1", events[0].CampaignID)
	assert.Equal(t, "Launch", events[0].Title)
	assert.Equal(t, StatusScheduled, events[0].Status)
	assert.Equal(t, "post b", events[1].Content)
}

func TestScheduleAcrossPlatforms_Daily(t *testing.T) {
	cal := New()
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	events := cal.ScheduleAcrossPlatforms("camp_1", "Launch", []string{"LinkedIn"},
		map[string]string{"LinkedIn": "post"}, start, FrequencyDaily)

	require.Len(t, events, 7)
	assert.Equal(t, "camp_1_day1", events[0].CampaignID)
	assert.Equal(t, "Launch - Day 1", events[0].Title)
	assert.Equal(t, "camp_1_day7", events[6].CampaignID)
	assert.Equal(t, "Launch - Day 7", events[6].Title)
	assert.Equal(t, start.AddDate(0, 0, 6), events[6].ScheduledTime)
}

func TestScheduleAcrossPlatforms_Weekly(t *testing.T) {
	cal := New()
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	events := cal.ScheduleAcrossPlatforms("camp_1", "Launch", []string{"TikTok"},
		map[string]string{"TikTok": "post"}, start, FrequencyWeekly)

	require.Len(t, events, 4)
	assert.Equal(t, "camp_1_week4", events[3].CampaignID)
	assert.Equal(t, "Launch - Week 4", events[3].Title)
	assert.Equal(t, start.AddDate(0, 0, 21), events[3].ScheduledTime)
}

func TestUpcoming_SortsAndFilters(t *testing.T) {
	cal := New()
	now := time.Now()

	cal.Add(&Event{CampaignID: "late", Platform: "Twitter", Title: "late", ScheduledTime: now.AddDate(0, 0, 5)})
	cal.Add(&Event{CampaignID: "soon", Platform: "Twitter", Title: "soon", ScheduledTime: now.AddDate(0, 0, 1)})
	cal.Add(&Event{CampaignID: "past", Platform: "Twitter", Title: "past", ScheduledTime: now.AddDate(0, 0, -1)})
	cal.Add(&Event{CampaignID: "far", Platform: "Twitter", Title: "far", ScheduledTime: now.AddDate(0, 0, 30)})

	upcoming := cal.Upcoming(7)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].CampaignID)
	assert.Equal(t, "late", upcoming[1].CampaignID)
}

func TestMarkExecuted_DeterministicMetrics(t *testing.T) {
	cal := New()
	a := &Event{CampaignID: "camp_42", Platform: "LinkedIn", Title: "a"}
	b := &Event{CampaignID: "camp_42", Platform: "Twitter", Title: "b"}

	cal.MarkExecuted(a)
	cal.MarkExecuted(b)

	assert.Equal(t, StatusExecuted, a.Status)
	// Same campaign ID must yield identical metrics
	assert.Equal(t, a.PerformanceMetrics, b.PerformanceMetrics)

	assert.GreaterOrEqual(t, a.PerformanceMetrics["reach"], 5000)
	assert.Less(t, a.PerformanceMetrics["reach"], 15000)
	assert.GreaterOrEqual(t, a.PerformanceMetrics["engagement"], 250)
	assert.Less(t, a.PerformanceMetrics["engagement"], 1250)
	assert.GreaterOrEqual(t, a.PerformanceMetrics["clicks"], 50)
	assert.Less(t, a.PerformanceMetrics["clicks"], 550)
	assert.GreaterOrEqual(t, a.PerformanceMetrics["conversions"], 5)
	assert.Less(t, a.PerformanceMetrics["conversions"], 55)
}

func TestView_ContainsEvents(t *testing.T) {
	cal := New()
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	cal.Add(&Event{
		CampaignID:    "camp_1",
		Platform:      "Instagram",
		Title:         "A very long campaign title that should be truncated for display",
		ScheduledTime: start.AddDate(0, 0, 1),
	})

	view := cal.View(start, 7)
	assert.Contains(t, view, "Campaign Calendar")
	assert.Contains(t, view, "Instagram")
	assert.Contains(t, view, "2026-09-01 09:00")
	// Truncated to 40 chars
	assert.NotContains(t, view, "truncated for display")
}

func TestExport_ValidJSON(t *testing.T) {
	cal := New()
	cal.Add(&Event{
		CampaignID:    "camp_1",
		Platform:      "LinkedIn",
		Title:         "Launch",
		Content:       "post",
		ScheduledTime: time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	})

	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, cal.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload struct {
		ExportedAt     time.Time `json:"exported_at"`
		TotalCampaigns int       `json:"total_campaigns"`
		Events         []Event   `json:"events"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))

	assert.Equal(t, 1, payload.TotalCampaigns)
	require.Len(t, payload.Events, 1)
	assert.Equal(t, "camp_1", payload.Events[0].CampaignID)
	assert.False(t, payload.ExportedAt.IsZero())
	assert.True(t, strings.Contains(string(data), `"performance_metrics"`))
}

func TestPlatformSummary(t *testing.T) {
	cal := New()
	cal.Add(&Event{CampaignID: "a", Platform: "LinkedIn", ScheduledTime: time.Now()})
	cal.Add(&Event{CampaignID: "b", Platform: "LinkedIn", ScheduledTime: time.Now()})
	cal.Add(&Event{CampaignID: "c", Platform: "TikTok", ScheduledTime: time.Now()})

	summary := cal.PlatformSummary()
	assert.Equal(t, map[string]int{"LinkedIn": 2, "TikTok": 1}, summary)
}
