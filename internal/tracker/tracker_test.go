package tracker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promopilot/internal/executor"
)

type mockClient struct {
	response string
	err      error
	prompts  []string
}

func (m *mockClient) Complete(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func (m *mockClient) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func sampleAnalytics() map[string]executor.Analytics {
	return map[string]executor.Analytics{
		"LinkedIn": {
			Platform:          "LinkedIn",
			PostsCount:        3,
			TotalReach:        27500,
			TotalEngagements:  812,
			AvgEngagementRate: 2.95,
			TotalClicks:       160,
			TotalConversions:  9,
			CTR:               0.58,
			ConversionRate:    5.63,
		},
		"Twitter": {
			Platform:   "Twitter",
			PostsCount: 0,
		},
	}
}

func TestReport_Format(t *testing.T) {
	tr := New(nil)
	report := tr.Report(sampleAnalytics())

	assert.Contains(t, report, "📊 CAMPAIGN PERFORMANCE REPORT")
	assert.Contains(t, report, "📱 LinkedIn")
	assert.Contains(t, report, "📱 Twitter")
	assert.Contains(t, report, "Total Reach:       27,500")
	assert.Contains(t, report, "Engagement Rate:   2.95%")
	assert.Contains(t, report, "Conv. Rate:        5.63%")
	assert.Contains(t, report, "📈 OVERALL SUMMARY")
	assert.Contains(t, report, "Total Engagements: 812")

	// LinkedIn sorts before Twitter
	assert.Less(t,
		strings.Index(report, "📱 LinkedIn"),
		strings.Index(report, "📱 Twitter"))
}

func TestReport_OmitsConvRateWithoutClicks(t *testing.T) {
	tr := New(nil)
	report := tr.Report(map[string]executor.Analytics{
		"Twitter": {Platform: "Twitter", PostsCount: 1},
	})

	assert.NotContains(t, report, "Conv. Rate")
	// no reach means no average either
	assert.NotContains(t, report, "Avg Engagement %")
}

func TestAnalyze_WithClient(t *testing.T) {
	client := &mockClient{response: "Double down on LinkedIn."}
	tr := New(client)

	analysis := tr.Analyze(context.Background(), sampleAnalytics())

	assert.Equal(t, "ai", analysis.Type)
	assert.Equal(t, "Double down on LinkedIn.", analysis.Insights)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "LinkedIn")
}

func TestAnalyze_FallsBackOnError(t *testing.T) {
	tr := New(&mockClient{err: errors.New("quota exceeded")})

	analysis := tr.Analyze(context.Background(), sampleAnalytics())

	assert.Equal(t, "basic", analysis.Type)
	assert.Empty(t, analysis.Insights)
	assert.Equal(t, "Campaign performance analysis generated", analysis.Summary)
}

func TestAnalyze_NilClient(t *testing.T) {
	tr := New(nil)
	analysis := tr.Analyze(context.Background(), sampleAnalytics())
	assert.Equal(t, "basic", analysis.Type)
}

func TestTrackPerformance(t *testing.T) {
	tr := New(nil)

	assert.Nil(t, tr.PerformanceSummary("camp_missing"))

	tr.TrackPerformance("camp_1", map[string]int{"reach": 9000})
	summary := tr.PerformanceSummary("camp_1")
	assert.Equal(t, 9000, summary["reach"])
}

func TestSaveReport(t *testing.T) {
	tr := New(nil)
	path := filepath.Join(t.TempDir(), "report.txt")

	report := tr.Report(sampleAnalytics())
	require.NoError(t, tr.SaveReport(report, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, report, string(data))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "27,500", groupDigits(27500))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
	assert.Equal(t, "-1,234", groupDigits(-1234))
}
