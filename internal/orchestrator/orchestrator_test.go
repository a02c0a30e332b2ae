package orchestrator

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"promopilot/internal/calendar"
	"promopilot/internal/planner"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	o, err := New(nil, t.TempDir())
	require.NoError(t, err)
	return o
}

func testRequest() planner.Request {
	return planner.Request{
		Name:           "Spring Launch",
		TargetAudience: "B2B SaaS buyers",
		Goal:           "Generate qualified leads",
		Platforms:      []string{"LinkedIn", "Twitter"},
		Budget:         "$5,000",
		StartDate:      time.Now().Add(time.Hour),
	}
}

func TestPlanCampaign_RegistersCampaign(t *testing.T) {
	o := newTestOrchestrator(t)

	plan := o.PlanCampaign(context.Background(), testRequest())

	require.NotNil(t, plan)
	assert.Contains(t, plan.CampaignID, "camp_")
	assert.Same(t, plan, o.campaigns[plan.CampaignID])
}

func TestScheduleCampaign_UnknownID(t *testing.T) {
	o := newTestOrchestrator(t)

	events, err := o.ScheduleCampaign("camp_missing", calendar.FrequencyDaily)
	assert.Error(t, err)
	assert.Empty(t, events)
}

func TestScheduleCampaign_Daily(t *testing.T) {
	o := newTestOrchestrator(t)
	plan := o.PlanCampaign(context.Background(), testRequest())

	events, err := o.ScheduleCampaign(plan.CampaignID, calendar.FrequencyDaily)
	require.NoError(t, err)
	// 7 daily posts per platform
	assert.Len(t, events, 14)
	assert.Len(t, o.calendar.Events(), 14)
}

func TestExecuteScheduled_EmptyCalendar(t *testing.T) {
	o := newTestOrchestrator(t)

	summary := o.ExecuteScheduled()
	assert.Equal(t, "no_campaigns", summary.Status)
	assert.Zero(t, summary.TotalPostsExecuted)
}

func TestExecuteScheduled_MarksEvents(t *testing.T) {
	o := newTestOrchestrator(t)
	plan := o.PlanCampaign(context.Background(), testRequest())
	_, err := o.ScheduleCampaign(plan.CampaignID, calendar.FrequencyDaily)
	require.NoError(t, err)

	summary := o.ExecuteScheduled()

	assert.Equal(t, "completed", summary.Status)
	assert.Equal(t, 14, summary.TotalPostsExecuted)
	assert.Equal(t, []string{"LinkedIn", "Twitter"}, summary.PlatformsCovered)

	for _, event := range o.calendar.Events() {
		assert.Equal(t, calendar.StatusExecuted, event.Status)
		assert.NotEmpty(t, event.PerformanceMetrics)
	}
}

func TestRunCompleteWorkflow(t *testing.T) {
	outputDir := t.TempDir()
	o, err := New(nil, outputDir)
	require.NoError(t, err)

	result, err := o.RunCompleteWorkflow(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "Spring Launch", result.CampaignName)
	assert.Equal(t, "completed", result.WorkflowStatus)

	wantSteps := []string{
		"Campaign Planning",
		"Calendar Scheduling",
		"Campaign Execution",
		"Performance Tracking",
		"Report Generation",
	}
	if diff := cmp.Diff(wantSteps, result.StepsCompleted); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 14, result.Stats.TotalEventsScheduled)
	assert.Equal(t, 2, result.Stats.PlatformsTargeted)
	assert.Equal(t, 14, result.Stats.PostsExecuted)
	assert.LessOrEqual(t, len([]rune(result.ReportPreview)), 500)
	assert.Contains(t, result.ReportPreview, "CAMPAIGN PERFORMANCE REPORT")

	reports, err := filepath.Glob(filepath.Join(outputDir, "performance_report_*.txt"))
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	exports, err := filepath.Glob(filepath.Join(outputDir, "campaign_calendar_*.json"))
	require.NoError(t, err)
	assert.Len(t, exports, 1)
	assert.Equal(t, exports[0], result.Stats.CalendarExport)

	linkedin := result.AnalyticsSummary["LinkedIn"]
	assert.Equal(t, 7, linkedin.PostsCount)
	assert.Positive(t, linkedin.TotalReach)
}

func TestRunCompleteWorkflow_ViewMatchesExecutionWindow(t *testing.T) {
	o, err := New(nil, t.TempDir())
	require.NoError(t, err)

	// Campaign starting beyond the 7-day window: nothing should show
	// in the printed calendar and nothing should execute.
	req := testRequest()
	req.StartDate = time.Now().AddDate(0, 0, 10)

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	result, runErr := o.RunCompleteWorkflow(context.Background(), req)

	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	require.NoError(t, runErr)
	assert.Equal(t, 14, result.Stats.TotalEventsScheduled)
	assert.Zero(t, result.Stats.PostsExecuted)

	output := string(out)
	assert.Contains(t, output, "📅 Campaign Calendar")
	assert.NotContains(t, output, "- Day 1")
	assert.Contains(t, output, "No campaigns scheduled for the next 7 days")
}

func TestAnalyze_NilClientUsesBasicPath(t *testing.T) {
	o := newTestOrchestrator(t)
	analysis := o.Analyze(context.Background())
	assert.Equal(t, "basic", analysis.Type)
}
