// Package orchestrator wires the planner, calendar, executor and
// tracker into the complete campaign lifecycle: plan, schedule,
// execute, track, report, export.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"promopilot/internal/agent"
	"promopilot/internal/calendar"
	"promopilot/internal/executor"
	"promopilot/internal/logging"
	"promopilot/internal/planner"
	"promopilot/internal/tracker"
)

// ExecutionSummary describes one execution sweep over the calendar.
type ExecutionSummary struct {
	Timestamp          time.Time              `json:"timestamp"`
	Status             string                 `json:"status"`
	TotalPostsExecuted int                    `json:"total_posts_executed"`
	PlatformsCovered   []string               `json:"platforms_covered"`
	Executions         []*executor.PostResult `json:"executions"`
}

// WorkflowStats holds the headline numbers of a completed workflow.
type WorkflowStats struct {
	TotalEventsScheduled int    `json:"total_events_scheduled"`
	PlatformsTargeted    int    `json:"platforms_targeted"`
	PostsExecuted        int    `json:"posts_executed"`
	CalendarExport       string `json:"calendar_export"`
}

// WorkflowResult is the outcome of RunCompleteWorkflow.
type WorkflowResult struct {
	CampaignID       string                        `json:"campaign_id"`
	CampaignName     string                        `json:"campaign_name"`
	WorkflowStatus   string                        `json:"workflow_status"`
	StepsCompleted   []string                      `json:"steps_completed"`
	Stats            WorkflowStats                 `json:"stats"`
	AnalyticsSummary map[string]executor.Analytics `json:"analytics_summary"`
	ReportPreview    string                        `json:"report_preview"`
}

// Orchestrator manages the full campaign lifecycle. All components
// share a single in-memory state for the life of the process.
type Orchestrator struct {
	planner   *planner.Planner
	calendar  *calendar.Calendar
	executor  *executor.Executor
	tracker   *tracker.Tracker
	campaigns map[string]*planner.Plan
	outputDir string
}

// New builds an orchestrator. The client may be nil, in which case
// planning and analysis use the built-in tables only. The output
// directory is created if it does not exist.
func New(client agent.Client, outputDir string) (*Orchestrator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	return &Orchestrator{
		planner:   planner.New(client),
		calendar:  calendar.New(),
		executor:  executor.New(executor.NewSimulator(nil)),
		tracker:   tracker.New(client),
		campaigns: make(map[string]*planner.Plan),
		outputDir: outputDir,
	}, nil
}

func (o *Orchestrator) Calendar() *calendar.Calendar { return o.calendar }
func (o *Orchestrator) Tracker() *tracker.Tracker    { return o.tracker }

// PlanCampaign plans a campaign and registers it for scheduling.
func (o *Orchestrator) PlanCampaign(ctx context.Context, req planner.Request) *planner.Plan {
	fmt.Printf("\n🎯 Planning campaign: %s\n", req.Name)
	fmt.Printf("   Audience: %s\n", req.TargetAudience)
	fmt.Printf("   Goal: %s\n", req.Goal)
	fmt.Printf("   Platforms: %s\n", strings.Join(req.Platforms, ", "))
	duration := req.DurationDays
	if duration == 0 {
		duration = 28
	}
	fmt.Printf("   Duration: %d days\n", duration)

	plan := o.planner.Plan(ctx, req)
	o.campaigns[plan.CampaignID] = plan
	fmt.Printf("✓ Campaign plan created with ID: %s\n", plan.CampaignID)

	return plan
}

// ScheduleCampaign expands a planned campaign into calendar events.
func (o *Orchestrator) ScheduleCampaign(campaignID string, frequency calendar.Frequency) ([]*calendar.Event, error) {
	plan, ok := o.campaigns[campaignID]
	if !ok {
		fmt.Printf("❌ Campaign %s not found\n", campaignID)
		return nil, fmt.Errorf("campaign %s not found", campaignID)
	}

	fmt.Printf("\n📅 Scheduling campaign: %s\n", plan.Name)
	fmt.Printf("   Frequency: %s\n", frequency)

	events := o.calendar.ScheduleAcrossPlatforms(
		plan.CampaignID, plan.Name, plan.Platforms, plan.Content,
		plan.StartDate, frequency)

	fmt.Printf("✓ Scheduled %d posts across %d platforms\n",
		len(events), len(plan.Platforms))
	logging.Calendar("campaign %s scheduled: %d events", campaignID, len(events))
	return events, nil
}

// ExecuteScheduled simulates posting every event due in the next
// seven days and marks each one executed.
func (o *Orchestrator) ExecuteScheduled() *ExecutionSummary {
	fmt.Println("\n🚀 Executing scheduled campaigns...")

	upcoming := o.calendar.Upcoming(7)
	if len(upcoming) == 0 {
		fmt.Println("   No campaigns scheduled for the next 7 days")
		return &ExecutionSummary{
			Timestamp: time.Now(),
			Status:    "no_campaigns",
		}
	}

	summary := &ExecutionSummary{
		Timestamp: time.Now(),
		Status:    "completed",
	}
	seen := make(map[string]bool)

	sim := o.executor.Simulator()
	for _, event := range upcoming {
		result := sim.PostToPlatform(event.Platform, event.Content, event.ScheduledTime)
		summary.Executions = append(summary.Executions, result)
		summary.TotalPostsExecuted++
		seen[event.Platform] = true

		o.calendar.MarkExecuted(event)
	}

	for platform := range seen {
		summary.PlatformsCovered = append(summary.PlatformsCovered, platform)
	}
	sort.Strings(summary.PlatformsCovered)

	fmt.Printf("✓ Executed %d posts on %d platforms\n",
		summary.TotalPostsExecuted, len(summary.PlatformsCovered))
	logging.Executor("execution sweep: %d posts, %d platforms",
		summary.TotalPostsExecuted, len(summary.PlatformsCovered))
	return summary
}

// TrackPerformance returns the current per-platform analytics.
func (o *Orchestrator) TrackPerformance() map[string]executor.Analytics {
	fmt.Println("\n📊 Tracking campaign performance...")
	return o.executor.Simulator().AllAnalytics()
}

// GeneratePerformanceReport renders the analytics report and saves a
// timestamped copy under the output directory.
func (o *Orchestrator) GeneratePerformanceReport() (string, error) {
	fmt.Println("\n📈 Generating performance report...")

	analytics := o.TrackPerformance()
	report := o.tracker.Report(analytics)

	path := filepath.Join(o.outputDir,
		fmt.Sprintf("performance_report_%s.txt", time.Now().Format("20060102_150405")))
	if err := o.tracker.SaveReport(report, path); err != nil {
		return "", err
	}

	return report, nil
}

// ExportCalendar writes a timestamped calendar snapshot and returns
// the file path.
func (o *Orchestrator) ExportCalendar() (string, error) {
	path := filepath.Join(o.outputDir,
		fmt.Sprintf("campaign_calendar_%s.json", time.Now().Format("20060102_150405")))
	if err := o.calendar.Export(path); err != nil {
		return "", err
	}
	return path, nil
}

// Analyze runs the insight step over the current analytics.
func (o *Orchestrator) Analyze(ctx context.Context) tracker.Analysis {
	return o.tracker.Analyze(ctx, o.executor.Simulator().AllAnalytics())
}

// RunCompleteWorkflow runs the whole lifecycle for one campaign:
// plan, schedule daily posts, print the calendar, execute the coming
// week, report, and export.
func (o *Orchestrator) RunCompleteWorkflow(ctx context.Context, req planner.Request) (*WorkflowResult, error) {
	rule := strings.Repeat("=", 80)
	fmt.Println("\n" + rule)
	fmt.Println("🤖 PROMOPILOT CAMPAIGN PLANNER & EXECUTIONER")
	fmt.Println(rule)

	plan := o.PlanCampaign(ctx, req)

	events, err := o.ScheduleCampaign(plan.CampaignID, calendar.FrequencyDaily)
	if err != nil {
		return nil, err
	}

	// Show the same window the execution sweep covers.
	fmt.Println(o.calendar.View(time.Now(), 7))

	execution := o.ExecuteScheduled()

	report, err := o.GeneratePerformanceReport()
	if err != nil {
		return nil, err
	}

	exportPath, err := o.ExportCalendar()
	if err != nil {
		return nil, err
	}

	result := &WorkflowResult{
		CampaignID:     plan.CampaignID,
		CampaignName:   plan.Name,
		WorkflowStatus: "completed",
		StepsCompleted: []string{
			"Campaign Planning",
			"Calendar Scheduling",
			"Campaign Execution",
			"Performance Tracking",
			"Report Generation",
		},
		Stats: WorkflowStats{
			TotalEventsScheduled: len(events),
			PlatformsTargeted:    len(plan.Platforms),
			PostsExecuted:        execution.TotalPostsExecuted,
			CalendarExport:       exportPath,
		},
		AnalyticsSummary: o.executor.Simulator().AllAnalytics(),
		ReportPreview:    previewText(report, 500),
	}

	fmt.Println("\n" + rule)
	fmt.Println("✅ WORKFLOW COMPLETED SUCCESSFULLY")
	fmt.Println(rule)

	return result, nil
}

func previewText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
