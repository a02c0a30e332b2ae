package executor

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"promopilot/internal/logging"
)

// LogEntry records one simulated post execution.
type LogEntry struct {
	CampaignID    string    `json:"campaign_id"`
	Platform      string    `json:"platform"`
	ExecutionTime time.Time `json:"execution_time"`
	Status        string    `json:"status"`
}

// ExecutionResult is the outcome of executing a campaign across platforms.
type ExecutionResult struct {
	CampaignID        string        `json:"campaign_id"`
	StartedAt         time.Time     `json:"started_at"`
	PlatformsTargeted []string      `json:"platforms_targeted"`
	Posts             []*PostResult `json:"posts"`
}

// CampaignStatus summarizes the execution log for one campaign.
type CampaignStatus struct {
	CampaignID     string     `json:"campaign_id"`
	TotalPlatforms int        `json:"total_platforms"`
	Executions     []LogEntry `json:"executions"`
	Status         string     `json:"status"`
}

// Executor manages the campaign execution workflow on top of the simulator.
type Executor struct {
	sim *Simulator
	log []LogEntry
}

// New creates an executor around the given simulator.
func New(sim *Simulator) *Executor {
	return &Executor{sim: sim}
}

// Simulator exposes the underlying simulator for analytics access.
func (e *Executor) Simulator() *Simulator {
	return e.sim
}

// ExecuteCampaign posts the campaign to each platform. Platforms without
// content are skipped.
func (e *Executor) ExecuteCampaign(
	campaignID string,
	platforms []string,
	contentPerPlatform map[string]string,
	startTime time.Time,
) *ExecutionResult {
	if startTime.IsZero() {
		startTime = time.Now()
	}

	result := &ExecutionResult{
		CampaignID:        campaignID,
		StartedAt:         time.Now(),
		PlatformsTargeted: platforms,
	}

	for _, platform := range platforms {
		content := contentPerPlatform[platform]
		if content == "" {
			continue
		}

		post := e.sim.PostToPlatform(platform, content, startTime)
		result.Posts = append(result.Posts, post)

		e.log = append(e.log, LogEntry{
			CampaignID:    campaignID,
			Platform:      platform,
			ExecutionTime: time.Now(),
			Status:        "executed",
		})
	}

	logging.Executor("executed campaign %s: %d posts", campaignID, len(result.Posts))
	return result
}

// ExecutionStatus returns the execution status of a campaign.
func (e *Executor) ExecutionStatus(campaignID string) CampaignStatus {
	var entries []LogEntry
	for _, entry := range e.log {
		if entry.CampaignID == campaignID {
			entries = append(entries, entry)
		}
	}

	status := "not_started"
	if len(entries) > 0 {
		status = "completed"
	}

	return CampaignStatus{
		CampaignID:     campaignID,
		TotalPlatforms: len(entries),
		Executions:     entries,
		Status:         status,
	}
}

// executionReport is the on-disk shape of an execution report export.
type executionReport struct {
	ExportTime             time.Time            `json:"export_time"`
	TotalCampaignsExecuted int                  `json:"total_campaigns_executed"`
	TotalPosts             int                  `json:"total_posts"`
	Analytics              map[string]Analytics `json:"analytics"`
	ExecutionLog           []LogEntry           `json:"execution_log"`
}

// ExportExecutionReport writes the execution log and analytics to a JSON file.
func (e *Executor) ExportExecutionReport(path string) error {
	campaigns := make(map[string]struct{})
	for _, entry := range e.log {
		campaigns[entry.CampaignID] = struct{}{}
	}

	report := executionReport{
		ExportTime:             time.Now(),
		TotalCampaignsExecuted: len(campaigns),
		TotalPosts:             len(e.sim.ExecutedPosts()),
		Analytics:              e.sim.AllAnalytics(),
		ExecutionLog:           e.log,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal execution report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write execution report: %w", err)
	}

	logging.Executor("exported execution report to %s", path)
	return nil
}
