// Package planner builds campaign plans: per-platform strategies and
// sample content. With an LLM client configured, the content agent writes
// the copy; without one (or on any API failure) the built-in platform
// tables are used instead.
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"promopilot/internal/agent"
	"promopilot/internal/logging"
)

// Strategy is a platform-specific campaign strategy.
type Strategy struct {
	PostingFrequency string   `json:"posting_frequency"`
	ContentType      string   `json:"content_type"`
	PrimaryKPIs      []string `json:"primary_kpis"`
	GoalAlignment    string   `json:"goal_alignment"`
}

// Plan is a complete campaign plan.
type Plan struct {
	CampaignID     string              `json:"campaign_id"`
	Name           string              `json:"name"`
	TargetAudience string              `json:"target_audience"`
	Goal           string              `json:"goal"`
	Platforms      []string            `json:"platforms"`
	Budget         string              `json:"budget"`
	StartDate      time.Time           `json:"start_date"`
	DurationDays   int                 `json:"duration_days"`
	Strategies     map[string]Strategy `json:"strategies"`
	Content        map[string]string   `json:"content"`
	StrategyNotes  string              `json:"strategy_notes,omitempty"`
}

// Request holds the inputs for planning a campaign.
type Request struct {
	Name           string
	TargetAudience string
	Goal           string
	Platforms      []string
	Budget         string
	DurationDays   int       // 0 = default 28
	StartDate      time.Time // zero = now
}

// Planner creates campaign plans.
type Planner struct {
	client agent.Client // nil = tables only
}

// New creates a planner. A nil client disables the content agent.
func New(client agent.Client) *Planner {
	return &Planner{client: client}
}

// Plan builds a campaign plan from the request.
func (p *Planner) Plan(ctx context.Context, req Request) *Plan {
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	durationDays := req.DurationDays
	if durationDays == 0 {
		durationDays = 28
	}

	campaignID := fmt.Sprintf("camp_%s", uuid.New().String()[:8])

	plan := &Plan{
		CampaignID:     campaignID,
		Name:           req.Name,
		TargetAudience: req.TargetAudience,
		Goal:           req.Goal,
		Platforms:      req.Platforms,
		Budget:         req.Budget,
		StartDate:      startDate,
		DurationDays:   durationDays,
		Strategies:     p.strategies(req.Platforms, req.Goal),
		Content:        p.content(ctx, req),
		StrategyNotes:  p.strategyNotes(ctx, req),
	}

	logging.Planner("planned campaign %s (%q) across %d platforms",
		campaignID, req.Name, len(req.Platforms))
	return plan
}

// strategies fills the per-platform strategy map from the built-in table.
func (p *Planner) strategies(platforms []string, goal string) map[string]Strategy {
	strategies := make(map[string]Strategy, len(platforms))
	for _, platform := range platforms {
		row, ok := strategyDetails[platform]
		if !ok {
			row = strategyRow{Frequency: "Regular", ContentType: "General"}
		}
		strategies[platform] = Strategy{
			PostingFrequency: row.Frequency,
			ContentType:      row.ContentType,
			PrimaryKPIs:      row.KPIs,
			GoalAlignment:    fmt.Sprintf("Aligned with '%s'", goal),
		}
	}
	return strategies
}

// strategyNotes asks the strategist agent for a campaign-wide
// rationale. Without a client, or on any failure, the notes stay
// empty and the table-driven strategies stand on their own.
func (p *Planner) strategyNotes(ctx context.Context, req Request) string {
	if p.client == nil {
		return ""
	}

	notes, err := p.client.CompleteWithSystem(ctx,
		agent.StrategistSystemPrompt,
		agent.StrategyPrompt(req.Name, req.TargetAudience, req.Goal, req.Budget, req.Platforms))
	if err != nil {
		fmt.Printf("Warning: AI planning failed (%v), using basic planning\n", err)
		logging.PlannerWarn("strategist agent failed: %v", err)
		return ""
	}
	return notes
}

// content generates sample posts per platform. The content agent is
// tried first when configured; any failure degrades to the template.
func (p *Planner) content(ctx context.Context, req Request) map[string]string {
	content := make(map[string]string, len(req.Platforms))
	for _, platform := range req.Platforms {
		content[platform] = p.platformContent(ctx, req, platform)
	}
	return content
}

func (p *Planner) platformContent(ctx context.Context, req Request, platform string) string {
	if p.client == nil {
		return templateContent(platform, req.Name, req.TargetAudience)
	}

	copyText, err := p.client.CompleteWithSystem(ctx,
		agent.ContentSystemPrompt,
		agent.ContentPrompt(req.Name, req.TargetAudience, platform))
	if err != nil {
		fmt.Printf("Warning: AI content generation failed for %s (%v), using template\n", platform, err)
		logging.PlannerWarn("content agent failed for %s: %v", platform, err)
		return templateContent(platform, req.Name, req.TargetAudience)
	}
	return copyText
}
