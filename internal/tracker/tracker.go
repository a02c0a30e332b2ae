// Package tracker turns raw platform analytics into human-readable
// performance reports and, when an LLM client is available, strategic
// insights about what to change next.
package tracker

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"promopilot/internal/agent"
	"promopilot/internal/executor"
	"promopilot/internal/logging"
)

// Analysis is the result of analyzing a set of campaign analytics.
// Insights is empty when the analysis fell back to the basic path.
type Analysis struct {
	Timestamp       time.Time                     `json:"analysis_timestamp"`
	PerformanceData map[string]executor.Analytics `json:"performance_data"`
	Type            string                        `json:"analysis_type"`
	Insights        string                        `json:"insights,omitempty"`
	Summary         string                        `json:"summary"`
}

type trackedMetrics struct {
	TrackedAt time.Time      `json:"tracked_at"`
	Metrics   map[string]int `json:"metrics"`
}

// Tracker records per-campaign metrics and renders performance reports.
// The agent client is optional; without one every analysis takes the
// basic non-AI path.
type Tracker struct {
	client agent.Client
	data   map[string]trackedMetrics
}

func New(client agent.Client) *Tracker {
	return &Tracker{
		client: client,
		data:   make(map[string]trackedMetrics),
	}
}

// TrackPerformance stores a metrics snapshot for a campaign.
func (t *Tracker) TrackPerformance(campaignID string, metrics map[string]int) {
	t.data[campaignID] = trackedMetrics{
		TrackedAt: time.Now(),
		Metrics:   metrics,
	}
	logging.Tracker("tracked metrics for %s: %v", campaignID, metrics)
}

// PerformanceSummary returns the last tracked metrics for a campaign,
// or nil when nothing has been tracked.
func (t *Tracker) PerformanceSummary(campaignID string) map[string]int {
	entry, ok := t.data[campaignID]
	if !ok {
		return nil
	}
	return entry.Metrics
}

// Analyze produces insights for the given analytics. With a client it
// asks the model for recommendations; on any failure it degrades to a
// basic summary and keeps going.
func (t *Tracker) Analyze(ctx context.Context, analytics map[string]executor.Analytics) Analysis {
	if t.client == nil {
		return t.basicAnalysis(analytics)
	}

	insights, err := t.client.CompleteWithSystem(ctx,
		agent.InsightsSystemPrompt, agent.InsightsPrompt(analytics))
	if err != nil {
		fmt.Printf("Warning: AI analysis failed (%v), using basic analysis\n", err)
		logging.TrackerDebug("insight generation failed: %v", err)
		return t.basicAnalysis(analytics)
	}

	return Analysis{
		Timestamp:       time.Now(),
		PerformanceData: analytics,
		Type:            "ai",
		Insights:        insights,
		Summary:         "Campaign performance analysis generated",
	}
}

func (t *Tracker) basicAnalysis(analytics map[string]executor.Analytics) Analysis {
	return Analysis{
		Timestamp:       time.Now(),
		PerformanceData: analytics,
		Type:            "basic",
		Summary:         "Campaign performance analysis generated",
	}
}

// Report renders the analytics as a plain-text performance report with
// per-platform sections and an overall summary. Platforms are sorted
// so repeated runs produce identical output.
func (t *Tracker) Report(analytics map[string]executor.Analytics) string {
	var b strings.Builder

	rule := strings.Repeat("=", 80)
	b.WriteString("\n" + rule + "\n")
	b.WriteString("📊 CAMPAIGN PERFORMANCE REPORT\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	platforms := make([]string, 0, len(analytics))
	for platform := range analytics {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	for _, platform := range platforms {
		data := analytics[platform]
		fmt.Fprintf(&b, "\n📱 %s\n", platform)
		b.WriteString(strings.Repeat("-", 40) + "\n")
		fmt.Fprintf(&b, "  Posts:             %d\n", data.PostsCount)
		fmt.Fprintf(&b, "  Total Reach:       %s\n", groupDigits(data.TotalReach))
		fmt.Fprintf(&b, "  Engagements:       %s\n", groupDigits(data.TotalEngagements))
		fmt.Fprintf(&b, "  Engagement Rate:   %.2f%%\n", data.AvgEngagementRate)
		fmt.Fprintf(&b, "  Clicks:            %s\n", groupDigits(data.TotalClicks))
		fmt.Fprintf(&b, "  CTR:               %.2f%%\n", data.CTR)
		fmt.Fprintf(&b, "  Conversions:       %s\n", groupDigits(data.TotalConversions))
		if data.TotalClicks > 0 {
			fmt.Fprintf(&b, "  Conv. Rate:        %.2f%%\n", data.ConversionRate)
		}
	}

	var totalReach, totalEngagements, totalConversions int
	for _, data := range analytics {
		totalReach += data.TotalReach
		totalEngagements += data.TotalEngagements
		totalConversions += data.TotalConversions
	}

	b.WriteString("\n\n📈 OVERALL SUMMARY\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "  Total Reach:       %s\n", groupDigits(totalReach))
	fmt.Fprintf(&b, "  Total Engagements: %s\n", groupDigits(totalEngagements))
	fmt.Fprintf(&b, "  Total Conversions: %s\n", groupDigits(totalConversions))
	if totalReach > 0 {
		fmt.Fprintf(&b, "  Avg Engagement %%:  %.2f%%\n",
			float64(totalEngagements)/float64(totalReach)*100)
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// SaveReport writes a report to disk and confirms on stdout.
func (t *Tracker) SaveReport(report, path string) error {
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	fmt.Printf("✓ Report saved to %s\n", path)
	logging.Tracker("report saved to %s", path)
	return nil
}

// RenderInsights pretty-prints model-generated markdown insights for
// the terminal. Falls back to the raw text when rendering fails.
func RenderInsights(insights string) string {
	rendered, err := glamour.Render(insights, "dark")
	if err != nil {
		return insights
	}
	return rendered
}

// groupDigits formats n with comma thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
