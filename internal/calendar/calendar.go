// Package calendar manages scheduling of campaign posts across social
// media platforms and the JSON calendar export.
package calendar

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"sort"
	"strings"
	"time"

	"promopilot/internal/logging"
)

// Status is the lifecycle state of a scheduled event.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusExecuted  Status = "Executed"
	StatusDelayed   Status = "Delayed"
	StatusCancelled Status = "Cancelled"
)

// Frequency controls how a campaign expands into events.
type Frequency string

const (
	FrequencyOnce   Frequency = "once"
	FrequencyDaily  Frequency = "daily"  // 7 consecutive days
	FrequencyWeekly Frequency = "weekly" // 4 consecutive weeks
)

// Event represents a scheduled campaign post.
type Event struct {
	CampaignID         string         `json:"campaign_id"`
	Platform           string         `json:"platform"`
	Title              string         `json:"title"`
	Content            string         `json:"content"`
	ScheduledTime      time.Time      `json:"scheduled_time"`
	Status             Status         `json:"status"`
	PerformanceMetrics map[string]int `json:"performance_metrics"`
}

// Calendar manages campaign scheduling and calendar operations.
type Calendar struct {
	events []*Event
}

// New creates an empty calendar.
func New() *Calendar {
	return &Calendar{}
}

// Add appends a campaign event to the calendar.
func (c *Calendar) Add(event *Event) {
	if event.Status == "" {
		event.Status = StatusScheduled
	}
	if event.PerformanceMetrics == nil {
		event.PerformanceMetrics = map[string]int{}
	}
	c.events = append(c.events, event)
	logging.Calendar("added %s event %q at %s", event.Platform, event.Title,
		event.ScheduledTime.Format(time.RFC3339))
}

// Events returns all events in insertion order.
func (c *Calendar) Events() []*Event {
	return c.events
}

// ScheduleAcrossPlatforms expands a campaign into events per platform.
// Daily frequency schedules 7 consecutive days, weekly schedules 4 weeks.
func (c *Calendar) ScheduleAcrossPlatforms(
	campaignID, campaignTitle string,
	platforms []string,
	contentPerPlatform map[string]string,
	start time.Time,
	frequency Frequency,
) []*Event {
	var events []*Event

	for _, platform := range platforms {
		content := contentPerPlatform[platform]

		switch frequency {
		case FrequencyDaily:
			for i := 0; i < 7; i++ {
				event := &Event{
					CampaignID:    fmt.Sprintf("%s_day%d", campaignID, i+1),
					Platform:      platform,
					Title:         fmt.Sprintf("%s - Day %d", campaignTitle, i+1),
					Content:       content,
					ScheduledTime: start.AddDate(0, 0, i),
				}
				c.Add(event)
				events = append(events, event)
			}

		case FrequencyWeekly:
			for i := 0; i < 4; i++ {
				event := &Event{
					CampaignID:    fmt.Sprintf("%s_week%d", campaignID, i+1),
					Platform:      platform,
					Title:         fmt.Sprintf("%s - Week %d", campaignTitle, i+1),
					Content:       content,
					ScheduledTime: start.AddDate(0, 0, 7*i),
				}
				c.Add(event)
				events = append(events, event)
			}

		default: // once
			event := &Event{
				CampaignID:    campaignID,
				Platform:      platform,
				Title:         campaignTitle,
				Content:       content,
				ScheduledTime: start,
			}
			c.Add(event)
			events = append(events, event)
		}
	}

	return events
}

// Upcoming returns events scheduled within the next N days, sorted by time.
func (c *Calendar) Upcoming(days int) []*Event {
	now := time.Now()
	future := now.AddDate(0, 0, days)

	var upcoming []*Event
	for _, event := range c.events {
		if !event.ScheduledTime.Before(now) && !event.ScheduledTime.After(future) {
			upcoming = append(upcoming, event)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ScheduledTime.Before(upcoming[j].ScheduledTime)
	})
	return upcoming
}

// MarkExecuted sets the event status to Executed and attaches metrics.
// The metrics are derived from an FNV-1a hash of the campaign ID so the
// same event always reports the same numbers.
func (c *Calendar) MarkExecuted(event *Event) {
	h := fnv.New32a()
	h.Write([]byte(event.CampaignID))
	v := int(h.Sum32())

	event.Status = StatusExecuted
	event.PerformanceMetrics = map[string]int{
		"reach":       5000 + v%10000,
		"engagement":  250 + v%1000,
		"clicks":      50 + v%500,
		"conversions": 5 + v%50,
	}
	logging.Calendar("executed %s event %q", event.Platform, event.Title)
}

// View renders a text calendar for the given range. A zero start time
// means now.
func (c *Calendar) View(start time.Time, days int) string {
	if start.IsZero() {
		start = time.Now()
	}
	end := start.AddDate(0, 0, days)

	var inRange []*Event
	for _, event := range c.events {
		if !event.ScheduledTime.Before(start) && !event.ScheduledTime.After(end) {
			inRange = append(inRange, event)
		}
	}
	sort.Slice(inRange, func(i, j int) bool {
		return inRange[i].ScheduledTime.Before(inRange[j].ScheduledTime)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "\n📅 Campaign Calendar (%s to %s)\n",
		start.Format("2006-01-02"), end.Format("2006-01-02"))
	b.WriteString(strings.Repeat("=", 80) + "\n")

	for _, event := range inRange {
		fmt.Fprintf(&b, "%s | %-10s | %-40s | %s\n",
			event.ScheduledTime.Format("2006-01-02 15:04"),
			event.Platform,
			truncate(event.Title, 40),
			event.Status)
	}

	return b.String()
}

// PlatformSummary counts scheduled events per platform.
func (c *Calendar) PlatformSummary() map[string]int {
	summary := make(map[string]int)
	for _, event := range c.events {
		summary[event.Platform]++
	}
	return summary
}

// exportPayload is the on-disk shape of a calendar export.
type exportPayload struct {
	ExportedAt     time.Time `json:"exported_at"`
	TotalCampaigns int       `json:"total_campaigns"`
	Events         []*Event  `json:"events"`
}

// Export writes the calendar to a JSON file.
func (c *Calendar) Export(path string) error {
	payload := exportPayload{
		ExportedAt:     time.Now(),
		TotalCampaigns: len(c.events),
		Events:         c.events,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal calendar: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write calendar export: %w", err)
	}

	logging.Calendar("exported %d events to %s", len(c.events), path)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
