// Package executor simulates posting campaigns to social media platforms.
// Nothing here touches a real platform API; metrics are fabricated from
// per-platform base rates plus randomness.
package executor

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"promopilot/internal/logging"
)

// platformConfig holds the simulation base rates for a platform.
type platformConfig struct {
	BaseReach      int
	EngagementRate float64
	AvgFollowers   int
}

var platformConfigs = map[string]platformConfig{
	"LinkedIn":  {BaseReach: 10000, EngagementRate: 0.025, AvgFollowers: 5000},
	"Twitter":   {BaseReach: 15000, EngagementRate: 0.035, AvgFollowers: 8000},
	"Instagram": {BaseReach: 20000, EngagementRate: 0.045, AvgFollowers: 12000},
	"Facebook":  {BaseReach: 25000, EngagementRate: 0.020, AvgFollowers: 15000},
	"TikTok":    {BaseReach: 30000, EngagementRate: 0.055, AvgFollowers: 20000},
}

// Fallback rates for platforms not in the table.
const (
	defaultBaseReach      = 5000
	defaultEngagementRate = 0.03
)

// PostMetrics holds the fabricated numbers for one post.
type PostMetrics struct {
	Reach       int `json:"reach"`
	Engagements int `json:"engagements"`
	Likes       int `json:"likes"`
	Comments    int `json:"comments"`
	Shares      int `json:"shares"`
	Clicks      int `json:"clicks"`
	Conversions int `json:"conversions"`
}

// PostResult is the outcome of one simulated post.
type PostResult struct {
	PostID         string      `json:"post_id"`
	Platform       string      `json:"platform"`
	ContentPreview string      `json:"content_preview"`
	PostedAt       time.Time   `json:"posted_at"`
	ScheduledTime  time.Time   `json:"scheduled_time"`
	Status         string      `json:"status"`
	Metrics        PostMetrics `json:"metrics"`
}

// Analytics aggregates the executed posts for one platform.
type Analytics struct {
	Platform          string  `json:"platform"`
	PostsCount        int     `json:"posts_count"`
	TotalReach        int     `json:"total_reach"`
	TotalEngagements  int     `json:"total_engagements"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalClicks       int     `json:"total_clicks"`
	TotalConversions  int     `json:"total_conversions"`
	CTR               float64 `json:"ctr"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// Simulator fabricates platform interactions.
type Simulator struct {
	rng      *rand.Rand
	executed []*PostResult
}

// NewSimulator creates a simulator. A nil rng seeds from the clock.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{rng: rng}
}

// PostToPlatform simulates posting content and returns the fabricated
// result. Metrics cascade: reach feeds engagements, engagements feed
// clicks, clicks feed conversions.
func (s *Simulator) PostToPlatform(platform, content string, scheduledTime time.Time) *PostResult {
	cfg, ok := platformConfigs[platform]
	if !ok {
		cfg = platformConfig{BaseReach: defaultBaseReach, EngagementRate: defaultEngagementRate}
	}

	reach := int(float64(cfg.BaseReach) * (0.8 + s.rng.Float64()*0.4))
	engagements := int(float64(reach) * cfg.EngagementRate * (0.7 + s.rng.Float64()*0.6))
	clicks := int(float64(engagements) * 0.2 * (0.5 + s.rng.Float64()))
	conversions := int(float64(clicks) * 0.05 * (0.3 + s.rng.Float64()))

	result := &PostResult{
		PostID:         platform + "_" + uuid.New().String()[:8],
		Platform:       platform,
		ContentPreview: preview(content, 100),
		PostedAt:       time.Now(),
		ScheduledTime:  scheduledTime,
		Status:         "live",
		Metrics: PostMetrics{
			Reach:       reach,
			Engagements: engagements,
			Likes:       int(float64(engagements) * 0.7),
			Comments:    int(float64(engagements) * 0.2),
			Shares:      int(float64(engagements) * 0.1),
			Clicks:      clicks,
			Conversions: conversions,
		},
	}

	s.executed = append(s.executed, result)
	logging.Executor("posted to %s: post_id=%s reach=%d engagements=%d",
		platform, result.PostID, reach, engagements)
	return result
}

// ExecutedPosts returns every simulated post so far.
func (s *Simulator) ExecutedPosts() []*PostResult {
	return s.executed
}

// PlatformAnalytics aggregates the executed posts for one platform.
func (s *Simulator) PlatformAnalytics(platform string) Analytics {
	analytics := Analytics{Platform: platform}

	for _, post := range s.executed {
		if post.Platform != platform {
			continue
		}
		analytics.PostsCount++
		analytics.TotalReach += post.Metrics.Reach
		analytics.TotalEngagements += post.Metrics.Engagements
		analytics.TotalClicks += post.Metrics.Clicks
		analytics.TotalConversions += post.Metrics.Conversions
	}

	if analytics.TotalReach > 0 {
		analytics.AvgEngagementRate = float64(analytics.TotalEngagements) / float64(analytics.TotalReach) * 100
		analytics.CTR = float64(analytics.TotalClicks) / float64(analytics.TotalReach) * 100
	}
	if analytics.TotalClicks > 0 {
		analytics.ConversionRate = float64(analytics.TotalConversions) / float64(analytics.TotalClicks) * 100
	}

	return analytics
}

// AllAnalytics aggregates every known platform.
func (s *Simulator) AllAnalytics() map[string]Analytics {
	analytics := make(map[string]Analytics, len(platformConfigs))
	for platform := range platformConfigs {
		analytics[platform] = s.PlatformAnalytics(platform)
	}
	return analytics
}

// preview truncates on rune boundaries so emoji-heavy copy stays valid.
func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max])
}
