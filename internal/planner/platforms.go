package planner

import "fmt"

// SupportedPlatforms lists every platform the planner knows about.
var SupportedPlatforms = []string{"LinkedIn", "Twitter", "Instagram", "Facebook", "TikTok"}

// strategyRow is the built-in strategy table entry for a platform.
type strategyRow struct {
	Frequency   string
	ContentType string
	KPIs        []string
}

var strategyDetails = map[string]strategyRow{
	"LinkedIn": {
		Frequency:   "3-4 times per week",
		ContentType: "Articles, thought leadership, company updates",
		KPIs:        []string{"Impressions", "Engagement rate", "Profile visits"},
	},
	"Twitter": {
		Frequency:   "Daily (1-2 tweets)",
		ContentType: "News, hot takes, conversations, threads",
		KPIs:        []string{"Retweets", "Likes", "Replies"},
	},
	"Instagram": {
		Frequency:   "4-5 times per week",
		ContentType: "Reels, Stories, carousel posts, behind-the-scenes",
		KPIs:        []string{"Reach", "Saves", "Shares", "Follower growth"},
	},
	"Facebook": {
		Frequency:   "3-4 times per week",
		ContentType: "Community posts, videos, events",
		KPIs:        []string{"Reach", "Video views", "Engagement"},
	},
	"TikTok": {
		Frequency:   "Daily (2-3 videos)",
		ContentType: "Trends, challenges, educational content",
		KPIs:        []string{"Views", "Watch time", "Shares"},
	},
}

// ContentFormat describes a platform's native content constraints.
type ContentFormat struct {
	CharacterLimit   int      `json:"character_limit"`
	Tone             string   `json:"tone"`
	ContentTypes     []string `json:"content_types"`
	BestPostingTimes string   `json:"best_posting_times"`
}

var contentFormats = map[string]ContentFormat{
	"LinkedIn": {
		CharacterLimit:   3000,
		Tone:             "Professional, thought-leadership",
		ContentTypes:     []string{"Articles", "Case studies", "Industry insights", "Company updates"},
		BestPostingTimes: "Tuesday-Thursday, 7-9 AM",
	},
	"Twitter": {
		CharacterLimit:   280,
		Tone:             "Conversational, timely, trending",
		ContentTypes:     []string{"News", "Updates", "Threads", "Questions"},
		BestPostingTimes: "Monday-Friday, 8-10 AM & 5-6 PM",
	},
	"Instagram": {
		CharacterLimit:   2200,
		Tone:             "Visual, aspirational, engaging",
		ContentTypes:     []string{"Photos", "Reels", "Stories", "Carousels"},
		BestPostingTimes: "Monday-Friday, 11 AM - 1 PM",
	},
	"Facebook": {
		CharacterLimit:   5000,
		Tone:             "Community-focused, conversational",
		ContentTypes:     []string{"Stories", "Videos", "Links", "Events"},
		BestPostingTimes: "Thursday-Friday, 1-4 PM",
	},
	"TikTok": {
		CharacterLimit:   150,
		Tone:             "Trendy, authentic, entertaining",
		ContentTypes:     []string{"Trends", "Challenges", "Behind-the-scenes", "Educational"},
		BestPostingTimes: "Tuesday-Thursday, 6-10 PM",
	},
}

// Format returns the content format row for a platform, and whether the
// platform is known.
func Format(platform string) (ContentFormat, bool) {
	f, ok := contentFormats[platform]
	return f, ok
}

// templateContent returns the built-in sample post for a platform.
// Unknown platforms get no content, so the executor skips them.
func templateContent(platform, campaignName, audience string) string {
	switch platform {
	case "LinkedIn":
		return fmt.Sprintf("🎯 %s\nExciting announcement for our %s! Learn more about how we're driving innovation. #LinkedInPost", campaignName, audience)
	case "Twitter":
		return fmt.Sprintf("🚀 %s is here! Perfect for %s. Check it out now! #SocialMedia #Campaign", campaignName, audience)
	case "Instagram":
		return fmt.Sprintf("✨ %s is live! 🎉 Designed for %s who want to stay ahead. Tap the link in bio! 📸 #InstagramReels", campaignName, audience)
	case "Facebook":
		return fmt.Sprintf("📢 We're excited to introduce %s! Created specifically for %s. Join our community and discover more!", campaignName, audience)
	case "TikTok":
		return fmt.Sprintf("POV: %s just changed everything for %s 🔥 #FYP #Trending #NewAnnouncement", campaignName, audience)
	default:
		return ""
	}
}
