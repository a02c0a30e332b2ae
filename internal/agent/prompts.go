package agent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// System prompts for the three campaign agent roles.
const (
	// StrategistSystemPrompt drives platform-strategy generation.
	StrategistSystemPrompt = `You are an expert social media campaign strategist with 10+ years of experience.
You understand each platform's unique audience, best practices, and content requirements.
You create engaging, data-driven campaigns that drive real business results.`

	// ContentSystemPrompt drives per-platform copy generation.
	ContentSystemPrompt = `You are a master content creator who excels at tailoring messages for different platforms.
You understand that LinkedIn content differs from TikTok content, and you craft each message perfectly.`

	// InsightsSystemPrompt drives performance analysis.
	InsightsSystemPrompt = `You are a data-driven marketing analyst with expertise in social media metrics.
You understand engagement rates, reach, conversions, and can identify trends and opportunities.
You translate data into specific, actionable recommendations.`
)

// StrategyPrompt builds the user prompt for the strategist agent.
func StrategyPrompt(campaignName, audience, goal, budget string, platforms []string) string {
	return fmt.Sprintf(`Plan a comprehensive social media campaign with these details:
- Campaign Name: %s
- Target Audience: %s
- Campaign Goal: %s
- Budget: %s

For each platform (%s), provide:
1. Platform-specific strategy
2. Posting frequency and best times
3. Content themes and messaging angles
4. KPIs to track

Format as JSON with platform names as keys.`,
		campaignName, audience, goal, budget, strings.Join(platforms, ", "))
}

// ContentPrompt builds the user prompt for the content agent.
func ContentPrompt(campaignName, audience string, platform string) string {
	return fmt.Sprintf(`Create one sample social media post for %s:
- Campaign Name: %s
- Target Audience: %s

Include 3-5 hashtags and a call-to-action. Tailor the copy to the
platform's native format and audience. Return only the post text.`,
		platform, campaignName, audience)
}

// InsightsPrompt builds the user prompt for the insights agent.
func InsightsPrompt(analytics interface{}) string {
	data, err := json.MarshalIndent(analytics, "", "  ")
	if err != nil {
		data = []byte(fmt.Sprintf("%v", analytics))
	}
	return fmt.Sprintf(`Analyze the following campaign performance data:

%s

Provide:
1. Overall reach and engagement assessment
2. Best and worst performing platforms and why
3. Platform-specific optimization recommendations
4. Budget allocation suggestions

Be specific and actionable.`, data)
}
