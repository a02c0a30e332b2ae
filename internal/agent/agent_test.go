package agent

import (
	"context"
	"strings"
	"testing"
)

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "gemini-2.0-flash")
	if err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestStrategyPrompt(t *testing.T) {
	prompt := StrategyPrompt("Launch 2024", "IT buyers", "demo signups", "$5,000",
		[]string{"LinkedIn", "Twitter"})

	for _, want := range []string{"Launch 2024", "IT buyers", "demo signups", "$5,000", "LinkedIn, Twitter"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("strategy prompt missing %q", want)
		}
	}
}

func TestContentPrompt(t *testing.T) {
	prompt := ContentPrompt("Launch 2024", "IT buyers", "TikTok")
	if !strings.Contains(prompt, "TikTok") {
		t.Error("content prompt missing platform")
	}
	if !strings.Contains(prompt, "hashtags") {
		t.Error("content prompt missing hashtag instruction")
	}
}

func TestInsightsPrompt_MarshalsAnalytics(t *testing.T) {
	analytics := map[string]int{"reach": 12000}
	prompt := InsightsPrompt(analytics)
	if !strings.Contains(prompt, `"reach": 12000`) {
		t.Errorf("insights prompt should embed analytics JSON, got:\n%s", prompt)
	}
}
