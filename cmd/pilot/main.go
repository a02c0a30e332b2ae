package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"promopilot/cmd/pilot/ui"
	"promopilot/internal/agent"
	"promopilot/internal/calendar"
	"promopilot/internal/config"
	"promopilot/internal/logging"
	"promopilot/internal/orchestrator"
	"promopilot/internal/planner"
	"promopilot/internal/tracker"
)

const version = "0.1.0"

var (
	// Global flags
	verbose   bool
	apiKey    string
	workspace string
	outputDir string
	timeout   time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pilot",
	Short: "promoPilot - Agentic social media campaign planner (POC)",
	Long: `promoPilot plans, schedules and simulates social media campaigns
across LinkedIn, Twitter, Instagram, Facebook and TikTok.

Planning strategies come from built-in platform playbooks; with a Gemini
API key the content and insight agents generate copy and recommendations.
All posting is simulated and all metrics are synthetic.

Run without arguments for the quick no-API-key demo.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Name() == "interactive" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: runQuick,
}

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Run the quick demo (no API key required)",
	Long: `Plans a 14-day awareness campaign on LinkedIn, Twitter and Instagram
using the built-in strategy tables, schedules a week of daily posts,
simulates execution and prints the performance report. Never calls an LLM.`,
	RunE: runQuick,
}

var demo1Cmd = &cobra.Command{
	Use:   "demo1",
	Short: "Demo: tech product launch campaign",
	Long: `Runs the complete workflow for a B2B product launch:
AI-Powered CRM Launch 2024 on LinkedIn, Twitter and Facebook.`,
	RunE: runDemo1,
}

var demo2Cmd = &cobra.Command{
	Use:   "demo2",
	Short: "Demo: e-commerce holiday campaign",
	Long: `Runs the complete workflow for a consumer holiday push:
Holiday Shopping Extravaganza 2024 on Instagram, TikTok, Facebook and Twitter.`,
	RunE: runDemo2,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Create a campaign interactively",
	Long: `Walks through campaign creation step by step: name, audience, goal,
budget and platform selection, then runs the complete workflow.`,
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("promoPilot %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env)")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for reports and calendar exports")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Operation timeout")

	rootCmd.AddCommand(quickCmd)
	rootCmd.AddCommand(demo1Cmd)
	rootCmd.AddCommand(demo2Cmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// workContext returns a context cancelled on SIGINT/SIGTERM or timeout.
func workContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			fmt.Println("\n\n❌ Campaign execution cancelled by user")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// loadConfig loads pilot.yaml plus .env and applies flag overrides.
func loadConfig(ws string) *config.Config {
	cfg, err := config.Load(ws)
	if err != nil {
		fmt.Printf("Warning: config load failed (%v), using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	return cfg
}

// newOrchestrator builds an orchestrator from config. withAgent
// controls whether a Gemini client is attached when a key is present.
func newOrchestrator(ctx context.Context, withAgent bool) (*orchestrator.Orchestrator, error) {
	ws := resolveWorkspace()
	cfg := loadConfig(ws)

	if err := logging.Initialize(ws); err != nil && logger != nil {
		logger.Debug("File logging unavailable", zap.Error(err))
	}

	var client agent.Client
	if withAgent && cfg.LLM.APIKey != "" {
		gemini, err := agent.NewGeminiClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			fmt.Printf("Warning: AI agent unavailable (%v), using built-in playbooks\n", err)
		} else {
			client = gemini
			if logger != nil {
				logger.Info("Content agent enabled", zap.String("model", gemini.Model()))
			}
		}
	}

	dir := cfg.Output.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(ws, dir)
	}
	logging.Boot("workspace=%s output_dir=%s agent=%t", ws, dir, client != nil)
	return orchestrator.New(client, dir)
}

func printBanner() {
	fmt.Println("\n" + strings.Repeat("🤖 ", 30))
	fmt.Println("PROMOPILOT CAMPAIGN PLANNER & EXECUTIONER")
	fmt.Printf("POC Demo %s\n", version)
	fmt.Println(strings.Repeat("🤖 ", 30))
}

func printSummary(result interface{}) {
	rule := strings.Repeat("=", 80)
	fmt.Println("\n" + rule)
	fmt.Println("WORKFLOW SUMMARY")
	fmt.Println(rule)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", result)
	} else {
		fmt.Println(string(data))
	}

	fmt.Println("\n✅ Campaign execution completed successfully!")
	fmt.Println("📁 Check the outputs/ folder for generated reports and calendars")
}

// runQuick runs the no-LLM demo end to end with the built-in tables.
func runQuick(cmd *cobra.Command, args []string) error {
	printBanner()

	ctx, cancel := workContext()
	defer cancel()

	rule := strings.Repeat("=", 80)
	fmt.Println("\n" + rule)
	fmt.Println("⚡ QUICK EXAMPLE (No API Key Required)")
	fmt.Println(rule)

	orch, err := newOrchestrator(ctx, false)
	if err != nil {
		return err
	}

	plan := orch.PlanCampaign(ctx, planner.Request{
		Name:           "Social Media Awareness Campaign",
		TargetAudience: "Tech enthusiasts and startups",
		Goal:           "Build brand awareness and drive website traffic",
		Platforms:      []string{"LinkedIn", "Twitter", "Instagram"},
		Budget:         "$3,000",
		DurationDays:   14,
	})

	fmt.Println("\n📋 Campaign Plan:")
	overview, _ := json.MarshalIndent(map[string]interface{}{
		"name":      plan.Name,
		"audience":  plan.TargetAudience,
		"goal":      plan.Goal,
		"platforms": plan.Platforms,
		"budget":    plan.Budget,
	}, "", "  ")
	fmt.Println(string(overview))

	events, err := orch.ScheduleCampaign(plan.CampaignID, calendar.FrequencyDaily)
	if err != nil {
		return err
	}

	fmt.Println(orch.Calendar().View(time.Now(), 7))

	execution := orch.ExecuteScheduled()
	fmt.Printf("\n✅ Executed %d posts\n", execution.TotalPostsExecuted)

	analytics := orch.TrackPerformance()
	fmt.Println("\n📊 Performance Summary:")
	for _, platform := range plan.Platforms {
		data := analytics[platform]
		fmt.Printf("  %s:\n", platform)
		fmt.Printf("    - Reach: %d\n", data.TotalReach)
		fmt.Printf("    - Engagements: %d\n", data.TotalEngagements)
		fmt.Printf("    - Conversion Rate: %.2f%%\n", data.ConversionRate)
	}

	report, err := orch.GeneratePerformanceReport()
	if err != nil {
		return err
	}
	fmt.Println(report)

	exportPath, err := orch.ExportCalendar()
	if err != nil {
		return err
	}

	printSummary(map[string]interface{}{
		"campaign":         plan,
		"events_scheduled": len(events),
		"posts_executed":   execution.TotalPostsExecuted,
		"analytics":        analytics,
		"calendar_export":  exportPath,
	})
	return nil
}

func runDemo1(cmd *cobra.Command, args []string) error {
	printBanner()
	fmt.Println("\n" + strings.Repeat("🎬 ", 20))
	fmt.Println("DEMO 1: TECH PRODUCT LAUNCH CAMPAIGN")
	fmt.Println(strings.Repeat("🎬 ", 20))

	return runWorkflow(planner.Request{
		Name:           "AI-Powered CRM Launch 2024",
		TargetAudience: "Enterprise SaaS buyers and IT decision makers",
		Goal:           "Generate awareness and drive product demo signups",
		Platforms:      []string{"LinkedIn", "Twitter", "Facebook"},
		Budget:         "$5,000",
	})
}

func runDemo2(cmd *cobra.Command, args []string) error {
	printBanner()
	fmt.Println("\n" + strings.Repeat("🎬 ", 20))
	fmt.Println("DEMO 2: E-COMMERCE HOLIDAY CAMPAIGN")
	fmt.Println(strings.Repeat("🎬 ", 20))

	return runWorkflow(planner.Request{
		Name:           "Holiday Shopping Extravaganza 2024",
		TargetAudience: "Online shoppers ages 25-55, interested in fashion and tech",
		Goal:           "Maximize holiday sales and increase customer retention",
		Platforms:      []string{"Instagram", "TikTok", "Facebook", "Twitter"},
		Budget:         "$8,000",
	})
}

func runInteractive(cmd *cobra.Command, args []string) error {
	printBanner()

	req, err := ui.RunWizard()
	if err != nil {
		return err
	}
	if req == nil {
		// Wizard cancelled
		return nil
	}
	if len(req.Platforms) == 0 {
		fmt.Println("❌ No valid platforms selected")
		return nil
	}

	return runWorkflow(*req)
}

// runWorkflow runs the complete lifecycle for a request, printing the
// AI insights when an agent is attached.
func runWorkflow(req planner.Request) error {
	ctx, cancel := workContext()
	defer cancel()

	orch, err := newOrchestrator(ctx, true)
	if err != nil {
		return err
	}

	result, err := orch.RunCompleteWorkflow(ctx, req)
	if err != nil {
		return err
	}

	analysis := orch.Analyze(ctx)
	if analysis.Insights != "" {
		fmt.Println("\n💡 STRATEGIC INSIGHTS")
		fmt.Println(strings.Repeat("-", 40))
		fmt.Println(tracker.RenderInsights(analysis.Insights))
	}

	printSummary(result)
	return nil
}
