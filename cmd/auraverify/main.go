package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Moeabdelaziz007/auraos/internal/browser"
	"github.com/Moeabdelaziz007/auraos/internal/config"
	"github.com/Moeabdelaziz007/auraos/internal/stubapp"
	"github.com/Moeabdelaziz007/auraos/internal/verify"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "auraverify",
	Short: "Browser verification for the AuraOS landing and login flow",
	Long: `auraverify drives headless Chromium against a running AuraOS instance:
it opens the landing page, checks the hero heading, captures evidence,
clicks Login, checks the login heading, and captures second evidence.

Exit code 0 means every expectation held and both screenshots exist.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}

var (
	baseURLFlag string
	timeoutFlag time.Duration
	headedFlag  bool
	outDirFlag  string
	reportFlag  string
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve a stand-in AuraOS app for local verification runs",
	RunE:  runStub,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("auraverify %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "Target base URL (default http://localhost:5000)")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Visibility wait timeout (default 30s)")
	rootCmd.Flags().BoolVar(&headedFlag, "headed", false, "Run the browser with a visible window")
	rootCmd.Flags().StringVar(&outDirFlag, "out-dir", "", "Directory for screenshot evidence (default .)")
	rootCmd.Flags().StringVar(&reportFlag, "report", "", "Write a JSON run report to this path")

	rootCmd.AddCommand(stubCmd)
	rootCmd.AddCommand(versionCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = baseURLFlag
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if cmd.Flags().Changed("headed") {
		cfg.Headless = !headedFlag
	}
	if cmd.Flags().Changed("out-dir") {
		cfg.OutDir = outDirFlag
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = reportFlag
	}

	log.Printf("[verify] target=%s timeout=%s headless=%v", cfg.BaseURL, cfg.Timeout, cfg.Headless)
	if !config.Reachable(cfg.BaseURL) {
		log.Printf("[verify] warning: %s did not answer the preflight probe, navigation will likely fail", cfg.BaseURL)
	}

	session, err := browser.Launch(browser.Options{
		Headless: cfg.Headless,
		SlowMo:   cfg.SlowMo,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("could not open browser session: %w", err)
	}
	defer session.Close()

	runner := verify.NewRunner(session.Page(), cfg.BaseURL, cfg.Timeout)
	runErr := runner.Run(verify.DefaultFlow(cfg.OutDir))

	rep := runner.Report()
	if cfg.Report != "" {
		if werr := rep.WriteFile(cfg.Report); werr != nil {
			log.Printf("[verify] %v", werr)
		} else {
			log.Printf("[verify] report written to %s", cfg.Report)
		}
	}

	if runErr != nil {
		return runErr
	}
	log.Printf("[verify] all %d steps passed, evidence: %v", rep.Passed, rep.Artifacts)
	return nil
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)
	r := stubapp.Router(stubapp.DefaultOptions())
	log.Printf("[stub] serving AuraOS stand-in on %s", cfg.StubAddr)
	return r.Run(cfg.StubAddr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "auraverify: %v\n", err)
		os.Exit(1)
	}
}
