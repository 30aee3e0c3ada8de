package main

import (
	"fmt"
	"os"

	"qtsetup/internal/config"
	"qtsetup/internal/logging"
	"qtsetup/internal/model"
	"qtsetup/internal/quantower"
	"qtsetup/internal/report"
	"qtsetup/internal/shellenv"
	"qtsetup/internal/tui"
	"qtsetup/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "jollywizard",
		Repository: "qtsetup",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/jollywizard/qtsetup/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qtsetup [options]\n\n")
		fmt.Fprintf(os.Stderr, "qtsetup finds a running Quantower instance, derives its installation root\n")
		fmt.Fprintf(os.Stderr, "and custom indicators folder, and exposes the root as an environment variable.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  QTSETUP_PROCESS_NAME, QTSETUP_ENV_KEY, QTSETUP_SUPPRESS_EXPLORE,\n")
		fmt.Fprintf(os.Stderr, "  QTSETUP_LOG_LEVEL, QTSETUP_LOG_FORMAT, QTSETUP_WEB_PORT\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qtsetup              # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  qtsetup --detect     # Print the detected root, exit 1 if not running\n")
		fmt.Fprintf(os.Stderr, "  qtsetup --setup      # Persist QuantowerRoot for this user\n")
		fmt.Fprintf(os.Stderr, "  qtsetup -r --probe   # Report, including what new login shells see\n")
		fmt.Fprintf(os.Stderr, "  qtsetup --json       # Output detection status as JSON\n")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	detectFlag := pflag.Bool("detect", false, "Print the detected installation root")
	setupFlag := pflag.Bool("setup", false, "Write the detected root to the process and user environment")
	exploreFlag := pflag.Bool("explore", false, "Open the installation root in the file manager")
	indicatorsFlag := pflag.Bool("explore-indicators", false, "Open the custom indicators folder in the file manager")
	reportFlag := pflag.BoolP("report", "r", false, "Print a diagnostic report (CLI mode)")
	jsonFlag := pflag.BoolP("json", "j", false, "Output detection status as JSON")
	probeFlag := pflag.Bool("probe", false, "Also check whether a new login shell sees the variable (implies --report)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode on http://localhost:"+cfg.WebConfig.Port)
	noExploreFlag := pflag.Bool("no-explore", cfg.ExploreConfig.Suppress, "Suppress every file manager launch")
	processFlag := pflag.String("process", cfg.DetectConfig.ProcessName, "Process name fragment to search for")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Debug logging and extra report detail")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("qtsetup version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cliMode := *webFlag || *setupFlag || *exploreFlag || *indicatorsFlag ||
		*detectFlag || *reportFlag || *jsonFlag || *probeFlag

	level := cfg.LogConfig.Level
	if *verboseFlag {
		level = "debug"
	}
	logger := logging.Init(logging.Config{
		Format:    cfg.LogConfig.Format,
		Level:     level,
		Component: "qtsetup",
	})
	if !cliMode {
		// stderr output would tear the alt screen
		logger = zerolog.Nop()
	}

	bridge := quantower.New(quantower.Config{
		ProcessName:     *processFlag,
		EnvKey:          cfg.DetectConfig.EnvKey,
		SuppressExplore: *noExploreFlag,
	}, quantower.WithLogger(logger))

	if *webFlag {
		if err := web.NewServer(bridge, logger).StartServer(cfg.WebConfig.Port); err != nil {
			logger.Fatal().Err(err).Msg("web server stopped")
		}
		return
	}

	if !cliMode {
		// Default: TUI
		runTuiMode(bridge)
		return
	}

	exit := 0

	if *setupFlag {
		if !runSetup(bridge, logger) {
			exit = 1
		}
	}
	if *exploreFlag {
		if !runExplore("root", bridge.ExploreRoot, logger) {
			exit = 1
		}
	}
	if *indicatorsFlag {
		if !runExplore("custom indicators", bridge.ExploreCustomIndicators, logger) {
			exit = 1
		}
	}
	if *detectFlag {
		root, ok := bridge.DetectRootPath().Get()
		if !ok {
			fmt.Fprintf(os.Stderr, "%s is not running\n", bridge.ProcessName())
			exit = 1
		} else {
			fmt.Println(root)
		}
	}
	if *reportFlag || *probeFlag {
		runReportMode(bridge, *verboseFlag, *probeFlag)
	}
	if *jsonFlag {
		if err := report.JSON(os.Stdout, bridge.Status()); err != nil {
			logger.Error().Err(err).Msg("encode status")
			exit = 1
		}
	}

	os.Exit(exit)
}

func runSetup(b *quantower.Bridge, logger zerolog.Logger) bool {
	ok, err := b.SetupRootEnvironmentVariable()
	if err != nil {
		logger.Error().Err(err).Msg("setup failed")
		return false
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "%s is not running; environment left unchanged\n", b.ProcessName())
		return false
	}
	fmt.Printf("%s=%s\n", b.EnvKey(), b.ReadRootEnvironmentVariable().OrElse(""))
	fmt.Println("Restart any IDE that was already open so it sees the new value.")
	return true
}

func runExplore(what string, explore func() (bool, error), logger zerolog.Logger) bool {
	ok, err := explore()
	if err != nil {
		logger.Error().Err(err).Str("target", what).Msg("explore failed")
		return false
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Nothing opened: %s not found or explore suppressed\n", what)
	}
	return ok
}

func runReportMode(b *quantower.Bridge, verbose, probe bool) {
	fmt.Print(report.Generate(b.Status(), verbose))
	if probe {
		shell := shellenv.DetectShell(os.Getenv("SHELL"))
		res, err := shellenv.Probe(shell, b.EnvKey())
		fmt.Println()
		fmt.Print(report.ProbeSection(res, err))
	}
}

func runTuiMode(b *quantower.Bridge) {
	m := tui.InitialModel(b)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
