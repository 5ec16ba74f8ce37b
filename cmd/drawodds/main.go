package main

import (
	"bufio"
	"fmt"
	rand "math/rand/v2"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/pokertools/drawodds/internal/config"
	"github.com/pokertools/drawodds/internal/deck"
	"github.com/pokertools/drawodds/internal/estimator"
	"github.com/pokertools/drawodds/internal/hand"
	"github.com/pokertools/drawodds/internal/randutil"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Hands   []string         `arg:"" optional:"" help:"Hands in format '2D 2C 5H 2H 2S' (quoted); reads lines from stdin when omitted"`
	Samples *int             `short:"n" help:"Monte Carlo trials per card position (default 750000)"`
	Workers *int             `short:"w" help:"Worker goroutines per position (0 = one per CPU)"`
	Seed    *int64           `help:"Random seed for reproducible results"`
	Config  string           `short:"c" help:"Path to HCL config file" default:"drawodds.hcl"`
	Table   bool             `short:"t" help:"Render a styled per-card table instead of the classic line format"`
	Debug   bool             `help:"Enable debug logging"`
}

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawodds"),
		kong.Description("Classifies five-card draw hands and estimates per-card replacement improvement odds"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := run(&cli)
	ctx.FatalIfErrorf(err)
}

func run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	// Flags win over the config file
	if cli.Samples != nil {
		cfg.Sampling.Samples = *cli.Samples
	}
	if cli.Workers != nil {
		cfg.Sampling.Workers = *cli.Workers
	}
	if cli.Seed != nil {
		cfg.Sampling.Seed = *cli.Seed
		cfg.Sampling.Seeded = true
	}
	if cli.Table {
		cfg.Output.Table = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cli.Debug, cfg.Output.Log)

	var seed int64
	if cfg.Sampling.Seeded {
		seed = cfg.Sampling.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)

	est := estimator.New(cfg.Sampling.Samples, cfg.Sampling.Workers)
	logger.Debug("estimator configured",
		"samples", est.Samples, "workers", est.Workers, "seed", seed)

	render := renderLine
	if cfg.Output.Table {
		render = renderTable
	}

	if len(cli.Hands) > 0 {
		for _, line := range cli.Hands {
			processLine(line, est, rng, render, logger)
		}
		return nil
	}

	// No hand arguments: behave like the classic filter and process
	// stdin line by line, echoing each input. Hands on separate lines
	// are fully independent.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		processLine(scanner.Text(), est, rng, render, logger)
	}
	return scanner.Err()
}

type renderFunc func(line string, cards []deck.Card, res estimator.Result)

// processLine estimates a single input line. Malformed lines produce
// the classic ">>>Error" echo rather than aborting the run.
func processLine(line string, est *estimator.Estimator, rng *rand.Rand, render renderFunc, logger *log.Logger) {
	cards, err := deck.ParseCards(line)
	if err == nil && len(cards) != hand.Size {
		err = fmt.Errorf("hand must have exactly %d cards, got %d", hand.Size, len(cards))
	}
	if err != nil {
		logger.Debug("rejected input", "line", line, "err", err)
		fmt.Printf("%s >>>Error\n", line)
		return
	}

	start := time.Now()
	res, err := est.Estimate(cards, rng)
	if err != nil {
		logger.Debug("estimation failed", "line", line, "err", err)
		fmt.Printf("%s >>>Error\n", line)
		return
	}
	logger.Debug("hand estimated",
		"hand", line,
		"category", res.Reference.Category.String(),
		"duration", time.Since(start).Truncate(time.Millisecond))

	render(line, cards, res)
}

// renderLine prints the classic single-line format:
//
//	2D 2C 5H 2H 2S >>>Four of a Kind 0.0% 0.0% 0.0% 0.0% 0.0%
func renderLine(line string, _ []deck.Card, res estimator.Result) {
	fmt.Println(formatLine(line, res))
}

func formatLine(line string, res estimator.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s >>>%s", line, res.Reference.Category)
	for _, p := range res.Probabilities {
		fmt.Fprintf(&b, " %.1f%%", p)
	}
	return b.String()
}

// renderTable prints a styled per-card breakdown
func renderTable(line string, cards []deck.Card, res estimator.Result) {
	fmt.Printf("%s  %s\n",
		cardStyle.Render(line),
		categoryStyle.Render(res.Reference.Category.String()))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n",
		headerStyle.Render("discard"),
		headerStyle.Render("improve"))
	for i, c := range cards {
		fmt.Fprintf(w, "%s\t%s\n",
			cardStyle.Render(c.String()),
			percentStyle.Render(fmt.Sprintf("%.1f%%", res.Probabilities[i])))
	}
	w.Flush()
	fmt.Println()
}

func newLogger(debug bool, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: lvl})
}
