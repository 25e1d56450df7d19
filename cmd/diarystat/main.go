package main

import (
	"fmt"
	"os"

	"github.com/Ahtty/diary-statistics/internal/cli"
	"github.com/Ahtty/diary-statistics/internal/intelligence"
	"github.com/Ahtty/diary-statistics/internal/llm"
	"github.com/Ahtty/diary-statistics/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Dataset: service.NewDatasetService(),
		Stats:   service.NewStatsService(),
		Reports: service.NewReportService(),
	}

	// Detect interactive terminal so commands can decide when prompting
	// is appropriate.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// The narrative service is constructed per invocation: the key may
	// arrive via flag, and a missing key must fail before any network
	// call is attempted.
	app.NewNarrative = func(apiKey, model string) (intelligence.NarrativeService, error) {
		cfg := llm.LoadConfig()
		if apiKey != "" {
			cfg.APIKey = apiKey
		}
		if model != "" {
			cfg.Model = model
		}

		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}

		client, err := llm.NewOpenAIClient(cfg, observer)
		if err != nil {
			return nil, err
		}
		return intelligence.NewNarrativeService(client), nil
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
