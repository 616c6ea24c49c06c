package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/himanshuxd/ncmpcpp/internal/bindings"
	"github.com/himanshuxd/ncmpcpp/internal/cfgfile"
	"github.com/himanshuxd/ncmpcpp/internal/config"
	"github.com/himanshuxd/ncmpcpp/internal/logger"
	"github.com/himanshuxd/ncmpcpp/internal/ui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// main is the only place a startup failure turns into a process exit:
// every stage below returns errors, help/version exit 0, anything fatal
// exits 1 with a single diagnostic line on stderr.
func main() {
	log := logger.New("startup")

	loader := config.NewLoader(cfgfile.New(log), bindings.New(), log)

	cfg, err := loader.Resolve(os.Args[1:])
	switch {
	case errors.Is(err, config.ErrHelpRequested):
		fmt.Printf("Usage: %s [options]...\n\n%s", os.Args[0], config.HelpText)
		return
	case errors.Is(err, config.ErrVersionRequested):
		printVersion()
		return
	case err != nil:
		log.Fatal().Err(err).Msg("error while processing configuration")
	}

	if err = loader.Bootstrap(cfg); err != nil {
		log.Fatal().Err(err).Msg("error during startup bootstrap")
	}

	if err = ui.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("error running ui")
	}
}

func printVersion() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("ncmpcpp %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
