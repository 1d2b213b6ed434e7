package main

import (
	"os"
	"strings"

	"github.com/Alia5/padwatch/internal/config"
	"github.com/Alia5/padwatch/internal/configpaths"
	"github.com/Alia5/padwatch/internal/log"

	_ "github.com/Alia5/padwatch/internal/registry" // Register all device profiles

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("padwatch"),
		kong.Description("Watch game controller inputs and dispatch them per control"),
		kong.UsageOnError(),
		// Flags and env override values from defaults files.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, cli.Log.Format)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	events := log.NewEventLogger(os.Stdout)
	if cli.Log.EventFile != "" {
		f, err := os.OpenFile(cli.Log.EventFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open event log file", "file", cli.Log.EventFile, "error", err)
			os.Exit(2)
		}
		events = log.NewEventLogger(f)
		closeFiles = append(closeFiles, f)
	}

	ctx.Bind(logger)
	ctx.BindTo(events, (*log.EventLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("PADWATCH_CONFIG")
}
