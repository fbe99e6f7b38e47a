package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/places/internal/common"
	"github.com/ternarybob/places/internal/httpclient"
	"github.com/ternarybob/places/pkg/places"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// command is a subcommand that returns the value to print.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, service *places.Service, args []string) (interface{}, error)
}

var commands = []command{
	{name: "details", summary: "Fetch the details of a place", run: runDetails},
	{name: "nearby", summary: "Search for places around a location", run: runNearby},
	{name: "text", summary: "Search for places matching a text query", run: runText},
}

var (
	configFiles  configPaths
	useADC       = flag.Bool("adc", false, "Authorize with Google application default credentials")
	quiet        = flag.Bool("q", false, "Do not print the banner")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
	flag.Usage = usage
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: places [flags] <command> [command flags]\n\nCommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(out, "  %-8s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		common.LoadVersionFromFile()
		fmt.Println(common.GetFullVersion())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var selected *command
	for i := range commands {
		if commands[i].name == args[0] {
			selected = &commands[i]
			break
		}
	}
	if selected == nil {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(2)
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("places.toml"); err == nil {
			configFiles = append(configFiles, "places.toml")
		}
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		common.GetLogger().Error().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	logger := common.InitLogger(config)

	if !*quiet {
		common.LoadVersionFromFile()
		common.PrintBanner(config, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := newService(ctx, config, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create places client")
		os.Exit(1)
	}

	result, err := selected.run(ctx, service, args[1:])
	if err != nil {
		logger.Error().Str("command", selected.name).Err(err).Msg("Command failed")
		os.Exit(1)
	}

	if err := printJSON(result); err != nil {
		logger.Error().Err(err).Msg("Failed to write result")
		os.Exit(1)
	}
}

// newService selects the transport from the configured credentials.
func newService(ctx context.Context, config *common.Config, logger arbor.ILogger) (*places.Service, error) {
	timeout := config.PlacesAPI.Timeout()

	var (
		httpClient *http.Client
		err        error
	)
	switch {
	case config.PlacesAPI.AccessToken != "":
		httpClient, err = httpclient.NewOAuthHTTPClient(ctx, config.PlacesAPI.AccessToken, timeout)
	case *useADC:
		httpClient, err = httpclient.NewGoogleDefaultHTTPClient(ctx, timeout)
	default:
		if !config.PlacesAPI.HasCredentials() {
			logger.Warn().Msg("No API key or access token configured, requests will be denied")
		}
		httpClient = httpclient.NewDefaultHTTPClient(timeout)
	}
	if err != nil {
		return nil, err
	}

	registry := places.NewRegistry(config.PlacesAPI.ClientOptions(logger)...)
	return registry.Service(httpClient), nil
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
