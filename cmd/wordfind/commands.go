package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordfind/internal/cli"
	"github.com/bastiangx/wordfind/internal/logger"
	"github.com/bastiangx/wordfind/internal/metrics"
	"github.com/bastiangx/wordfind/internal/utils"
	"github.com/bastiangx/wordfind/pkg/config"
	"github.com/bastiangx/wordfind/pkg/dictionary"
	"github.com/bastiangx/wordfind/pkg/httpapi"
	"github.com/bastiangx/wordfind/pkg/search"
	"github.com/bastiangx/wordfind/pkg/server"
	"github.com/bastiangx/wordfind/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	wordsPath  string
	index      string
	debug      bool
}

// app is everything a subcommand needs once flags and config are resolved.
type app struct {
	live       *config.Live
	configPath string
	engine     *search.Engine
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           AppName,
		Short:         "Prefix and typo-tolerant word search",
		Long:          "wordfind completes and corrects words against a word list over HTTP, msgpack IPC or an interactive REPL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetupDefault(opts.debug)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config.toml (default: user config dir)")
	flags.StringVar(&opts.wordsPath, "words", "", "Word list file, plain text or gzip (default from config)")
	flags.StringVar(&opts.index, "index", "", "Trie backend: node or patricia (default from config)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Toggle debug mode")

	root.AddCommand(
		newHTTPCmd(opts),
		newIPCCmd(opts),
		newREPLCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newHTTPCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve search over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = a.live.Load().Server.HTTPAddr
			}
			return httpapi.NewServer(a.engine, a.live).Run(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}

func newIPCCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ipc",
		Short: "Serve msgpack requests over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			log.Debug("spawning IPC")
			srv := server.NewServer(a.engine, a.live, a.configPath, os.Stdin, os.Stdout)
			return srv.Start(cmd.Context())
		},
	}
}

func newREPLCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Try queries interactively, prefix a line with ~ for fuzzy mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if limit > 0 {
				cfg := *a.live.Load()
				cfg.CLI.DefaultLimit = limit
				a.live.Store(&cfg)
			}
			log.SetReportTimestamp(false)

			h := cli.NewInputHandler(a.engine, a.live, cmd.InOrStdin(), cmd.OutOrStdout())
			done := make(chan error, 1)
			go func() { done <- h.Start() }()

			select {
			case err := <-done:
				return err
			case <-cmd.Context().Done():
				return nil
			}
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of matches to show (default from config)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	banner := log.NewWithOptions(w, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ wordfind ] prefix and typo-tolerant word search")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// setup loads config, resolves the word list and wires the engine. The
// dictionary itself is built on the first query.
func setup(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, configPath, err := config.LoadConfigWithPriority(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Debugf("Using config file: %s", config.GetActiveConfigPath(configPath))

	if opts.index != "" {
		cfg.Search.Index = opts.index
	}
	wordsPath := cfg.Dict.Path
	if opts.wordsPath != "" {
		wordsPath = opts.wordsPath
	}

	resolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}
	wordsPath = resolver.ResolveWordList(wordsPath)
	log.Debugf("Using word list: %s (search dirs include %s)", wordsPath, resolver.ConfigDir())

	live := config.NewLive(cfg)
	if configPath != "" {
		err := config.Watch(ctx, configPath, func(next *config.Config) {
			// Search options and the index are fixed for the process.
			next.Search = live.Load().Search
			next.CLI = live.Load().CLI
			live.Store(next)
			log.Infof("Config reloaded: max_limit=%d default_limit=%d max_query_len=%d",
				next.Server.MaxLimit, next.Server.DefaultLimit, next.Server.MaxQueryLen)
		})
		if err != nil {
			log.Warnf("Config changes will not be picked up: %v", err)
		}
	}

	cache := dictionary.NewCache(dictionary.NewFileSource(wordsPath), trie.Kind(cfg.Search.Index))
	engine := search.NewEngine(cache, search.Options{
		DefaultMaxDistance:    cfg.Search.DefaultMaxDistance,
		SupplementMinLength:   cfg.Search.SupplementMinLength,
		SupplementMaxDistance: cfg.Search.SupplementMaxDistance,
	}).WithRecorder(metrics.NewRecorder())

	return &app{live: live, configPath: configPath, engine: engine}, nil
}
