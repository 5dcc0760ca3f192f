package cli

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/endlabel/internal/server"
	"github.com/matzehuels/endlabel/pkg/buildinfo"
	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/pipeline"
)

// redisURLEnv supplies --redis when the flag is not set.
const redisURLEnv = "ENDLABEL_REDIS_URL"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr        string
	redisURL    string
	redisPrefix string
	fileCache   bool
	memEntries  int
	maxBody     int64
	timeout     time.Duration
}

// serveCommand creates the serve command, which runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:        ":8080",
		redisPrefix: cache.DefaultRedisPrefix,
		memEntries:  cache.DefaultMemoryEntries,
		maxBody:     server.DefaultMaxBodyBytes,
		timeout:     server.DefaultRequestTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve chart rendering over HTTP",
		Long: `Run the HTTP render service.

Rendered artifacts are cached in memory unless --redis (or ` + redisURLEnv + `)
points at a Redis server, or --file-cache selects the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(redisURLEnv)
			}
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the artifact cache (redis://host:6379/0)")
	cmd.Flags().StringVar(&opts.redisPrefix, "redis-prefix", opts.redisPrefix, "key prefix for Redis entries")
	cmd.Flags().BoolVar(&opts.fileCache, "file-cache", false, "cache artifacts in the local cache directory")
	cmd.Flags().IntVar(&opts.memEntries, "memory-entries", opts.memEntries, "maximum artifacts kept by the in-memory cache")
	cmd.Flags().Int64Var(&opts.maxBody, "max-body", opts.maxBody, "maximum chart body size in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	cmd.MarkFlagsMutuallyExclusive("redis", "file-cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	// Artifacts drawn by different builds must not share cache entries.
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	if c.Logger.GetLevel() <= log.DebugLevel {
		registerLogHooks(c.Logger)
	}

	printKeyValue("version", buildinfo.Version)
	printKeyValue("listen", opts.addr)

	srv := server.New(runner, c.Logger,
		server.WithVersion(buildinfo.Version),
		server.WithMaxBodyBytes(opts.maxBody),
		server.WithTimeout(opts.timeout),
	)
	return srv.ListenAndServe(ctx, opts.addr)
}

// serveCache picks the artifact cache backend for the service.
func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.redisURL != "":
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rc, err := cache.NewRedisCache(dialCtx, cache.RedisOptions{
			URL:    opts.redisURL,
			Prefix: opts.redisPrefix,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis")
		}
		printKeyValue("cache", "redis")
		return rc, nil
	case opts.fileCache:
		fc, err := newCache(false)
		if err != nil {
			return nil, err
		}
		printKeyValue("cache", "file")
		return fc, nil
	default:
		printKeyValue("cache", "memory")
		return cache.NewMemoryCache(cache.WithMaxEntries(opts.memEntries)), nil
	}
}
