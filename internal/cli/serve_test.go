package cli

import (
	"context"
	"testing"

	"github.com/matzehuels/endlabel/pkg/cache"
	"github.com/matzehuels/endlabel/pkg/errors"
)

func TestServeCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c := testCLI()
	ctx := context.Background()

	mem, err := c.serveCache(ctx, serveOpts{})
	if err != nil {
		t.Fatalf("default cache: %v", err)
	}
	if _, ok := mem.(*cache.MemoryCache); !ok {
		t.Errorf("default cache = %T, want *cache.MemoryCache", mem)
	}

	file, err := c.serveCache(ctx, serveOpts{fileCache: true})
	if err != nil {
		t.Fatalf("file cache: %v", err)
	}
	defer file.Close()
	if _, ok := file.(*cache.FileCache); !ok {
		t.Errorf("file cache = %T, want *cache.FileCache", file)
	}
}

func TestServeCacheBadRedisURL(t *testing.T) {
	_, err := testCLI().serveCache(context.Background(), serveOpts{redisURL: "mysql://nope"})
	if got := errors.GetCode(err); got != errors.ErrCodeInternal {
		t.Errorf("error code = %q, want %q (err %v)", got, errors.ErrCodeInternal, err)
	}
}

func TestServeFlagsExclusive(t *testing.T) {
	root := testCLI().RootCommand()
	root.SetArgs([]string{"serve", "--redis", "redis://localhost:6379", "--file-cache"})
	root.SilenceErrors = true
	if err := root.Execute(); err == nil {
		t.Error("--redis and --file-cache together should be rejected")
	}
}
