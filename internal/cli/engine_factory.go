package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/helpcenter"
	"github.com/aretw0/helpcenter/internal/config"
	"github.com/aretw0/helpcenter/pkg/adapters/dir"
	"github.com/aretw0/helpcenter/pkg/adapters/file"
	"github.com/aretw0/helpcenter/pkg/adapters/redis"
	"github.com/aretw0/helpcenter/pkg/domain"
	"github.com/aretw0/helpcenter/pkg/ports"
)

// source describes where the runtime corpus comes from.
type source struct {
	ports.CorpusSource
	name  string
	close func() error
}

// selectSource picks the corpus source by convention:
// a Redis URL wins, then a compiled artifact on disk, then the descriptor tree.
func selectSource(cfg config.Config, logger *slog.Logger) (source, error) {
	if cfg.RedisURL != "" {
		s, err := redis.NewFromURL(cfg.RedisURL, redis.WithKey(cfg.RedisKey))
		if err != nil {
			return source{}, err
		}
		return source{CorpusSource: s, name: "redis:" + s.Key(), close: s.Close}, nil
	}

	if cfg.Corpus != "" {
		if _, err := os.Stat(cfg.Corpus); err == nil {
			return source{CorpusSource: file.New(cfg.Corpus), name: cfg.Corpus, close: noClose}, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return source{}, fmt.Errorf("failed to stat corpus %s: %w", cfg.Corpus, err)
		}
	}

	if cfg.Topics == "" {
		return source{}, errors.New("no corpus source: set topics, corpus or redis_url")
	}
	return source{CorpusSource: dir.NewFromDir(cfg.Topics, dir.WithLogger(logger)), name: cfg.Topics, close: noClose}, nil
}

func noClose() error { return nil }

// createEngine loads the corpus and initializes an engine with standard CLI conventions.
// The returned closer releases the source's connections.
func createEngine(ctx context.Context, cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*helpcenter.Engine, func() error, error) {
	src, err := selectSource(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("corpus source selected", "source", src.name)

	engine, err := helpcenter.New(ctx, src.name,
		helpcenter.WithSource(src),
		helpcenter.WithLogger(logger),
		helpcenter.WithTheme(cfg.Theme),
		helpcenter.WithLifecycleHooks(hooks),
	)
	if err != nil {
		_ = src.close()
		return nil, nil, fmt.Errorf("error initializing engine: %w", err)
	}
	return engine, src.close, nil
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
