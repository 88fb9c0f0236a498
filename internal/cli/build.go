package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/helpcenter/internal/validator"
	"github.com/aretw0/helpcenter/pkg/adapters/dir"
	"github.com/aretw0/helpcenter/pkg/adapters/file"
	"github.com/aretw0/helpcenter/pkg/adapters/redis"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/ports"
)

// BuildOptions configures the build command.
type BuildOptions struct {
	Topics     string
	Out        string
	PublishURL string
	RedisKey   string
}

// Build compiles the descriptor tree and publishes the artifact.
// Any invalid descriptor or render-limit error aborts before anything is written.
func Build(ctx context.Context, opts BuildOptions, logger *slog.Logger) (*corpus.Corpus, error) {
	c, err := dir.NewFromDir(opts.Topics, dir.WithLogger(logger)).Load(ctx)
	if err != nil {
		return nil, err
	}

	report := validator.ValidateCorpus(c)
	for _, f := range report.Findings {
		if f.Severity == validator.SeverityWarning {
			logger.Warn("corpus warning", "topic_id", f.TopicID, "message", f.Message)
		}
	}
	if err := report.Err(); err != nil {
		return nil, err
	}

	var publishers []ports.CorpusPublisher
	if opts.Out != "" {
		publishers = append(publishers, file.New(opts.Out))
	}
	if opts.PublishURL != "" {
		r, err := redis.NewFromURL(opts.PublishURL, redis.WithKey(opts.RedisKey))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		publishers = append(publishers, r)
	}

	for _, p := range publishers {
		if err := p.Publish(ctx, c); err != nil {
			return nil, fmt.Errorf("publish failed: %w", err)
		}
	}
	logger.Info("corpus built", "topics", c.Len(), "out", opts.Out, "published", opts.PublishURL != "")
	return c, nil
}
