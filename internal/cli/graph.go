package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/helpcenter/internal/config"
	"github.com/aretw0/helpcenter/internal/presentation/graph"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// Graph writes a mermaid flowchart of the corpus, optionally highlighting one topic.
func Graph(ctx context.Context, cfg config.Config, highlight string, w io.Writer) error {
	engine, closeSource, err := createEngine(ctx, cfg, nopLogger(), domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	defer closeSource()

	var overlay *graph.GraphOverlay
	if highlight != "" {
		if _, ok := engine.Corpus().Lookup(highlight); !ok {
			return fmt.Errorf("topic %q: %w", highlight, domain.ErrTopicNotFound)
		}
		overlay = &graph.GraphOverlay{CurrentTopic: highlight}
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(engine.Corpus(), overlay))
	return err
}
