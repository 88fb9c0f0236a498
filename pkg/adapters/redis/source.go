package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/helpcenter/pkg/corpus"
)

// DefaultKey is the key the corpus artifact is published under.
const DefaultKey = "helpcenter:corpus"

// ErrNotPublished is returned when no corpus has been published under the key.
var ErrNotPublished = errors.New("corpus not published")

// Source stores the corpus artifact in a single Redis key so that every
// runtime instance loads the same build. It implements ports.CorpusSource and
// ports.CorpusPublisher. Instances read the key once at startup.
type Source struct {
	client *backend.Client
	key    string
}

type Option func(*Source)

// WithKey sets the key holding the artifact.
func WithKey(key string) Option {
	return func(s *Source) {
		if key != "" {
			s.key = key
		}
	}
}

// New creates a new Redis source with options.
func New(address, password string, db int, opts ...Option) *Source {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromURL creates a source from a redis:// URL.
func NewFromURL(url string, opts ...Option) (*Source, error) {
	options, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(options), opts...), nil
}

// NewFromClient creates a new Redis source from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Source {
	s := &Source{
		client: client,
		key:    DefaultKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the key holding the artifact.
func (s *Source) Key() string {
	return s.key
}

// Load fetches and decodes the artifact.
func (s *Source) Load(ctx context.Context) (*corpus.Corpus, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w under key %q", ErrNotPublished, s.key)
		}
		return nil, fmt.Errorf("failed to fetch corpus: %w", err)
	}

	c, err := corpus.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("redis key %q: %w", s.key, err)
	}
	return c, nil
}

// Publish replaces the artifact and records when it was published.
func (s *Source) Publish(ctx context.Context, c *corpus.Corpus) error {
	data, err := corpus.Encode(c)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Set(ctx, s.key, data, 0)
		pipe.HSet(ctx, s.metaKey(),
			"topics", c.Len(),
			"published_at", time.Now().UTC().Format(time.RFC3339),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish corpus: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Source) Close() error {
	return s.client.Close()
}

func (s *Source) metaKey() string {
	return s.key + ":meta"
}
