package dir

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// DescriptorError reports a descriptor that could not become a Topic.
// It is always fatal for the build.
type DescriptorError struct {
	Path string
	Err  error
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("%v %s: %v", domain.ErrInvalidDescriptor, e.Path, e.Err)
}

func (e *DescriptorError) Unwrap() []error {
	return []error{domain.ErrInvalidDescriptor, e.Err}
}

// Loader builds a corpus from a directory tree of YAML descriptors.
//
// Each directory may hold one category descriptor (_category.yaml) and any
// number of leaf descriptors (*.yaml, *.yml). Ids are assigned from a single
// counter in traversal order: the category first, then the leaves, then the
// subdirectories, each level in file name order.
type Loader struct {
	fsys   iofs.FS
	root   string
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report skipped files and load summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithRoot restricts the walk to a subdirectory of the file system.
func WithRoot(root string) Option {
	return func(l *Loader) {
		l.root = root
	}
}

// New creates a loader over fsys.
func New(fsys iofs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys: fsys,
		root: ".",
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

// NewFromDir creates a loader over a directory on disk.
func NewFromDir(dir string, opts ...Option) *Loader {
	return New(os.DirFS(dir), opts...)
}

// Load walks the tree and returns the corpus.
// The first invalid descriptor aborts the walk.
func (l *Loader) Load(ctx context.Context) (*corpus.Corpus, error) {
	w := &walker{ctx: ctx, fsys: l.fsys, logger: l.logger}
	if err := w.walk(l.root, ""); err != nil {
		return nil, err
	}

	c, err := corpus.New(w.topics)
	if err != nil {
		return nil, fmt.Errorf("loaded topics failed integrity check: %w", err)
	}

	l.logger.Info("corpus loaded", "topics", c.Len(), "roots", len(c.Roots()))
	return c, nil
}

// walker carries the state of one traversal. next is the shared id counter.
type walker struct {
	ctx    context.Context
	fsys   iofs.FS
	logger *slog.Logger
	next   int
	topics []domain.Topic
}

func (w *walker) walk(dir, inherited string) error {
	if err := w.ctx.Err(); err != nil {
		return err
	}

	// ReadDir returns entries sorted by file name, which fixes id order.
	entries, err := iofs.ReadDir(w.fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var category string
	var leaves, subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasPrefix(name, "."):
			continue
		case entry.IsDir():
			subdirs = append(subdirs, name)
		case domain.IsCategoryDescriptor(name):
			if category != "" {
				return &DescriptorError{
					Path: path.Join(dir, name),
					Err:  fmt.Errorf("directory already has category descriptor %s", category),
				}
			}
			category = name
		case isDescriptor(name):
			leaves = append(leaves, name)
		default:
			w.logger.Debug("skipping non-descriptor file", "path", path.Join(dir, name))
		}
	}

	local := inherited
	if category != "" {
		t, err := w.parse(path.Join(dir, category), true)
		if err != nil {
			return err
		}
		local = w.add(t, inherited)
	}

	for _, name := range leaves {
		t, err := w.parse(path.Join(dir, name), false)
		if err != nil {
			return err
		}
		w.add(t, local)
	}

	for _, name := range subdirs {
		if err := w.walk(path.Join(dir, name), local); err != nil {
			return err
		}
	}
	return nil
}

// add assigns the next id and links the topic to its category.
func (w *walker) add(t domain.Topic, categoryID string) string {
	t.ID = strconv.Itoa(w.next)
	w.next++
	t.CategoryID = categoryID
	w.topics = append(w.topics, t)
	return t.ID
}

func (w *walker) parse(file string, category bool) (domain.Topic, error) {
	raw, err := iofs.ReadFile(w.fsys, file)
	if err != nil {
		return domain.Topic{}, &DescriptorError{Path: file, Err: err}
	}

	meta, err := decodeMetadata(raw)
	if err != nil {
		return domain.Topic{}, &DescriptorError{Path: file, Err: err}
	}
	meta.normalize()
	if err := meta.Validate(category); err != nil {
		return domain.Topic{}, &DescriptorError{Path: file, Err: err}
	}

	return meta.topic(), nil
}

// decodeMetadata parses YAML into a generic map and decodes it with mapstructure,
// so numeric keys accept both 2 and "2" and unknown keys are reported.
func decodeMetadata(raw []byte) (TopicMetadata, error) {
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return TopicMetadata{}, fmt.Errorf("malformed yaml: %w", err)
	}
	if data == nil {
		return TopicMetadata{}, errors.New("descriptor is empty")
	}

	var meta TopicMetadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return TopicMetadata{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return TopicMetadata{}, fmt.Errorf("failed to decode descriptor: %w", err)
	}
	return meta, nil
}

func isDescriptor(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
