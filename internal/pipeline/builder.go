package pipeline

import (
	"fmt"
	"time"

	"github.com/vvka-141/omarchive/internal/archive"
	"github.com/vvka-141/omarchive/internal/catalogue"
	"github.com/vvka-141/omarchive/internal/checksum"
	"github.com/vvka-141/omarchive/internal/files/filesystem"
	"github.com/vvka-141/omarchive/internal/identity"
	"github.com/vvka-141/omarchive/internal/processors"
	"github.com/vvka-141/omarchive/pkg/omarchive"
)

// StageResult records what one processor added to the graph.
type StageResult struct {
	Name          string
	Nodes         int
	Relationships int
	Duration      time.Duration
}

// Result is the outcome of a build.
type Result struct {
	Archive  *archive.Archive
	Stats    archive.Stats
	Stages   []StageResult
	Registry *identity.Registry

	// OutputPath is set by Run once the archive file is in place.
	OutputPath string
}

// Builder runs archive builds.
// Thread-Safety: NOT safe for concurrent Build() calls on the same instance.
type Builder struct {
	logger     omarchive.Logger
	plan       Plan
	catalogue  *catalogue.Catalogue
	calculator checksum.Calculator
	now        func() time.Time
}

// Option customizes a Builder.
type Option func(*Builder)

// WithPlan replaces the default processor plan.
func WithPlan(plan Plan) Option {
	return func(b *Builder) { b.plan = plan }
}

// WithCatalogue builds from an already loaded catalogue instead of the
// configured directory.
func WithCatalogue(c *catalogue.Catalogue) Option {
	return func(b *Builder) { b.catalogue = c }
}

// WithClock sets the clock used for the header creation time.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

// New creates a Builder. It panics if logger is nil.
func New(logger omarchive.Logger, opts ...Option) *Builder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	b := &Builder{
		logger:     logger,
		plan:       DefaultPlan(),
		calculator: checksum.New(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LoadCatalogue returns the configured catalogue: the one given WithCatalogue,
// the directory named by cfg, or the embedded default.
func (b *Builder) LoadCatalogue(cfg omarchive.BuildConfig) (*catalogue.Catalogue, error) {
	if b.catalogue != nil {
		return b.catalogue, nil
	}
	if cfg.CatalogueDir != "" {
		c, err := catalogue.LoadDir(cfg.CatalogueDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalogue: %w", err)
		}
		return c, nil
	}
	c, err := catalogue.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded catalogue: %w", err)
	}
	return c, nil
}

// Build runs every processor and returns the archive. Nothing is written.
func (b *Builder) Build(cfg omarchive.BuildConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := b.plan.Validate(); err != nil {
		return nil, err
	}

	cat, err := b.LoadCatalogue(cfg)
	if err != nil {
		return nil, err
	}
	b.logger.Verbose("Catalogue: %s", cat.Source)

	registry := identity.New()
	if err := registry.Load(cfg.RegistryPath); err != nil {
		return nil, err
	}
	b.logger.Verbose("Identifier registry: %s (%d entries)", cfg.RegistryPath, registry.Len())

	state := processors.NewState(registry, cat, b.logger)
	stages := make([]StageResult, 0, len(b.plan))
	for _, proc := range b.plan {
		before := state.Assembler.Stats()
		start := time.Now()
		if err := proc.Process(state); err != nil {
			return nil, fmt.Errorf("processor %s failed: %w", proc.Name(), err)
		}
		after := state.Assembler.Stats()
		stage := StageResult{
			Name:          proc.Name(),
			Nodes:         after.Nodes - before.Nodes,
			Relationships: after.Edges - before.Edges,
			Duration:      time.Since(start),
		}
		stages = append(stages, stage)
		b.logger.Info("%-30s +%d nodes, +%d relationships", stage.Name, stage.Nodes, stage.Relationships)
	}

	entities, relationships := state.Assembler.Snapshot()
	arc := &archive.Archive{
		Header:        b.header(cfg),
		Entities:      entities,
		Relationships: relationships,
	}
	if err := arc.CheckReferences(); err != nil {
		return nil, err
	}

	fingerprint, err := b.calculator.CalculateCanonical(arc.Content())
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint archive: %w", err)
	}
	arc.Header.Fingerprint = fingerprint

	return &Result{
		Archive:  arc,
		Stats:    arc.Stats(),
		Stages:   stages,
		Registry: registry,
	}, nil
}

func (b *Builder) header(cfg omarchive.BuildConfig) archive.Header {
	created := cfg.CreationTime
	if created.IsZero() {
		created = b.now()
	}
	var dependsOn []string
	if len(cfg.DependsOn) > 0 {
		dependsOn = append(dependsOn, cfg.DependsOn...)
	}
	return archive.Header{
		GUID:                   cfg.ArchiveGUID,
		Name:                   cfg.ArchiveName,
		Description:            cfg.Description,
		Version:                cfg.Version,
		Type:                   omarchive.ArchiveType,
		OriginatorName:         cfg.OriginatorName,
		OriginatorOrganization: cfg.OriginatorOrganization,
		License:                cfg.License,
		CreationTime:           created.UTC(),
		DependsOn:              dependsOn,
	}
}

// Run builds the archive, persists the registry and writes the archive file.
// On failure the output file and the registry file are left as they were.
func (b *Builder) Run(cfg omarchive.BuildConfig) (*Result, error) {
	result, err := b.Build(cfg)
	if err != nil {
		return nil, err
	}

	data, err := archive.Marshal(result.Archive)
	if err != nil {
		return nil, err
	}
	staged, err := filesystem.Stage(cfg.OutputPath, data)
	if err != nil {
		return nil, fmt.Errorf("failed to write archive %s: %w", cfg.OutputPath, err)
	}
	defer staged.Discard()

	if err := result.Registry.Persist(cfg.RegistryPath); err != nil {
		return nil, err
	}
	if err := staged.Commit(); err != nil {
		return nil, fmt.Errorf("failed to write archive %s: %w", cfg.OutputPath, err)
	}

	result.OutputPath = cfg.OutputPath
	b.logger.Info("Archive written to %s (%d entities, %d relationships)",
		cfg.OutputPath, result.Stats.Entities, result.Stats.Relationships)
	return result, nil
}
