// Package gen runs one complete generation pass: string resources, layouts,
// interfaces and the type table are loaded, every layout is resolved and
// matched, and one wrapper source file is written per layout.
package gen

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/wrapgen/config"
	"github.com/teranos/wrapgen/emit"
	"github.com/teranos/wrapgen/errors"
	"github.com/teranos/wrapgen/iface"
	"github.com/teranos/wrapgen/layout"
	"github.com/teranos/wrapgen/logger"
	"github.com/teranos/wrapgen/resolve"
	"github.com/teranos/wrapgen/strres"
	"github.com/teranos/wrapgen/typesys"
)

// Summary describes a finished run.
type Summary struct {
	RunID string

	// PackageDir is the directory the wrapper sources were written to
	PackageDir string
	Files      []string

	Layouts    int
	Interfaces int
	// Dropped lists interfaces excluded for unresolvable parents
	Dropped []string
	// Excluded lists interfaces with members that take parameters
	Excluded []string

	// Matches maps a layout to the interfaces it implements
	Matches map[string][]string
	// Conflicts maps a layout to the ids hidden by include conflicts
	Conflicts map[string][]string
	// Resolved holds every generated layout in corpus order
	Resolved []*emit.Layout

	Duration time.Duration
}

// Run is the state of one generation pass. A Run is not reusable.
type Run struct {
	ID string

	cfg        *config.Config
	log        *zap.SugaredLogger
	outputRoot string
	hooks      bool
	generator  emit.Generator
}

// Option configures a Run
type Option func(*Run)

// WithOutputRoot writes into root instead of the configured output_dir.
func WithOutputRoot(root string) Option {
	return func(r *Run) {
		r.outputRoot = root
	}
}

// WithoutHooks disables hooks.after_generate
func WithoutHooks() Option {
	return func(r *Run) {
		r.hooks = false
	}
}

// NewRun prepares a run over cfg. The configuration must already be valid.
func NewRun(cfg *config.Config, log *zap.SugaredLogger, opts ...Option) *Run {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	id := uuid.New().String()
	r := &Run{
		ID:         id,
		cfg:        cfg,
		log:        logger.ChildLogger(log, logger.FieldRunID, id),
		outputRoot: cfg.OutputDir,
		hooks:      true,
		generator: emit.NewJavaGenerator(emit.JavaOptions{
			PackageName:     cfg.PackageName,
			LayoutInterface: cfg.LayoutInterface,
			ResourceClass:   cfg.ResourceClass,
			EnsureNonNull:   cfg.EnsureNonNullFunction,
		}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PackageDir returns the directory the run writes to.
func (r *Run) PackageDir() string {
	return emit.PackageDir(r.outputRoot, r.cfg.PackageName)
}

// Execute performs the run. Nothing is written unless every layout resolves.
func (r *Run) Execute(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:      r.ID,
		PackageDir: r.PackageDir(),
		Matches:    make(map[string][]string),
		Conflicts:  make(map[string][]string),
	}

	catalog, err := strres.Load(r.cfg.ResourcesDir, r.log.Named("strres"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load string resources")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	corpus, err := layout.LoadCorpus(r.cfg.ResourcesDir, catalog, r.log.Named("layout"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load layouts")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	caster, tags, err := r.typeSystem()
	if err != nil {
		return nil, err
	}

	resolved, err := r.interfaces(summary)
	if err != nil {
		return nil, err
	}
	matcher := iface.NewMatcher(resolved, caster, tags)

	walker := resolve.NewWalker(corpus, r.log.Named("resolve"),
		resolve.WithStrictConflicts(r.cfg.StrictIncludeConflicts))
	models, err := walker.ResolveAll()
	if err != nil {
		return nil, err
	}

	layouts := make([]*emit.Layout, 0, len(models))
	for _, m := range models {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matched := matcher.Match(m.RootTag, m.Types)
		l := emit.FromModel(m, matched, tags)
		layouts = append(layouts, l)

		if len(l.Interfaces) > 0 {
			summary.Matches[m.Layout] = l.Interfaces
		}
		if len(m.Conflicts) > 0 {
			summary.Conflicts[m.Layout] = m.Conflicts
		}
		r.log.Debugw("Resolved layout",
			logger.FieldLayout, m.Layout,
			logger.FieldCount, len(m.IDs),
			"interfaces", l.Interfaces)
		for _, id := range l.IDs {
			r.log.Debugw("Resolved id",
				logger.FieldLayout, m.Layout,
				logger.FieldID, id,
				logger.FieldType, l.Types[id],
				"owner", l.Wrappers[id])
		}
	}

	files, err := emit.WriteLayouts(r.generator, summary.PackageDir, layouts)
	if err != nil {
		return nil, err
	}
	summary.Files = files
	summary.Layouts = len(layouts)
	summary.Resolved = layouts

	if r.hooks && r.cfg.Hooks.AfterGenerate != "" {
		if err := r.runHook(ctx, r.cfg.Hooks.AfterGenerate); err != nil {
			return nil, err
		}
	}

	summary.Duration = time.Since(start)
	r.log.Infow("Generated layout wrappers",
		logger.FieldCount, summary.Layouts,
		logger.FieldPath, summary.PackageDir,
		logger.FieldDurationMS, summary.Duration.Milliseconds())
	return summary, nil
}

func (r *Run) typeSystem() (*typesys.Caster, typesys.TagTable, error) {
	base := typesys.NewHierarchy()
	if r.cfg.UseBuiltinHierarchy {
		base = typesys.Builtin()
	}
	hierarchy, err := typesys.LoadHierarchy(base, r.cfg.HierarchyFiles...)
	if err != nil {
		return nil, nil, err
	}

	caster := typesys.NewCaster(hierarchy,
		typesys.WithTopType(r.cfg.TopType),
		typesys.WithKnownCasts(r.cfg.KnownCastMap()))
	tags := typesys.DefaultTags().Merge(r.cfg.ImplicitTagMap())

	r.log.Debugw("Loaded type hierarchy",
		logger.FieldCount, len(hierarchy.Names()),
		"files", len(r.cfg.HierarchyFiles))
	return caster, tags, nil
}

// interfaces loads and resolves the declared interfaces. A missing
// interfaces directory declares none.
func (r *Run) interfaces(summary *Summary) ([]iface.Resolved, error) {
	dir := r.cfg.InterfacesDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		r.log.Debugw("No interfaces directory",
			logger.FieldPath, dir)
		return nil, nil
	}

	decls, err := iface.LoadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load interfaces")
	}

	table := iface.NewTable(decls, r.log.Named("iface"))
	resolved, dropped := table.ResolveAll()
	for _, name := range dropped {
		r.log.Debugw("Interface dropped: a parent is not a plain getter interface",
			logger.FieldInterface, name)
	}

	summary.Interfaces = len(resolved)
	summary.Dropped = dropped
	summary.Excluded = table.Excluded()
	return resolved, nil
}

// OutputFile returns the absolute path of a generated file.
func (s *Summary) OutputFile(name string) string {
	return filepath.Join(s.PackageDir, name)
}
