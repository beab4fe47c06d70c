package hcl

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/ctxlog"
	"github.com/specialistvlad/pirago/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ backs the `env` variable, in os.Environ form. Nil means the
	// process environment.
	Environ []string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses path, a single file or a directory of .hcl files, and merges
// every build block it finds into one model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.ConfigFiles(path, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	environ := l.Environ
	if environ == nil {
		environ = defaultEnviron()
	}
	evalCtx := baseEvalContext(environ)

	parser := hclparse.NewParser()
	model := config.NewModel()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Description != "" {
			model.Description = root.Description
		}
		for _, b := range root.Builds {
			if err := l.translateBuild(ctx, evalCtx, model, b); err != nil {
				return nil, fmt.Errorf("failed to load HCL file %s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL loading complete.", "files", len(files), "builds", len(model.Builds))
	return model, nil
}

// translateBuild merges a build block into the model. A build declared in
// several files is merged. Its flavors may be set by one block or repeated
// identically; differing lists and items declared twice are errors.
func (l *Loader) translateBuild(ctx context.Context, evalCtx *hcl.EvalContext, model *config.Model, b *buildBlock) error {
	build := model.AddBuild(b.Dir, b.Flavors)
	switch {
	case len(b.Flavors) == 0:
	case len(build.Flavors) == 0:
		build.Flavors = b.Flavors
	case !slices.Equal(build.Flavors, b.Flavors):
		return fmt.Errorf("build %q: conflicting flavors %q and %q", build.Dir, build.Flavors, b.Flavors)
	}

	for _, ib := range b.Items {
		if _, exists := build.Items[ib.Name]; exists {
			return fmt.Errorf("build %q: duplicate item %q", build.Dir, ib.Name)
		}

		var body itemBody
		diags := gohcl.DecodeBody(ib.Remain, itemEvalContext(evalCtx, build.Dir, ib.Name), &body)
		if diags.HasErrors() {
			return fmt.Errorf("build %q: item %q: %w", build.Dir, ib.Name, diags)
		}

		build.AddItem(translateItem(ib.Name, &body))
	}

	ctxlog.FromContext(ctx).Debug("Translated build.", "build", build.Dir, "items", len(b.Items))
	return nil
}

func translateItem(name string, body *itemBody) *config.Item {
	it := &config.Item{
		Name:         name,
		Flavors:      body.Flavors,
		BuilderDir:   body.Builder,
		RunnerDir:    body.Runner,
		SubmitterDir: body.Submitter,
		BatchScript:  body.BatchScript,
		Args:         body.Args,
	}
	if body.Analysis != nil {
		it.AnalysisDir = body.Analysis.Functors
		it.CubesDir = body.Analysis.Cubes
		it.AnalyzerDir = body.Analysis.Analyzer
	}
	return it
}
