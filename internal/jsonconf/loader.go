package jsonconf

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader reads the standard JSON configuration format. It is strict:
// unknown keys, missing required keys and wrongly typed values are load
// errors.
//
//	{
//	  "description": "...",
//	  "builds": {
//	    "/path/to/build": {
//	      "flavours": ["vanilla"],
//	      "items": {
//	        "item01": {
//	          "builders": "/builder/dir",
//	          "instrument_analysis": ["/analysis/functors", "/cubes", "/analyzer"],
//	          "runner": "/runner/dir",
//	          "args": ["..."],
//	          "submitter": "/submitter/dir",
//	          "batch_script": "/batch/script"
//	        }
//	      }
//	    }
//	  }
//	}
type Loader struct{}

// NewLoader creates a new standard JSON configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	model, err := l.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", path, err)
	}

	logger.Debug("JSON loading complete.", "path", path, "builds", len(model.Builds))
	return model, nil
}

// Parse translates a standard JSON document into the model.
func (l *Loader) Parse(ctx context.Context, src []byte) (*config.Model, error) {
	root, err := decode(src)
	if err != nil {
		return nil, err
	}
	attrs, err := object(root, "document")
	if err != nil {
		return nil, err
	}
	if err := checkKeys(attrs, "document", "description", "builds"); err != nil {
		return nil, err
	}

	model := config.NewModel()
	if d, ok := attrs["description"]; ok {
		if model.Description, err = strictString(d, "description"); err != nil {
			return nil, err
		}
	}

	buildsVal, ok := attrs["builds"]
	if !ok {
		return nil, fmt.Errorf("document: missing required key %q", "builds")
	}
	builds, err := object(buildsVal, "builds")
	if err != nil {
		return nil, err
	}

	for _, dir := range sortedKeys(builds) {
		if err := l.translateBuild(ctx, model, dir, builds[dir]); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func (l *Loader) translateBuild(ctx context.Context, model *config.Model, dir string, v cty.Value) error {
	where := fmt.Sprintf("builds[%q]", dir)
	attrs, err := object(v, where)
	if err != nil {
		return err
	}
	if err := checkKeys(attrs, where, "flavours", "items"); err != nil {
		return err
	}

	flavorsVal, ok := attrs["flavours"]
	if !ok {
		return fmt.Errorf("%s: missing required key %q", where, "flavours")
	}
	flavors, err := strictStrings(flavorsVal, where+".flavours")
	if err != nil {
		return err
	}

	itemsVal, ok := attrs["items"]
	if !ok {
		return fmt.Errorf("%s: missing required key %q", where, "items")
	}
	items, err := object(itemsVal, where+".items")
	if err != nil {
		return err
	}

	build := model.AddBuild(dir, flavors)
	for _, name := range sortedKeys(items) {
		it, err := l.translateItem(fmt.Sprintf("%s.items[%q]", where, name), name, items[name])
		if err != nil {
			return err
		}
		build.AddItem(it)
	}
	ctxlog.FromContext(ctx).Debug("Translated build.", "build", dir, "items", len(items))
	return nil
}

func (l *Loader) translateItem(where, name string, v cty.Value) (*config.Item, error) {
	attrs, err := object(v, where)
	if err != nil {
		return nil, err
	}
	if err := checkKeys(attrs, where, "builders", "instrument_analysis", "runner", "args", "submitter", "batch_script"); err != nil {
		return nil, err
	}

	it := &config.Item{Name: name}

	required := []struct {
		key string
		dst *string
	}{
		{"builders", &it.BuilderDir},
		{"runner", &it.RunnerDir},
	}
	for _, r := range required {
		val, ok := attrs[r.key]
		if !ok {
			return nil, fmt.Errorf("%s: missing required key %q", where, r.key)
		}
		if *r.dst, err = strictString(val, where+"."+r.key); err != nil {
			return nil, err
		}
	}

	iaVal, ok := attrs["instrument_analysis"]
	if !ok {
		return nil, fmt.Errorf("%s: missing required key %q", where, "instrument_analysis")
	}
	ia, err := strictStrings(iaVal, where+".instrument_analysis")
	if err != nil {
		return nil, err
	}
	if len(ia) != 3 {
		return nil, fmt.Errorf("%s.instrument_analysis: expected 3 entries (functors, cubes, analyzer), got %d", where, len(ia))
	}
	it.AnalysisDir, it.CubesDir, it.AnalyzerDir = ia[0], ia[1], ia[2]

	optional := []struct {
		key string
		dst *string
	}{
		{"submitter", &it.SubmitterDir},
		{"batch_script", &it.BatchScript},
	}
	for _, o := range optional {
		val, ok := attrs[o.key]
		if !ok {
			continue
		}
		if *o.dst, err = strictString(val, where+"."+o.key); err != nil {
			return nil, err
		}
	}

	if val, ok := attrs["args"]; ok {
		if it.Args, err = strictStrings(val, where+".args"); err != nil {
			return nil, err
		}
	}
	return it, nil
}
