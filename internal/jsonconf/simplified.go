package jsonconf

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// SimplifiedLoader reads the simplified JSON configuration format. Every
// item names one functor base directory that serves all roles unless a
// role directory is given explicitly. The loader is lenient: unknown keys
// are ignored and scalar values are converted to strings.
//
//	{
//	  "directories": {
//	    "/path/to/build": {
//	      "items": {
//	        "item01": {
//	          "functors": "/functors/dir",
//	          "analyzer": "/analyzer",
//	          "cubes": "/cubes",
//	          "flavors": ["vanilla"],
//	          "args": ["size", 10]
//	        }
//	      }
//	    }
//	  }
//	}
type SimplifiedLoader struct{}

// NewSimplifiedLoader creates a new simplified JSON configuration loader.
func NewSimplifiedLoader() *SimplifiedLoader {
	return &SimplifiedLoader{}
}

// Load implements config.Loader.
func (l *SimplifiedLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Simplified JSON loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	model, err := l.Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", path, err)
	}

	logger.Debug("Simplified JSON loading complete.", "path", path, "builds", len(model.Builds))
	return model, nil
}

// Parse translates a simplified JSON document into the model.
func (l *SimplifiedLoader) Parse(ctx context.Context, src []byte) (*config.Model, error) {
	root, err := decode(src)
	if err != nil {
		return nil, err
	}
	attrs, err := object(root, "document")
	if err != nil {
		return nil, err
	}
	ignoreUnknown(ctx, attrs, "document", "description", "directories")

	model := config.NewModel()
	if d, ok := attrs["description"]; ok {
		if model.Description, err = looseString(d, "description"); err != nil {
			return nil, err
		}
	}

	dirsVal, ok := attrs["directories"]
	if !ok {
		return nil, fmt.Errorf("document: missing required key %q", "directories")
	}
	dirs, err := object(dirsVal, "directories")
	if err != nil {
		return nil, err
	}

	for _, dir := range sortedKeys(dirs) {
		where := fmt.Sprintf("directories[%q]", dir)
		battrs, err := object(dirs[dir], where)
		if err != nil {
			return nil, err
		}
		ignoreUnknown(ctx, battrs, where, "items", "flavors", "flavours")

		flavors, err := flavorList(battrs, where)
		if err != nil {
			return nil, err
		}
		build := model.AddBuild(dir, flavors)

		itemsVal, ok := battrs["items"]
		if !ok {
			continue
		}
		items, err := object(itemsVal, where+".items")
		if err != nil {
			return nil, err
		}
		for _, name := range sortedKeys(items) {
			it, err := l.translateItem(ctx, fmt.Sprintf("%s.items[%q]", where, name), name, items[name])
			if err != nil {
				return nil, err
			}
			build.AddItem(it)
		}
	}
	return model, nil
}

func (l *SimplifiedLoader) translateItem(ctx context.Context, where, name string, v cty.Value) (*config.Item, error) {
	attrs, err := object(v, where)
	if err != nil {
		return nil, err
	}
	ignoreUnknown(ctx, attrs, where,
		"functors", "builder", "runner", "analysis", "analyzer", "cubes",
		"flavors", "flavours", "args", "submitter", "batch_script")

	str := func(key string) (string, error) {
		val, ok := attrs[key]
		if !ok {
			return "", nil
		}
		return looseString(val, where+"."+key)
	}

	it := &config.Item{Name: name}
	var base string
	fields := []struct {
		key string
		dst *string
	}{
		{"functors", &base},
		{"builder", &it.BuilderDir},
		{"runner", &it.RunnerDir},
		{"analysis", &it.AnalysisDir},
		{"analyzer", &it.AnalyzerDir},
		{"cubes", &it.CubesDir},
		{"submitter", &it.SubmitterDir},
		{"batch_script", &it.BatchScript},
	}
	for _, f := range fields {
		if *f.dst, err = str(f.key); err != nil {
			return nil, err
		}
	}

	for _, dst := range []*string{&it.BuilderDir, &it.RunnerDir, &it.AnalysisDir} {
		if *dst == "" {
			*dst = base
		}
	}

	if it.Flavors, err = flavorList(attrs, where); err != nil {
		return nil, err
	}
	if val, ok := attrs["args"]; ok {
		if it.Args, err = looseStrings(val, where+".args"); err != nil {
			return nil, err
		}
	}
	return it, nil
}

// flavorList accepts both the "flavors" and the "flavours" spelling.
func flavorList(attrs map[string]cty.Value, where string) ([]string, error) {
	for _, key := range []string{"flavors", "flavours"} {
		if val, ok := attrs[key]; ok {
			return looseStrings(val, where+"."+key)
		}
	}
	return nil, nil
}

func ignoreUnknown(ctx context.Context, attrs map[string]cty.Value, where string, known ...string) {
	if err := checkKeys(attrs, where, known...); err != nil {
		ctxlog.FromContext(ctx).Debug("Ignoring configuration key.", "reason", err.Error())
	}
}
