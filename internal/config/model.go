package config

import (
	"errors"
	"path"
	"slices"
	"sort"
)

// Model is the unified, format-agnostic representation of a loaded
// configuration: the build directories, the items built in each of them,
// and the functor directories of every item.
type Model struct {
	Description string
	Builds      map[string]*Build
}

// Build is one build directory together with the items built inside it.
type Build struct {
	Dir string
	// Flavors applies to every item that does not declare its own.
	Flavors []string
	Items   map[string]*Item
}

// Item is a single benchmark target and the directories of its functors.
type Item struct {
	Name    string
	Flavors []string

	BuilderDir  string
	AnalysisDir string
	CubesDir    string
	AnalyzerDir string
	RunnerDir   string

	SubmitterDir string
	BatchScript  string
	Args         []string
}

// Target is one resolvable (build, item, flavor) combination.
type Target struct {
	Build  string
	Item   string
	Flavor string
}

// NewModel returns an empty model ready to be populated by a loader.
func NewModel() *Model {
	return &Model{Builds: make(map[string]*Build)}
}

// AddBuild registers a build under its cleaned directory and returns it.
// An existing build for the same directory is returned unchanged.
func (m *Model) AddBuild(dir string, flavors []string) *Build {
	dir = CleanDir(dir)
	if b, ok := m.Builds[dir]; ok {
		return b
	}
	b := &Build{Dir: dir, Flavors: flavors, Items: make(map[string]*Item)}
	m.Builds[dir] = b
	return b
}

// AddItem stores the item in the build, cleaning all of its directories.
func (b *Build) AddItem(it *Item) {
	it.BuilderDir = CleanDir(it.BuilderDir)
	it.AnalysisDir = CleanDir(it.AnalysisDir)
	it.CubesDir = CleanDir(it.CubesDir)
	it.AnalyzerDir = CleanDir(it.AnalyzerDir)
	it.RunnerDir = CleanDir(it.RunnerDir)
	it.SubmitterDir = CleanDir(it.SubmitterDir)
	b.Items[it.Name] = it
}

// CleanDir normalises a configured directory. Empty stays empty so that
// missing values are still detectable.
func CleanDir(dir string) string {
	if dir == "" {
		return ""
	}
	return path.Clean(dir)
}

// Empty reports whether the model holds no builds at all.
func (m *Model) Empty() bool {
	return m == nil || len(m.Builds) == 0
}

// Item looks up an item by build directory and name.
func (m *Model) Item(build, item string) (*Item, error) {
	if m == nil {
		return nil, &LookupError{Build: build, Item: item, Key: "item", Err: ErrUnknownBuild}
	}
	b, ok := m.Builds[CleanDir(build)]
	if !ok {
		return nil, &LookupError{Build: build, Item: item, Key: "item", Err: ErrUnknownBuild}
	}
	it, ok := b.Items[item]
	if !ok {
		return nil, &LookupError{Build: build, Item: item, Key: "item", Err: ErrUnknownItem}
	}
	return it, nil
}

func (m *Model) dir(build, item, key string, pick func(*Item) string) (string, error) {
	it, err := m.Item(build, item)
	if err != nil {
		var lerr *LookupError
		if errors.As(err, &lerr) {
			lerr.Key = key
		}
		return "", err
	}
	d := pick(it)
	if d == "" {
		return "", &LookupError{Build: build, Item: item, Key: key, Err: ErrMissingDirectory}
	}
	return d, nil
}

// BuilderDir implements Configuration.
func (m *Model) BuilderDir(build, item string) (string, error) {
	return m.dir(build, item, "builder", func(it *Item) string { return it.BuilderDir })
}

// AnalysisDir implements Configuration.
func (m *Model) AnalysisDir(build, item string) (string, error) {
	return m.dir(build, item, "analysis", func(it *Item) string { return it.AnalysisDir })
}

// RunnerDir implements Configuration.
func (m *Model) RunnerDir(build, item string) (string, error) {
	return m.dir(build, item, "runner", func(it *Item) string { return it.RunnerDir })
}

// CubesDir returns the directory the analysis results are written to.
func (m *Model) CubesDir(build, item string) (string, error) {
	return m.dir(build, item, "cubes", func(it *Item) string { return it.CubesDir })
}

// AnalyzerDir returns the directory of the analyzer tool.
func (m *Model) AnalyzerDir(build, item string) (string, error) {
	return m.dir(build, item, "analyzer", func(it *Item) string { return it.AnalyzerDir })
}

// Args returns the run arguments of an item.
func (m *Model) Args(build, item string) ([]string, error) {
	it, err := m.Item(build, item)
	if err != nil {
		return nil, err
	}
	return slices.Clone(it.Args), nil
}

// Flavors implements Configuration. Item flavors take precedence over the
// flavors declared on the build.
func (m *Model) Flavors(build, item string) ([]string, error) {
	it, err := m.Item(build, item)
	if err != nil {
		var lerr *LookupError
		if errors.As(err, &lerr) {
			lerr.Key = "flavors"
		}
		return nil, err
	}
	if len(it.Flavors) > 0 {
		return slices.Clone(it.Flavors), nil
	}
	return slices.Clone(m.Builds[CleanDir(build)].Flavors), nil
}

// Targets enumerates every (build, item, flavor) combination in a stable
// order: builds, then items, then flavors as declared.
func (m *Model) Targets() []Target {
	if m == nil {
		return nil
	}
	var out []Target
	for _, dir := range sortedKeys(m.Builds) {
		b := m.Builds[dir]
		for _, name := range sortedKeys(b.Items) {
			flavors, _ := m.Flavors(dir, name)
			for _, fl := range flavors {
				out = append(out, Target{Build: dir, Item: name, Flavor: fl})
			}
		}
	}
	return out
}

// CheckFlavor returns a *LookupError unless flavor is configured for the
// item.
func CheckFlavor(c Configuration, build, item, flavor string) error {
	flavors, err := c.Flavors(build, item)
	if err != nil {
		return err
	}
	if !slices.Contains(flavors, flavor) {
		return &LookupError{Build: build, Item: item, Flavor: flavor, Key: "flavor", Err: ErrUnknownFlavor}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
