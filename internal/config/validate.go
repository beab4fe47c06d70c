package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/hashicorp/go-multierror"
)

// Validate implements Configuration. It collects every problem instead of
// stopping at the first one, and returns a *ValidityError or nil.
func (m *Model) Validate() error {
	var result *multierror.Error

	if m.Empty() {
		result = multierror.Append(result, errors.New("no build directories configured"))
		return &ValidityError{Err: result}
	}

	for _, dir := range sortedKeys(m.Builds) {
		b := m.Builds[dir]
		if !path.IsAbs(dir) {
			result = multierror.Append(result, fmt.Errorf("build %q: directory must be absolute", dir))
		}
		if len(b.Items) == 0 {
			result = multierror.Append(result, fmt.Errorf("build %q: no items configured", dir))
		}
		for _, name := range sortedKeys(b.Items) {
			for _, err := range validateItem(b, b.Items[name]) {
				result = multierror.Append(result, fmt.Errorf("build %q: item %q: %w", dir, name, err))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return &ValidityError{Err: err}
	}
	return nil
}

func validateItem(b *Build, it *Item) []error {
	var errs []error
	required := []struct {
		key string
		dir string
	}{
		{"builder", it.BuilderDir},
		{"analysis", it.AnalysisDir},
		{"runner", it.RunnerDir},
	}
	for _, r := range required {
		if r.dir == "" {
			errs = append(errs, fmt.Errorf("%s directory: %w", r.key, ErrMissingDirectory))
		}
	}

	flavors := it.Flavors
	if len(flavors) == 0 {
		flavors = b.Flavors
	}
	if len(flavors) == 0 {
		errs = append(errs, errors.New("no flavors configured"))
	}
	seen := make(map[string]struct{}, len(flavors))
	for _, fl := range flavors {
		if fl == "" {
			errs = append(errs, errors.New("empty flavor name"))
			continue
		}
		if _, dup := seen[fl]; dup {
			errs = append(errs, fmt.Errorf("duplicate flavor %q", fl))
		}
		seen[fl] = struct{}{}
	}
	return errs
}
