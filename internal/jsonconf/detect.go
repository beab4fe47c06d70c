package jsonconf

import (
	"fmt"
	"os"

	"github.com/specialistvlad/pirago/internal/config"
)

// Variant names a JSON document layout.
type Variant string

const (
	VariantStandard   Variant = "standard"
	VariantSimplified Variant = "simplified"
)

// Sniff reports the layout of a JSON document from its top-level keys.
func Sniff(src []byte) (Variant, error) {
	root, err := decode(src)
	if err != nil {
		return "", err
	}
	attrs, err := object(root, "document")
	if err != nil {
		return "", err
	}
	if _, ok := attrs["builds"]; ok {
		return VariantStandard, nil
	}
	if _, ok := attrs["directories"]; ok {
		return VariantSimplified, nil
	}
	return "", fmt.Errorf("document: neither %q nor %q found at top level", "builds", "directories")
}

// LoaderFor returns the loader for a variant.
func LoaderFor(v Variant) (config.Loader, error) {
	switch v {
	case VariantStandard:
		return NewLoader(), nil
	case VariantSimplified:
		return NewSimplifiedLoader(), nil
	}
	return nil, fmt.Errorf("unknown JSON configuration variant %q", v)
}

// Detect reads the file at path and returns the loader matching its layout.
func Detect(path string) (config.Loader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	}
	v, err := Sniff(src)
	if err != nil {
		return nil, fmt.Errorf("failed to detect configuration layout of %s: %w", path, err)
	}
	return LoaderFor(v)
}
