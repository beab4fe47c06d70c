package app

import (
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/pirago/internal/config"
	"github.com/specialistvlad/pirago/internal/fsutil"
	"github.com/specialistvlad/pirago/internal/hcl"
	"github.com/specialistvlad/pirago/internal/jsonconf"
)

// selectLoader picks the configuration loader for format. In auto mode a
// directory or a .hcl file selects the HCL loader and a .json file is
// sniffed for its layout.
func selectLoader(format, path string) (config.Loader, error) {
	switch format {
	case FormatStandard:
		return jsonconf.NewLoader(), nil
	case FormatSimplified:
		return jsonconf.NewSimplifiedLoader(), nil
	case FormatHCL:
		return hcl.NewLoader(), nil
	case FormatAuto, "":
	default:
		return nil, fmt.Errorf("unknown configuration format %q", format)
	}

	if fsutil.IsDir(path) {
		return hcl.NewLoader(), nil
	}
	switch filepath.Ext(path) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".json":
		return jsonconf.Detect(path)
	}
	return nil, fmt.Errorf("cannot detect configuration format of %s: use -format", path)
}
