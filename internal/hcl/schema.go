package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level content of a file.
type fileRoot struct {
	Description string        `hcl:"description,optional"`
	Builds      []*buildBlock `hcl:"build,block"`
}

type buildBlock struct {
	Dir     string       `hcl:"dir,label"`
	Flavors []string     `hcl:"flavors,optional"`
	Items   []*itemBlock `hcl:"item,block"`
}

// itemBlock keeps its body undecoded until the per-item evaluation context
// is available.
type itemBlock struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type itemBody struct {
	Flavors     []string       `hcl:"flavors,optional"`
	Builder     string         `hcl:"builder"`
	Runner      string         `hcl:"runner"`
	Submitter   string         `hcl:"submitter,optional"`
	BatchScript string         `hcl:"batch_script,optional"`
	Args        []string       `hcl:"args,optional"`
	Analysis    *analysisBlock `hcl:"analysis,block"`
}

type analysisBlock struct {
	Functors string `hcl:"functors"`
	Cubes    string `hcl:"cubes,optional"`
	Analyzer string `hcl:"analyzer,optional"`
}
