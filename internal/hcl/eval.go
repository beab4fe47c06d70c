package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// baseEvalContext exposes the environment as `env` together with a few
// string functions. It is shared by every block of a load.
func baseEvalContext(environ []string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envValue(environ),
		},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"join":   stdlib.JoinFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

// itemEvalContext adds `build.dir` and `item.name` for item attributes.
func itemEvalContext(parent *hcl.EvalContext, buildDir, itemName string) *hcl.EvalContext {
	child := parent.NewChild()
	child.Variables = map[string]cty.Value{
		"build": cty.ObjectVal(map[string]cty.Value{
			"dir": cty.StringVal(buildDir),
		}),
		"item": cty.ObjectVal(map[string]cty.Value{
			"name": cty.StringVal(itemName),
		}),
	}
	return child
}

func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}

func defaultEnviron() []string {
	return os.Environ()
}
