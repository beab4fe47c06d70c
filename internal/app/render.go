package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var resolutionType = cty.Object(map[string]cty.Type{
	"build":  cty.String,
	"item":   cty.String,
	"flavor": cty.String,
	"role":   cty.String,
	"dir":    cty.String,
	"name":   cty.String,
	"file":   cty.String,
})

func render(w io.Writer, format string, rs []Resolution) error {
	if format == "json" {
		return renderJSON(w, rs)
	}
	return renderText(w, rs)
}

func renderText(w io.Writer, rs []Resolution) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BUILD\tITEM\tFLAVOR\tROLE\tFILE")
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Target.Build, r.Target.Item, r.Target.Flavor, r.Functor.Role, r.Functor.File)
	}
	return tw.Flush()
}

// renderJSON writes the resolutions as a JSON array of objects.
func renderJSON(w io.Writer, rs []Resolution) error {
	vals := make([]cty.Value, 0, len(rs))
	for _, r := range rs {
		vals = append(vals, cty.ObjectVal(map[string]cty.Value{
			"build":  cty.StringVal(r.Target.Build),
			"item":   cty.StringVal(r.Target.Item),
			"flavor": cty.StringVal(r.Target.Flavor),
			"role":   cty.StringVal(r.Functor.Role.String()),
			"dir":    cty.StringVal(r.Functor.Dir),
			"name":   cty.StringVal(r.Functor.Name),
			"file":   cty.StringVal(r.Functor.File),
		}))
	}

	list := cty.ListValEmpty(resolutionType)
	if len(vals) > 0 {
		list = cty.ListVal(vals)
	}
	buf, err := ctyjson.Marshal(list, list.Type())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(buf))
	return err
}
