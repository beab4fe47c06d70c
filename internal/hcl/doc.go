// Package hcl provides the HCL implementation of the config.Loader
// interface. It parses one file or a directory of .hcl files, evaluates
// item attributes against a small evaluation context, and translates the
// decoded blocks into a config.Model.
//
//	description = "nightly"
//
//	build "/home/user/top_dir" {
//	  flavors = ["vanilla"]
//
//	  item "item01" {
//	    builder = "/functors/${item.name}"
//	    runner  = "/runners/${item.name}"
//	    analysis {
//	      functors = "/analysis"
//	      cubes    = "${build.dir}/cubes"
//	      analyzer = env.ANALYZER_DIR
//	    }
//	    args = ["size", "1024"]
//	  }
//	}
package hcl
