package functor

import (
	"fmt"
	"strings"
)

// Role identifies what a functor does for an item.
type Role int

const (
	RoleBuild Role = iota
	RoleClean
	RoleRun
	RoleAnalyze
)

// Roles lists every role in resolution order.
var Roles = []Role{RoleBuild, RoleClean, RoleRun, RoleAnalyze}

func (r Role) String() string {
	switch r {
	case RoleBuild:
		return "build"
	case RoleClean:
		return "clean"
	case RoleRun:
		return "run"
	case RoleAnalyze:
		return "analyze"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// prefix is prepended to "<item>_<flavor>" to form the functor name.
func (r Role) prefix() string {
	switch r {
	case RoleClean:
		return "clean_"
	case RoleRun:
		return "runner_"
	case RoleAnalyze:
		return "analyse_"
	default:
		return ""
	}
}

// ParseRole accepts the role names printed by String, plus the
// "builder"/"cleaner"/"runner"/"analyzer" forms used for functor kinds.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "build", "builder":
		return RoleBuild, nil
	case "clean", "cleaner":
		return RoleClean, nil
	case "run", "runner":
		return RoleRun, nil
	case "analyze", "analyse", "analyzer", "analyser":
		return RoleAnalyze, nil
	}
	return 0, fmt.Errorf("unknown functor role %q", s)
}
