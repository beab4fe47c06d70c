package functor

// ScriptExtension is appended to a functor name to form its file name.
const ScriptExtension = ".py"

// Functor describes one resolved functor script.
type Functor struct {
	Role Role
	// Dir is the directory the script lives in.
	Dir string
	// Name is the script name without extension.
	Name string
	// File is Dir + "/" + Name + ScriptExtension.
	File string
}

// Set holds the four functors of one item/flavor pair.
type Set struct {
	Build   Functor
	Clean   Functor
	Run     Functor
	Analyze Functor
}

// Get returns the functor for role, or the zero Functor for an unknown role.
func (s Set) Get(role Role) Functor {
	if f := s.slot(role); f != nil {
		return *f
	}
	return Functor{}
}

func (s *Set) slot(role Role) *Functor {
	switch role {
	case RoleBuild:
		return &s.Build
	case RoleClean:
		return &s.Clean
	case RoleRun:
		return &s.Run
	case RoleAnalyze:
		return &s.Analyze
	}
	return nil
}

// Name derives the functor name for role. It depends only on its arguments.
func Name(role Role, item, flavor string) string {
	return role.prefix() + item + "_" + flavor
}

// FileName is Name plus ScriptExtension.
func FileName(role Role, item, flavor string) string {
	return Name(role, item, flavor) + ScriptExtension
}

// JoinFile combines a functor directory and name into the script path.
// Directories coming out of config.Model are already cleaned, so a plain
// separator is enough.
func JoinFile(dir, name string) string {
	return dir + "/" + name + ScriptExtension
}
