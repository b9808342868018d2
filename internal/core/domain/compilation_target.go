package domain

// CompilationTarget is a server flavour BuildTools can compile.
type CompilationTarget int

const (
	// TargetNone compiles nothing. It is also the fallback for unrecognised names.
	TargetNone CompilationTarget = iota
	// TargetCraftBukkit compiles CraftBukkit.
	TargetCraftBukkit
	// TargetSpigot compiles Spigot.
	TargetSpigot
)

var targetNames = map[CompilationTarget]string{
	TargetNone:        "NONE",
	TargetCraftBukkit: "CRAFTBUKKIT",
	TargetSpigot:      "SPIGOT",
}

// String returns the uppercase token BuildTools expects.
func (t CompilationTarget) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return targetNames[TargetNone]
}

// ParseCompilationTarget matches an uppercase target name exactly.
// Anything it does not recognise, including lowercase spellings, is TargetNone.
func ParseCompilationTarget(s string) CompilationTarget {
	for t, name := range targetNames {
		if name == s {
			return t
		}
	}
	return TargetNone
}

// ParseCompilationTargets parses every name with ParseCompilationTarget, keeping order.
func ParseCompilationTargets(raw []string) []CompilationTarget {
	targets := make([]CompilationTarget, len(raw))
	for i, s := range raw {
		targets[i] = ParseCompilationTarget(s)
	}
	return targets
}
