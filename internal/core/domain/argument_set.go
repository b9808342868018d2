package domain

import "slices"

// ArgumentSet is the ordered configuration for one BuildTools invocation.
// Insertion order is token order. Kinds other than the boolean ones occur at most once.
//
// An ArgumentSet is not safe for concurrent mutation; settings.Manager serializes access.
type ArgumentSet struct {
	args []Argument
}

// NewArgumentSet builds a set by applying Set to every argument in order.
func NewArgumentSet(args ...Argument) ArgumentSet {
	var s ArgumentSet
	for _, arg := range args {
		s.Set(arg)
	}
	return s
}

// Args returns a deep copy of the arguments in order.
func (s *ArgumentSet) Args() []Argument {
	return s.Clone().args
}

// Len returns the number of arguments.
func (s *ArgumentSet) Len() int {
	return len(s.args)
}

// Clone returns an independent copy of the set.
func (s *ArgumentSet) Clone() ArgumentSet {
	if len(s.args) == 0 {
		return ArgumentSet{}
	}
	out := ArgumentSet{args: make([]Argument, len(s.args))}
	for i, arg := range s.args {
		if c, ok := arg.(Compile); ok {
			arg = slices.Clone(c)
		}
		out.args[i] = arg
	}
	return out
}

// Count returns how many arguments of the kind are present.
func (s *ArgumentSet) Count(kind Kind) int {
	n := 0
	for _, arg := range s.args {
		if arg.Kind() == kind {
			n++
		}
	}
	return n
}

// Has reports whether an argument of the kind is present.
func (s *ArgumentSet) Has(kind Kind) bool {
	return s.Count(kind) > 0
}

// Get returns the argument of the kind, if present.
func (s *ArgumentSet) Get(kind Kind) (Argument, bool) {
	for _, arg := range s.args {
		if arg.Kind() == kind {
			return arg, true
		}
	}
	return nil, false
}

// SetFlag enables or disables a boolean argument.
// Enabling appends the flag only when it is absent; disabling removes every occurrence.
func (s *ArgumentSet) SetFlag(flag Flag, enabled bool) {
	if !enabled {
		s.Remove(flag.Kind())
		return
	}
	if !s.Has(flag.Kind()) {
		s.args = append(s.args, flag)
	}
}

// Set removes every argument of the same kind, then appends arg.
// A Flag is treated as SetFlag(flag, true) so booleans keep their position once enabled.
func (s *ArgumentSet) Set(arg Argument) {
	if flag, ok := arg.(Flag); ok {
		s.SetFlag(flag, true)
		return
	}
	s.Remove(arg.Kind())
	s.args = append(s.args, arg)
}

// SetCompileTargets parses raw target names leniently and replaces the Compile argument.
func (s *ArgumentSet) SetCompileTargets(raw []string) {
	s.Set(Compile(ParseCompilationTargets(raw)))
}

// Remove drops every argument of the kind.
func (s *ArgumentSet) Remove(kind Kind) {
	s.args = slices.DeleteFunc(s.args, func(arg Argument) bool {
		return arg.Kind() == kind
	})
}

// Tokens returns the command-line tokens of every argument in order.
func (s *ArgumentSet) Tokens() []string {
	var tokens []string
	for _, arg := range s.args {
		tokens = append(tokens, arg.Tokens()...)
	}
	return tokens
}
