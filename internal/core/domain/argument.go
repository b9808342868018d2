package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Kind identifies one flag family of BuildTools.
type Kind int

// Boolean kinds come first; KindRev and later carry a payload.
const (
	KindRemapped Kind = iota
	KindDisableCert
	KindDisableJavaCheck
	KindDontUpdate
	KindSkipCompile
	KindGenerateSource
	KindGenerateDocs
	KindDev
	KindExperimental
	KindCompileIfChanged
	KindNoGui
	KindRev
	KindOutputDir
	KindFinalName
	KindPullRequest
	KindCompile
)

// kindSpec maps a kind to its stable name and the literal flag BuildTools expects.
type kindSpec struct {
	name string
	flag string
}

var kindSpecs = map[Kind]kindSpec{
	KindRemapped:         {name: "remapped", flag: "--remapped"},
	KindDisableCert:      {name: "disable-cert", flag: "--disable-cert"},
	KindDisableJavaCheck: {name: "disable-java-check", flag: "--disable-java-check"},
	KindDontUpdate:       {name: "dont-update", flag: "--dont-update"},
	KindSkipCompile:      {name: "skip-compile", flag: "--skip-compile"},
	KindGenerateSource:   {name: "generate-source", flag: "--generate-source"},
	KindGenerateDocs:     {name: "generate-docs", flag: "--generate-docs"},
	KindDev:              {name: "dev", flag: "--dev"},
	KindExperimental:     {name: "experimental", flag: "--experimental"},
	KindCompileIfChanged: {name: "compile-if-changed", flag: "--compile-if-changed"},
	KindNoGui:            {name: "nogui", flag: "--nogui"},
	KindRev:              {name: "rev", flag: "--rev"},
	KindOutputDir:        {name: "output-dir", flag: "--output-dir"},
	KindFinalName:        {name: "final-name", flag: "--final-name"},
	KindPullRequest:      {name: "pull-request", flag: "--pull-request"},
	KindCompile:          {name: "compile", flag: "--compile"},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindSpecs))
	for k := KindRemapped; k <= KindCompile; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// BooleanKinds returns the kinds that carry no payload.
func BooleanKinds() []Kind {
	kinds := make([]Kind, 0, int(KindNoGui)+1)
	for k := KindRemapped; k <= KindNoGui; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the stable name of the kind, as used on the command line and in profiles.
func (k Kind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Flag returns the literal flag spelling BuildTools expects for the kind.
func (k Kind) Flag() string {
	return kindSpecs[k].flag
}

// IsBoolean reports whether presence alone enables the kind.
func (k Kind) IsBoolean() bool {
	return k >= KindRemapped && k <= KindNoGui
}

// ParseKind resolves a stable kind name. A leading "--" is accepted.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimPrefix(name, "--")
	for k, spec := range kindSpecs {
		if spec.name == name {
			return k, nil
		}
	}
	return 0, zerr.With(ErrUnknownArgument, "argument", name)
}

// Argument is one BuildTools flag together with its payload.
// The set of implementations is closed to this package.
type Argument interface {
	// Kind returns the flag family of the argument.
	Kind() Kind
	// Tokens returns the discrete command-line tokens for the argument.
	Tokens() []string

	isArgument()
}

// Render joins the tokens of an argument with single spaces.
func Render(arg Argument) string {
	return strings.Join(arg.Tokens(), " ")
}

// Flag is a boolean argument: present means enabled.
type Flag Kind

// Boolean arguments.
const (
	Remapped         = Flag(KindRemapped)
	DisableCert      = Flag(KindDisableCert)
	DisableJavaCheck = Flag(KindDisableJavaCheck)
	DontUpdate       = Flag(KindDontUpdate)
	SkipCompile      = Flag(KindSkipCompile)
	GenerateSource   = Flag(KindGenerateSource)
	GenerateDocs     = Flag(KindGenerateDocs)
	Dev              = Flag(KindDev)
	Experimental     = Flag(KindExperimental)
	CompileIfChanged = Flag(KindCompileIfChanged)
	NoGui            = Flag(KindNoGui)
)

// Kind implements Argument.
func (f Flag) Kind() Kind { return Kind(f) }

// Tokens implements Argument.
func (f Flag) Tokens() []string { return []string{Kind(f).Flag()} }

func (Flag) isArgument() {}

// Rev selects the Minecraft revision to build.
type Rev string

// Kind implements Argument.
func (Rev) Kind() Kind { return KindRev }

// Tokens implements Argument.
func (r Rev) Tokens() []string { return []string{KindRev.Flag(), string(r)} }

func (Rev) isArgument() {}

// OutputDir is the directory BuildTools writes finished jars to.
type OutputDir string

// Kind implements Argument.
func (OutputDir) Kind() Kind { return KindOutputDir }

// Tokens implements Argument.
func (o OutputDir) Tokens() []string { return []string{KindOutputDir.Flag(), string(o)} }

func (OutputDir) isArgument() {}

// FinalName overrides the file name of the produced jar.
type FinalName string

// Kind implements Argument.
func (FinalName) Kind() Kind { return KindFinalName }

// Tokens implements Argument.
func (n FinalName) Tokens() []string { return []string{KindFinalName.Flag(), string(n)} }

func (FinalName) isArgument() {}

// PullRequest builds with a pull request applied.
type PullRequest struct {
	Repository string
	ID         uint16
}

// Kind implements Argument.
func (PullRequest) Kind() Kind { return KindPullRequest }

// Tokens implements Argument.
func (p PullRequest) Tokens() []string {
	return []string{KindPullRequest.Flag(), p.Repository + ":" + strconv.FormatUint(uint64(p.ID), 10)}
}

func (PullRequest) isArgument() {}

// ParsePullRequestID parses a pull request number into its 16-bit form.
func ParsePullRequestID(s string) (uint16, error) {
	id, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, ErrInvalidPullRequestID.Error()), "id", s)
	}
	return uint16(id), nil
}

// Compile selects which server jars BuildTools compiles, in order.
type Compile []CompilationTarget

// Kind implements Argument.
func (Compile) Kind() Kind { return KindCompile }

// Tokens implements Argument.
// An empty selection compiles nothing, which BuildTools spells NONE.
func (c Compile) Tokens() []string {
	if len(c) == 0 {
		return []string{KindCompile.Flag(), TargetNone.String()}
	}
	names := make([]string, len(c))
	for i, t := range c {
		names[i] = t.String()
	}
	return []string{KindCompile.Flag(), strings.Join(names, ",")}
}

func (Compile) isArgument() {}
