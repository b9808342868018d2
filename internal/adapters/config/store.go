// Package config persists launcher profiles as YAML.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileProfileStore implements ports.ProfileStore on YAML files.
type FileProfileStore struct{}

// NewProfileStore creates a FileProfileStore.
func NewProfileStore() *FileProfileStore {
	return &FileProfileStore{}
}

// Load reads the profile at path. A missing file yields the default profile.
func (s *FileProfileStore) Load(path string) (domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return domain.Profile{}, errors.Join(domain.ErrProfileReadFailed, zerr.With(err, "path", path))
	}

	var file ProfileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Profile{}, errors.Join(domain.ErrProfileParseFailed, zerr.With(err, "path", path))
	}

	p, err := decode(&file)
	if err != nil {
		return domain.Profile{}, errors.Join(domain.ErrProfileParseFailed, zerr.With(err, "path", path))
	}
	return p, nil
}

// Save writes profile to path, creating parent directories as needed.
func (s *FileProfileStore) Save(path string, profile domain.Profile) error {
	data, err := yaml.Marshal(encode(&profile))
	if err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}

	// Write next to the target and rename so a crash never leaves half a profile.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".profile-*.yaml")
	if err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Join(domain.ErrProfileWriteFailed, zerr.With(err, "path", path))
	}
	return nil
}

func encode(p *domain.Profile) ProfileFile {
	file := ProfileFile{
		Version: SchemaVersion,
		WorkDir: p.WorkingDir,
		Java:    p.JavaPath,
		Args:    make([]ArgumentDTO, 0, p.Args.Len()),
	}

	for _, arg := range p.Args.Args() {
		dto := ArgumentDTO{Kind: arg.Kind().String()}
		switch a := arg.(type) {
		case domain.Rev:
			dto.Value = string(a)
		case domain.OutputDir:
			dto.Value = string(a)
		case domain.FinalName:
			dto.Value = string(a)
		case domain.PullRequest:
			dto.Repo = a.Repository
			dto.ID = a.ID
		case domain.Compile:
			dto.Targets = make([]string, len(a))
			for i, target := range a {
				dto.Targets[i] = target.String()
			}
		}
		file.Args = append(file.Args, dto)
	}
	return file
}

func decode(file *ProfileFile) (domain.Profile, error) {
	p := domain.Profile{
		WorkingDir: file.WorkDir,
		JavaPath:   file.Java,
	}
	if p.WorkingDir == "" {
		p.WorkingDir = domain.DefaultWorkDir()
	}
	if p.JavaPath == "" {
		p.JavaPath = domain.DefaultJava
	}

	for i, dto := range file.Args {
		arg, err := decodeArgument(dto)
		if err != nil {
			return domain.Profile{}, zerr.With(err, "entry", i)
		}
		p.Args.Set(arg)
	}
	return p, nil
}

func decodeArgument(dto ArgumentDTO) (domain.Argument, error) {
	kind, err := domain.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	if kind.IsBoolean() {
		return domain.Flag(kind), nil
	}

	switch kind {
	case domain.KindRev:
		return domain.Rev(dto.Value), nil
	case domain.KindOutputDir:
		return domain.OutputDir(dto.Value), nil
	case domain.KindFinalName:
		return domain.FinalName(dto.Value), nil
	case domain.KindPullRequest:
		return domain.PullRequest{Repository: dto.Repo, ID: dto.ID}, nil
	case domain.KindCompile:
		return domain.Compile(domain.ParseCompilationTargets(dto.Targets)), nil
	default:
		return nil, zerr.With(domain.ErrUnknownArgument, "argument", dto.Kind)
	}
}
