package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/btl/internal/adapters/config"
	"go.trai.ch/btl/internal/core/domain"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProfileStore_Load(t *testing.T) {
	path := writeProfile(t, `
version: "1"
workdir: /srv/buildtools
java: /opt/jdk/bin/java
args:
  - kind: nogui
  - kind: rev
    value: "1.21"
  - kind: final-name
    value: my server.jar
  - kind: pull-request
    repo: SPIGOT
    id: 42
  - kind: compile
    targets: [CRAFTBUKKIT, spigot]
  - kind: remapped
`)

	p, err := config.NewProfileStore().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/buildtools", p.WorkingDir)
	assert.Equal(t, "/opt/jdk/bin/java", p.JavaPath)
	assert.Equal(t, []string{
		"--nogui",
		"--rev", "1.21",
		"--final-name", "my server.jar",
		"--pull-request", "SPIGOT:42",
		"--compile", "CRAFTBUKKIT,NONE",
		"--remapped",
	}, p.Args.Tokens())
}

func TestProfileStore_Load_MissingFileIsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "profile.yaml")

	p, err := config.NewProfileStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), p)
}

func TestProfileStore_Load_Defaults(t *testing.T) {
	path := writeProfile(t, "version: \"1\"\nargs: []\n")

	p, err := config.NewProfileStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkDir(), p.WorkingDir)
	assert.Equal(t, domain.DefaultJava, p.JavaPath)
	assert.Equal(t, 0, p.Args.Len())
}

func TestProfileStore_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains []string
	}{
		{
			name:        "invalid yaml",
			content:     "args: [\n",
			errContains: []string{domain.ErrProfileParseFailed.Error()},
		},
		{
			name:        "unknown kind",
			content:     "args:\n  - kind: turbo\n",
			errContains: []string{domain.ErrProfileParseFailed.Error(), domain.ErrUnknownArgument.Error()},
		},
		{
			name:        "pull request id out of range",
			content:     "args:\n  - kind: pull-request\n    repo: SPIGOT\n    id: 70000\n",
			errContains: []string{domain.ErrProfileParseFailed.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewProfileStore().Load(writeProfile(t, tt.content))
			require.Error(t, err)
			for _, want := range tt.errContains {
				assert.ErrorContains(t, err, want)
			}
		})
	}
}

func TestProfileStore_Load_Unreadable(t *testing.T) {
	dir := t.TempDir()

	_, err := config.NewProfileStore().Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProfileReadFailed)
}

func TestProfileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "profile.yaml")
	store := config.NewProfileStore()

	want := domain.Profile{
		WorkingDir: "/srv/buildtools",
		JavaPath:   "java",
		Args: domain.NewArgumentSet(
			domain.Remapped,
			domain.Rev("1.21"),
			domain.OutputDir("/srv/out dir"),
			domain.PullRequest{Repository: "CRAFTBUKKIT", ID: 65535},
			domain.Compile{},
			domain.FinalName("spigot.jar"),
			domain.NoGui,
		),
	}

	require.NoError(t, store.Save(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kind: pull-request")
	assert.Contains(t, string(raw), "version: \"1\"")

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.WorkingDir, got.WorkingDir)
	assert.Equal(t, want.JavaPath, got.JavaPath)
	assert.Equal(t, want.Args.Tokens(), got.Args.Tokens())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestProfileStore_EmptyValuesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	store := config.NewProfileStore()

	want := domain.NewArgumentSet(
		domain.Rev(""),
		domain.FinalName(" padded.jar "),
		domain.PullRequest{Repository: "", ID: 3},
	)
	require.NoError(t, store.Save(path, domain.Profile{WorkingDir: "/work", JavaPath: "java", Args: want}))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Args(), got.Args.Args())
}
