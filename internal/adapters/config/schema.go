package config

// SchemaVersion is written to every profile file.
const SchemaVersion = "1"

// ProfileFile is the on-disk shape of a profile.
type ProfileFile struct {
	Version string        `yaml:"version"`
	WorkDir string        `yaml:"workdir,omitempty"`
	Java    string        `yaml:"java,omitempty"`
	Args    []ArgumentDTO `yaml:"args"`
}

// ArgumentDTO is one argument entry. Only the fields its kind uses are set.
type ArgumentDTO struct {
	Kind    string   `yaml:"kind"`
	Value   string   `yaml:"value,omitempty"`
	Repo    string   `yaml:"repo,omitempty"`
	ID      uint16   `yaml:"id,omitempty"`
	Targets []string `yaml:"targets,omitempty"`
}
