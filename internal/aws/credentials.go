package aws

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// PathEnvVar overrides the location of the credentials file.
const PathEnvVar = "AWS_PROFILE_SWITCHER_PATH"

// ErrMalformedConfig is returned when the credentials file cannot be parsed.
var ErrMalformedConfig = errors.New("malformed credentials file")

// ExportedVars are the only profile keys that are exported, matched case-insensitively.
var ExportedVars = []string{
	"AWS_SECRET_ACCESS_KEY",
	"AWS_ACCESS_KEY_ID",
	"AWS_SESSION_TOKEN",
	"AWS_SECURITY_TOKEN",
}

// Variable is a single key/value pair of a profile section.
type Variable struct {
	Name  string
	Value string
}

// ExportLine renders the variable as a shell export statement.
func (v Variable) ExportLine() string {
	return fmt.Sprintf("export %s=%s", strings.ToUpper(v.Name), v.Value)
}

// Profile is a named section of the credentials file.
type Profile struct {
	Name string
	Vars []Variable
}

// Exports returns the recognised variables of the profile in file order,
// with upper-cased names.
func (p Profile) Exports() []Variable {
	var out []Variable
	for _, v := range p.Vars {
		if IsExportedVar(v.Name) {
			out = append(out, Variable{Name: strings.ToUpper(v.Name), Value: v.Value})
		}
	}
	return out
}

// HasSessionToken reports whether the profile holds temporary credentials.
func (p Profile) HasSessionToken() bool {
	for _, v := range p.Exports() {
		if v.Name == "AWS_SESSION_TOKEN" || v.Name == "AWS_SECURITY_TOKEN" {
			return true
		}
	}
	return false
}

// IsExportedVar checks if a key is one of ExportedVars, ignoring case
func IsExportedVar(name string) bool {
	for _, known := range ExportedVars {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

// ProfileConfig holds every profile of a credentials file. It is read-only
// once loaded.
type ProfileConfig struct {
	Path string
	// Found is false when the file was missing or could not be read.
	Found    bool
	profiles []Profile
	index    map[string]int
}

// GetCredentialsPath returns the path to the credentials file.
func GetCredentialsPath() (string, error) {
	if path := os.Getenv(PathEnvVar); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "credentials"), nil
}

// LoadProfiles reads the credentials file at path. A missing or unreadable
// file yields an empty config; a file that cannot be parsed is an error.
func LoadProfiles(path string) (*ProfileConfig, error) {
	cfg := &ProfileConfig{Path: path, index: map[string]int{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}
	cfg.Found = true

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedConfig, path, err)
	}
	if err := checkSections(file, data); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrMalformedConfig, path, err)
	}

	defaults := file.Section(ini.DefaultSection).Keys()
	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		cfg.index[name] = len(cfg.profiles)
		cfg.profiles = append(cfg.profiles, Profile{
			Name: name,
			Vars: mergeKeys(defaults, section.Keys()),
		})
	}

	return cfg, nil
}

// checkSections rejects what ini accepts silently: keys before the first
// section header and a section declared twice.
func checkSections(file *ini.File, data []byte) error {
	seen := map[string]bool{}
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		end := strings.Index(line, "]")
		if end < 0 {
			continue
		}
		name := strings.TrimSpace(line[1:end])
		if seen[name] {
			return fmt.Errorf("line %d: section %q is declared more than once", i+1, name)
		}
		seen[name] = true
	}

	if !seen[ini.DefaultSection] && len(file.Section(ini.DefaultSection).Keys()) > 0 {
		return errors.New("keys found before the first section header")
	}
	return nil
}

// mergeKeys lays the section keys over the DEFAULT keys. Overridden defaults
// keep their position.
func mergeKeys(defaults, own []*ini.Key) []Variable {
	vars := make([]Variable, 0, len(defaults)+len(own))
	pos := make(map[string]int, len(defaults)+len(own))
	for _, keys := range [][]*ini.Key{defaults, own} {
		for _, k := range keys {
			if i, ok := pos[k.Name()]; ok {
				vars[i].Value = k.Value()
				continue
			}
			pos[k.Name()] = len(vars)
			vars = append(vars, Variable{Name: k.Name(), Value: k.Value()})
		}
	}
	return vars
}

// Names returns the profile names in file order.
func (c *ProfileConfig) Names() []string {
	names := make([]string, len(c.profiles))
	for i, p := range c.profiles {
		names[i] = p.Name
	}
	return names
}

// Profiles returns all profiles in file order.
func (c *ProfileConfig) Profiles() []Profile {
	return append([]Profile(nil), c.profiles...)
}

// Has reports whether name is exactly a profile name.
func (c *ProfileConfig) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Get returns the named profile.
func (c *ProfileConfig) Get(name string) (Profile, bool) {
	i, ok := c.index[name]
	if !ok {
		return Profile{}, false
	}
	return c.profiles[i], true
}

// Len returns the number of profiles.
func (c *ProfileConfig) Len() int {
	return len(c.profiles)
}
