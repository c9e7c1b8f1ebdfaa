package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paularlott/cli"
	"gopkg.in/ini.v1"

	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

const (
	// FileName is the configuration file looked up next to the executable
	FileName = "hcloud.ini"

	SectionHCloud  = "hcloud"
	SectionFilters = "filters"
	GroupPrefix    = "groups:"

	KeyToken    = "token"
	KeyEndpoint = "endpoint"
)

var (
	ErrMissingSection = errors.New("missing required section")
	ErrMissingKey     = errors.New("missing required key")
	ErrReservedGroup  = errors.New("group name is reserved")
	ErrEmptyGroup     = errors.New("group name is empty")
)

// Error is a configuration error. It is always returned before any network
// access takes place.
type Error struct {
	Path    string
	Section string
	Key     string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("config %s: %v: %q in section [%s]", e.Path, e.Err, e.Key, e.Section)
	case e.Section != "":
		return fmt.Sprintf("config %s: %v: [%s]", e.Path, e.Err, e.Section)
	default:
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config holds the inventory configuration. It is read once and not
// modified afterwards.
type Config struct {
	Path     string
	Token    string
	Endpoint string // optional API endpoint override
	Filters  model.SelectorSet
	Groups   []model.GroupDefinition
}

// DefaultPath returns hcloud.ini in the directory of the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// GetFlags returns the flags shared by commands that read the configuration
func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the ini configuration file (default: hcloud.ini next to the executable)",
			EnvVars: []string{"HCLOUD_INVENTORY_CONFIG"},
			Global:  true,
		},
	}
}

// Load reads and validates the configuration file at path
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	return parse(f, path)
}

// LoadBytes parses configuration from memory, path is only used in errors
func LoadBytes(path string, data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return parse(f, path)
}

func parse(f *ini.File, path string) (*Config, error) {
	hcloud, err := f.GetSection(SectionHCloud)
	if err != nil {
		return nil, &Error{Path: path, Section: SectionHCloud, Err: ErrMissingSection}
	}

	settings := items(f, hcloud)
	token, ok := lookup(settings, KeyToken)
	if !ok {
		return nil, &Error{Path: path, Section: SectionHCloud, Key: KeyToken, Err: ErrMissingKey}
	}
	endpoint, _ := lookup(settings, KeyEndpoint)

	cfg := &Config{
		Path:     path,
		Token:    token,
		Endpoint: endpoint,
		Filters:  model.SelectorSet{},
		Groups:   []model.GroupDefinition{},
	}

	if filters, err := f.GetSection(SectionFilters); err == nil {
		cfg.Filters = items(f, filters)
	}

	for _, sec := range f.Sections() {
		if !strings.HasPrefix(sec.Name(), GroupPrefix) {
			continue
		}

		name := strings.TrimPrefix(sec.Name(), GroupPrefix)
		switch {
		case name == "":
			return nil, &Error{Path: path, Section: sec.Name(), Err: ErrEmptyGroup}
		case model.IsReservedGroupName(name):
			return nil, &Error{Path: path, Section: sec.Name(), Err: ErrReservedGroup}
		}

		cfg.Groups = append(cfg.Groups, model.GroupDefinition{
			Name:      name,
			Selectors: items(f, sec),
		})
	}

	return cfg, nil
}

// items returns the key/value pairs of a section with the DEFAULT section's
// values inherited, section values taking precedence
func items(f *ini.File, sec *ini.Section) model.SelectorSet {
	var set model.SelectorSet
	seen := make(map[string]int)

	add := func(key, value string) {
		if i, ok := seen[key]; ok {
			set[i].Value = value
			return
		}
		seen[key] = len(set)
		set = append(set, model.Selector{Key: key, Value: value})
	}

	if sec.Name() != ini.DefaultSection {
		for _, k := range f.Section(ini.DefaultSection).Keys() {
			add(k.Name(), k.Value())
		}
	}
	for _, k := range sec.Keys() {
		add(k.Name(), k.Value())
	}

	if set == nil {
		set = model.SelectorSet{}
	}
	return set
}

func lookup(set model.SelectorSet, key string) (string, bool) {
	for _, s := range set {
		if s.Key == key {
			return s.Value, true
		}
	}
	return "", false
}

// String returns a short description of the configuration, without secrets
func (c *Config) String() string {
	return fmt.Sprintf("%s (filters: %d, groups: %d)", c.Path, len(c.Filters), len(c.Groups))
}
