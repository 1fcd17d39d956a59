// Package project loads the javaslice.toml configuration of a source tree
// and turns it into options for the code base index and the slicer.
package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dhamidi/javaslice/java/codebase"
	"github.com/dhamidi/javaslice/slice"
)

const FileName = "javaslice.toml"

type Config struct {
	Source  SourceConfig  `toml:"source"`
	Output  OutputConfig  `toml:"output"`
	Slice   SliceConfig   `toml:"slice"`
	Markers MarkersConfig `toml:"markers"`
}

type SourceConfig struct {
	// Roots are directories below the project root holding packages.
	// When empty they are detected from the directory layout.
	Roots            []string `toml:"roots" comment:"source directories relative to the project root"`
	Include          []string `toml:"include" comment:"glob patterns of files to index"`
	Exclude          []string `toml:"exclude" comment:"glob patterns of files to skip"`
	RespectGitignore bool     `toml:"respect_gitignore"`
}

type OutputConfig struct {
	Dir    string `toml:"dir" comment:"directory synthetic units are written to"`
	Format string `toml:"format" comment:"graph format: line, json or yaml"`
}

type SliceConfig struct {
	Strict           bool `toml:"strict" comment:"fail when a required type has no source"`
	ResolveCacheSize int  `toml:"resolve_cache_size"`
}

// MarkersConfig overrides the annotation sets of slice.Markers. A nil
// list keeps the default, an empty list disables the marker.
type MarkersConfig struct {
	Accessor     []string `toml:"accessor,omitempty"`
	AllArgs      []string `toml:"all_args,omitempty"`
	RequiredArgs []string `toml:"required_args,omitempty"`
	Entity       []string `toml:"entity,omitempty"`
	NonNull      []string `toml:"non_null,omitempty"`
	ID           []string `toml:"id,omitempty"`
}

func Default() Config {
	return Config{
		Source: SourceConfig{RespectGitignore: true},
		Output: OutputConfig{Dir: "slice-out", Format: "line"},
		Slice:  SliceConfig{ResolveCacheSize: codebase.DefaultResolveCacheSize},
	}
}

// Parse decodes a configuration file over the defaults. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("unknown settings:\n%s", strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("line %d, column %d: %w", row, col, err)
		}
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	return enc.Encode(c)
}

// Project is a source tree together with its configuration.
type Project struct {
	RootDir string
	// ConfigFile is empty when the defaults are in effect.
	ConfigFile string
	Config     Config
	Roots      []string
}

// Load reads the configuration of the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads rootDir/javaslice.toml, or uses the defaults when the
// file does not exist.
func LoadFrom(rootDir string) (*Project, error) {
	path := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		return newProject(rootDir, "", Default())
	}
	return LoadFile(path)
}

// LoadFile reads the given configuration file. The project root is the
// directory containing it.
func LoadFile(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return newProject(filepath.Dir(path), path, cfg)
}

func newProject(rootDir, configFile string, cfg Config) (*Project, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", rootDir, err)
	}
	p := &Project{RootDir: abs, ConfigFile: configFile, Config: cfg}
	p.Roots = cfg.Source.Roots
	if len(p.Roots) == 0 {
		p.Roots = detectRoots(abs)
	}
	return p, nil
}

// Markers returns the default markers with the configured overrides.
func (p *Project) Markers() slice.Markers {
	m := slice.DefaultMarkers()
	mc := p.Config.Markers
	override := func(dst *[]string, src []string) {
		if src != nil {
			*dst = src
		}
	}
	override(&m.Accessor, mc.Accessor)
	override(&m.AllArgs, mc.AllArgs)
	override(&m.RequiredArgs, mc.RequiredArgs)
	override(&m.Entity, mc.Entity)
	override(&m.NonNull, mc.NonNull)
	override(&m.ID, mc.ID)
	return m
}

// CodebaseOptions restricts the index to the source roots unless include
// patterns are configured explicitly.
func (p *Project) CodebaseOptions() []codebase.Option {
	src := p.Config.Source
	include := src.Include
	if len(include) == 0 {
		for _, root := range p.Roots {
			root = filepath.ToSlash(filepath.Clean(root))
			if root == "." {
				include = nil
				break
			}
			include = append(include, root+"/**")
		}
	}
	opts := []codebase.Option{
		codebase.WithGitignore(src.RespectGitignore),
		codebase.WithResolveCacheSize(p.Config.Slice.ResolveCacheSize),
	}
	if len(include) > 0 {
		opts = append(opts, codebase.WithInclude(include...))
	}
	if len(src.Exclude) > 0 {
		opts = append(opts, codebase.WithExclude(src.Exclude...))
	}
	return opts
}

func (p *Project) SliceOptions() []slice.Option {
	return []slice.Option{
		slice.WithMarkers(p.Markers()),
		slice.WithStrict(p.Config.Slice.Strict),
	}
}

// OutputDir is the configured output directory resolved against the
// project root.
func (p *Project) OutputDir() string {
	dir := p.Config.Output.Dir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(p.RootDir, dir)
}

// OpenCodebase creates the index for the project's source tree. It is not
// scanned yet.
func (p *Project) OpenCodebase() (*codebase.Codebase, error) {
	return codebase.New(p.RootDir, p.CodebaseOptions()...)
}
