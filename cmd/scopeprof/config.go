package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"scopeprof/internal/demo"
	"scopeprof/profiler"
)

// fileConfig is the layout of the --config file.
type fileConfig struct {
	Profiler profilerSection `toml:"profiler" yaml:"profiler"`
	Report   reportSection   `toml:"report" yaml:"report"`
	Demo     demoSection     `toml:"demo" yaml:"demo"`
}

type profilerSection struct {
	MaxDepth   int    `toml:"max_depth" yaml:"max_depth"`
	MaxSamples int    `toml:"max_samples" yaml:"max_samples"`
	Category   string `toml:"category" yaml:"category"`
}

type reportSection struct {
	Formats     []string `toml:"formats" yaml:"formats"`
	Output      string   `toml:"output" yaml:"output"`
	BarWidth    int      `toml:"bar_width" yaml:"bar_width"`
	TraceObject *bool    `toml:"trace_object" yaml:"trace_object"`
}

type demoSection struct {
	Workload string `toml:"workload" yaml:"workload"`
	Counter  *int   `toml:"counter" yaml:"counter"`
	Unit     string `toml:"unit" yaml:"unit"`
	Frames   int    `toml:"frames" yaml:"frames"`
	Workers  int    `toml:"workers" yaml:"workers"`
}

// runSettings is the effective configuration of a run: defaults, then the
// config file, then flags.
type runSettings struct {
	Profiler profiler.Options
	Formats  []profiler.Format
	Output   string
	Demo     demo.Config
}

func defaultSettings() runSettings {
	return runSettings{
		Formats: []profiler.Format{profiler.FormatText},
		Output:  "-",
		Demo:    demo.DefaultConfig(),
	}
}

// loadConfig reads a config file, choosing the decoder by extension.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return fileConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return fileConfig{}, fmt.Errorf("failed to open config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return fileConfig{}, fmt.Errorf("%s: failed to parse YAML: %w", path, err)
		}
	default:
		return fileConfig{}, fmt.Errorf("%s: unsupported config extension %q (expected .toml or .yaml)", path, ext)
	}
	if cfg.Demo.Counter != nil && *cfg.Demo.Counter < 0 {
		return fileConfig{}, fmt.Errorf("%s: demo.counter must be >= 0", path)
	}
	return cfg, nil
}

// apply overlays the values set in cfg onto s.
func (cfg fileConfig) apply(s *runSettings) error {
	p := cfg.Profiler
	if p.MaxDepth != 0 {
		s.Profiler.MaxDepth = p.MaxDepth
	}
	if p.MaxSamples != 0 {
		s.Profiler.MaxSamples = p.MaxSamples
	}
	if p.Category != "" {
		s.Profiler.Category = p.Category
	}

	r := cfg.Report
	if len(r.Formats) > 0 {
		formats, err := parseFormats(r.Formats)
		if err != nil {
			return fmt.Errorf("report.formats: %w", err)
		}
		s.Formats = formats
	}
	if r.Output != "" {
		s.Output = r.Output
	}
	if r.BarWidth != 0 {
		s.Profiler.BarWidth = r.BarWidth
	}
	if r.TraceObject != nil {
		s.Profiler.TraceObject = *r.TraceObject
	}

	d := cfg.Demo
	if d.Workload != "" {
		w, err := demo.ParseWorkload(d.Workload)
		if err != nil {
			return fmt.Errorf("demo.workload: %w", err)
		}
		s.Demo.Workload = w
	}
	if d.Counter != nil {
		s.Demo.Counter = *d.Counter
	}
	if d.Unit != "" {
		unit, err := time.ParseDuration(d.Unit)
		if err != nil {
			return fmt.Errorf("demo.unit: %w", err)
		}
		s.Demo.Unit = unit
	}
	if d.Frames != 0 {
		s.Demo.Frames = d.Frames
	}
	if d.Workers != 0 {
		s.Demo.Workers = d.Workers
	}
	return nil
}

func parseFormats(names []string) ([]profiler.Format, error) {
	out := make([]profiler.Format, 0, len(names))
	seen := make(map[profiler.Format]bool, len(names))
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			f, err := profiler.ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no report format given")
	}
	return out, nil
}
