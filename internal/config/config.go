// Package config reads the stoned run file: which dataset columns feed the
// model and which formulation to assemble.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stoned/direction"
	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/internal/dataset"
	"github.com/katalvlaran/stoned/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. STONED_LOSS or STONED_LOGGING_LEVEL.
const EnvPrefix = "STONED"

// File is the run file.
type File struct {
	Name        string         `yaml:"name,omitempty" mapstructure:"name"`
	Frontier    string         `yaml:"frontier" mapstructure:"frontier"`
	ErrorModel  string         `yaml:"error_model" mapstructure:"error_model"`
	RTS         string         `yaml:"rts" mapstructure:"rts"`
	Loss        string         `yaml:"loss" mapstructure:"loss"`
	Tau         float64        `yaml:"tau,omitempty" mapstructure:"tau"`
	Parallelism int            `yaml:"parallelism,omitempty" mapstructure:"parallelism"`
	Data        Data           `yaml:"data" mapstructure:"data"`
	Direction   *Direction     `yaml:"direction,omitempty" mapstructure:"direction"`
	Logging     logging.Config `yaml:"logging" mapstructure:"logging"`
}

// Data maps dataset columns onto x, y and b.
type Data struct {
	Path    string   `yaml:"path" mapstructure:"path"`
	X       []string `yaml:"x" mapstructure:"x"`
	Y       []string `yaml:"y" mapstructure:"y"`
	B       []string `yaml:"b,omitempty" mapstructure:"b"`
	Weights string   `yaml:"weights,omitempty" mapstructure:"weights"`
}

// Direction selects the directional distance formulation. Each component
// is unspecified, a scalar, a uniform vector or dataset columns (per DMU).
type Direction struct {
	X Component `yaml:"x,omitempty" mapstructure:"x"`
	Y Component `yaml:"y,omitempty" mapstructure:"y"`
	B Component `yaml:"b,omitempty" mapstructure:"b"`
}

// Component is one direction vector; at most one field may be set.
type Component struct {
	Scalar  *float64  `yaml:"scalar,omitempty" mapstructure:"scalar"`
	Uniform []float64 `yaml:"uniform,omitempty" mapstructure:"uniform"`
	Columns []string  `yaml:"columns,omitempty" mapstructure:"columns"`
}

// Default is the configuration used for unset keys: production CNLS.
func Default() File {
	return File{
		Frontier:   "production",
		ErrorModel: "additive",
		RTS:        "vrs",
		Loss:       "ls",
		Logging:    logging.DefaultConfig(),
	}
}

// Parse decodes a YAML run file over Default and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load reads the run file at path through viper, applying STONED_*
// environment overrides, and validates it. A non-empty dataPath replaces
// data.path, so the file may omit it. Unknown keys are rejected, as in Parse.
func Load(path, dataPath string) (*File, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("name", def.Name)
	v.SetDefault("frontier", def.Frontier)
	v.SetDefault("error_model", def.ErrorModel)
	v.SetDefault("rts", def.RTS)
	v.SetDefault("loss", def.Loss)
	v.SetDefault("tau", def.Tau)
	v.SetDefault("parallelism", def.Parallelism)
	v.SetDefault("data.path", "")
	v.SetDefault("data.weights", "")
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("logging.development", def.Logging.Development)

	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if dataPath != "" {
		v.Set("data.path", dataPath)
	}

	var f File
	if err := v.UnmarshalExact(&f); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks required keys and every enum; errors are joined.
func (f *File) Validate() error {
	var errs []error
	if f.Data.Path == "" {
		errs = append(errs, errors.New("data.path is required"))
	}
	if len(f.Data.X) == 0 {
		errs = append(errs, errors.New("data.x must name at least one column"))
	}
	if len(f.Data.Y) == 0 {
		errs = append(errs, errors.New("data.y must name at least one column"))
	}
	if f.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 0, got %d", f.Parallelism))
	}
	if f.Direction != nil {
		for i, c := range []Component{f.Direction.X, f.Direction.Y, f.Direction.B} {
			if c.set() > 1 {
				errs = append(errs, fmt.Errorf("direction.%s: set only one of scalar, uniform or columns", []string{"x", "y", "b"}[i]))
			}
		}
	}
	if _, err := f.frontierConfig(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}

	return nil
}

// Build loads the dataset columns named in f from tab (and the weight
// matrix, if any) and returns the assembly inputs.
func (f *File) Build(tab *dataset.Table) (frontier.Data, frontier.Config, error) {
	cfg, err := f.frontierConfig()
	if err != nil {
		return frontier.Data{}, frontier.Config{}, err
	}

	var data frontier.Data
	if data.X, err = tab.Column(f.Data.X...); err != nil {
		return frontier.Data{}, frontier.Config{}, fmt.Errorf("config: data.x: %w", err)
	}
	if data.Y, err = tab.Column(f.Data.Y...); err != nil {
		return frontier.Data{}, frontier.Config{}, fmt.Errorf("config: data.y: %w", err)
	}
	if data.B, err = tab.Column(f.Data.B...); err != nil {
		return frontier.Data{}, frontier.Config{}, fmt.Errorf("config: data.b: %w", err)
	}
	if f.Data.Weights != "" {
		if data.Weights, err = dataset.LoadMatrix(f.Data.Weights); err != nil {
			return frontier.Data{}, frontier.Config{}, fmt.Errorf("config: data.weights: %w", err)
		}
	}

	if f.Direction != nil {
		spec := direction.Spec{}
		for _, c := range []struct {
			name string
			src  Component
			dst  *direction.Component
		}{
			{"x", f.Direction.X, &spec.X},
			{"y", f.Direction.Y, &spec.Y},
			{"b", f.Direction.B, &spec.B},
		} {
			if *c.dst, err = c.src.resolve(tab); err != nil {
				return frontier.Data{}, frontier.Config{}, fmt.Errorf("config: direction.%s: %w", c.name, err)
			}
		}
		cfg.Direction = &spec
	}

	return data, cfg, nil
}

// Options returns the assembly options implied by f.
func (f *File) Options() []frontier.Option {
	var opts []frontier.Option
	if f.Name != "" {
		opts = append(opts, frontier.WithName(f.Name))
	}
	if f.Parallelism > 0 {
		opts = append(opts, frontier.WithParallelism(f.Parallelism))
	}

	return opts
}

func (f *File) frontierConfig() (frontier.Config, error) {
	var (
		cfg frontier.Config
		err error
	)
	if cfg.Frontier, err = frontier.ParseFrontier(f.Frontier); err != nil {
		return cfg, err
	}
	if cfg.ErrorModel, err = frontier.ParseErrorModel(f.ErrorModel); err != nil {
		return cfg, err
	}
	if cfg.ReturnsToScale, err = frontier.ParseReturnsToScale(f.RTS); err != nil {
		return cfg, err
	}
	if cfg.Loss, err = frontier.ParseLoss(f.Loss, f.Tau); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c Component) set() int {
	n := 0
	if c.Scalar != nil {
		n++
	}
	if len(c.Uniform) > 0 {
		n++
	}
	if len(c.Columns) > 0 {
		n++
	}

	return n
}

func (c Component) resolve(tab *dataset.Table) (direction.Component, error) {
	switch {
	case c.Scalar != nil:
		return direction.Scalar(*c.Scalar), nil
	case len(c.Uniform) > 0:
		return direction.Uniform(c.Uniform), nil
	case len(c.Columns) > 0:
		rows, err := tab.Rows(c.Columns...)
		if err != nil {
			return direction.Component{}, err
		}
		return direction.PerDMU(rows), nil
	}

	return direction.Unspecified(), nil
}
