package addrgen

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// DefaultContractImport is the import path of the package providing the generic
// MemoryAddr operations that generated methods delegate to
const DefaultContractImport = "github.com/vkngwrapper/memaddr/addr"

// Config describes one generated file.
type Config struct {
	// Package is the name of the package the generated file belongs to
	Package string `mapstructure:"package"`
	// Output is the generated file name, relative to the config file
	Output string `mapstructure:"output" default:"addrs_gen.go"`
	// ContractImport is the import path of the addr package
	ContractImport string `mapstructure:"contract_import" default:"github.com/vkngwrapper/memaddr/addr"`
	// ContractPackage is the package name of ContractImport. When empty it is the last
	// import path element, skipping a trailing major version suffix such as /v2.
	ContractPackage string `mapstructure:"contract_package"`
	// ContractLocal is set when the file is generated into the addr package itself, in
	// which case the contract is referenced without an import
	ContractLocal bool `mapstructure:"contract_local"`

	Types      []TypeConfig      `mapstructure:"types"`
	Formatters []FormatterConfig `mapstructure:"formatters"`
}

// TypeConfig declares one address kind.
type TypeConfig struct {
	Name string `mapstructure:"name"`
	// Visibility is public or private. When empty it is taken from the case of Name.
	Visibility string `mapstructure:"visibility"`
	// Doc is the type's doc comment, without comment markers
	Doc    string   `mapstructure:"doc"`
	Derive []string `mapstructure:"derive"`
}

// FormatterConfig attaches a layout such as "PA:{}" to an address kind.
type FormatterConfig struct {
	Name   string `mapstructure:"name"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads a generator config from path on fs. Any format viper understands
// may be used; the format is chosen by the file extension.
func LoadConfig(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config from '%s'", path)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := defaults.Set(config); err != nil {
		return nil, errors.Wrap(err, "failed to set config defaults")
	}

	return config, nil
}

// OutputPath resolves the configured output file relative to the directory holding the
// config file.
func (c *Config) OutputPath(configPath string) string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(filepath.Dir(configPath), c.Output)
}
