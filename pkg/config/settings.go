package config

import (
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. WRITE_DIRECTORY.
	EnvPrefix = "WRITE"

	KeyConfigDir = "config_dir"
	KeyDirectory = "directory"
	KeyVerbose   = "verbose"
	KeyLogJSON   = "log_json"

	defaultConfigDir = "~/.write"
)

// Settings are the process-level knobs resolved from flags and environment.
type Settings struct {
	ConfigDir string
	Directory string
	Verbose   bool
	LogJSON   bool
}

// NewViper returns a viper instance wired to the WRITE_ environment.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyConfigDir, defaultConfigDir)
	v.SetDefault(KeyDirectory, "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadSettings reads Settings from v, expanding ~ in paths.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	configDir, err := homedir.Expand(v.GetString(KeyConfigDir))
	if err != nil {
		return nil, err
	}
	dir := v.GetString(KeyDirectory)
	if dir != "" {
		if dir, err = homedir.Expand(dir); err != nil {
			return nil, err
		}
	}
	return &Settings{
		ConfigDir: configDir,
		Directory: dir,
		Verbose:   v.GetBool(KeyVerbose),
		LogJSON:   v.GetBool(KeyLogJSON),
	}, nil
}

// Port returns the file port for these settings.
func (s *Settings) Port() *FilePort {
	return NewFilePort(s.ConfigDir)
}

// ResolveDirectory picks the journal directory: an explicit setting wins,
// then the stored defaultPath.
func (s *Settings) ResolveDirectory(c Config) string {
	if s.Directory != "" {
		return s.Directory
	}
	if c.DefaultPath == "" {
		return ""
	}
	if dir, err := homedir.Expand(c.DefaultPath); err == nil {
		return dir
	}
	return c.DefaultPath
}
