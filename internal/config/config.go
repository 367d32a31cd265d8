package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level crechestat configuration.
type Config struct {
	// LookupFile is the default facility → manager mapping CSV; the
	// --lookup flag overrides it.
	LookupFile string `mapstructure:"lookup_file"`

	// ManagerNames overrides the recognized manager column headers.
	ManagerNames []string `mapstructure:"manager_names"`

	// OpenAnswerLimit caps rendered verbatim answers per open question.
	OpenAnswerLimit int `mapstructure:"open_answer_limit"`

	Output Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("lookup_file", "")
	v.SetDefault("manager_names", DefaultManagerNames)
	v.SetDefault("open_answer_limit", DefaultOpenAnswerLimit)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing config file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.OpenAnswerLimit <= 0 {
		cfg.OpenAnswerLimit = DefaultOpenAnswerLimit
	}
	cfg.LookupFile = expandPath(cfg.LookupFile)

	return &cfg, nil
}
