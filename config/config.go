package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix prefixes every environment override, e.g. OFFERS_LOG_LEVEL.
	EnvPrefix = "OFFERS_"

	// EnvConfigFile names the YAML file to load instead of DefaultFile.
	EnvConfigFile = EnvPrefix + "CONFIG"

	// DefaultFile is loaded from the working directory when present.
	DefaultFile = "offers.yaml"
)

var validOutputs = []string{"text", "json"}

type Config struct {
	Output   string `yaml:"output"`
	Parallel bool   `yaml:"parallel"`
	Log      Log    `yaml:"log"`
	Gold     Gold   `yaml:"gold"`
}

type Log struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Gold configures the gold card of the stock campaign.
type Gold struct {
	Suspended bool `yaml:"suspended"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Output: "text",
		Log:    Log{Level: "warn"},
	}
}

// Load reads defaults, then the YAML file, then OFFERS_* environment variables.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	required := path != ""
	if !required {
		path = DefaultFile
	}
	return LoadFile(path, required)
}

// LoadFile is Load with an explicit file. A missing file is an error only when required.
func LoadFile(path string, required bool) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config %s failed", path)
		}
	} else if required {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnv,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, errors.Wrap(err, "unmarshal config failed")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// transformEnv maps OFFERS_LOG_LEVEL to log.level.
func transformEnv(k, v string) (string, any) {
	key := strings.TrimPrefix(k, EnvPrefix)
	if key == "CONFIG" {
		return "", nil
	}
	return strings.ReplaceAll(strings.ToLower(key), "_", "."), v
}

// Validate rejects settings the program cannot honour.
func (c Config) Validate() error {
	for _, output := range validOutputs {
		if c.Output == output {
			return nil
		}
	}
	return errors.Errorf("unknown output %q, want one of %s", c.Output, strings.Join(validOutputs, ", "))
}
