package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/fileutils"
	"gopkg.in/yaml.v3"

	"github.com/go-cachehub/cachehub"
)

// Config holds the whole application configuration
type Config struct {
	Cache   cachehub.CacheConf `yaml:"cache"`
	Logging loggingConf        `yaml:"logging"`
}

var conf *Config

// Get returns the loaded Config
func Get() *Config {
	return conf
}

var defaultConfig = Config{
	Cache: cachehub.CacheConf{
		CacheNames: []string{},
	},
	Logging: defaultLoggingConf,
}

var possibleConfigLocations = []string{
	".",
	"config",
	"/config",
	"/etc/cachehub",
}

func (c *Config) validate() error {
	if err := c.Cache.Validate(); err != nil {
		return errors.Wrap(err, "error in cache conf")
	}
	return c.Logging.validate()
}

// Load loads the config from the given file; if no file is given the
// candidate locations are searched for a config.yaml. Any error is fatal.
func Load(file string) {
	content, err := readConfigFile(file)
	if err != nil {
		log.Fatal(err)
	}
	c, err := parse(content)
	if err != nil {
		log.Fatal(err)
	}
	conf = c
}

func parse(content []byte) (*Config, error) {
	c := defaultConfig
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func readConfigFile(file string) ([]byte, error) {
	if file != "" {
		content, err := os.ReadFile(file)
		return content, errors.WithStack(err)
	}
	for _, dir := range possibleConfigLocations {
		f := filepath.Join(dir, "config.yaml")
		if !fileutils.FileExists(f) {
			continue
		}
		content, err := os.ReadFile(f)
		return content, errors.WithStack(err)
	}
	return nil, errors.New("could not find a config file in any of the possible locations")
}
