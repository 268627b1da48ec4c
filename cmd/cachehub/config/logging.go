package config

import (
	"github.com/pkg/errors"
	"github.com/zachmann/go-utils/fileutils"
)

// loggingConf holds all logging-related configuration under the `logging` key.
//
// YAML example:
//
//	logging:
//	  dir: /var/log/cachehub
//	  stderr: false
//	  level: INFO
type loggingConf struct {
	Dir    string `yaml:"dir"`
	StdErr bool   `yaml:"stderr"`
	// Level sets the verbosity (e.g. DEBUG, INFO, WARN, ERROR).
	Level string `yaml:"level"`
}

func (l *loggingConf) validate() error {
	if l.Dir != "" && !fileutils.FileExists(l.Dir) {
		return errors.Errorf("logging directory '%s' does not exist", l.Dir)
	}
	return nil
}

var defaultLoggingConf = loggingConf{
	Level:  "INFO",
	StdErr: true,
}
