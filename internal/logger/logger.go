package logger

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/go-cachehub/cachehub/cmd/cachehub/config"
)

// Init configures the global logrus logger from the loaded config. It must be
// called after config.Load.
func Init() {
	c := config.Get().Logging
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(
		&log.TextFormatter{
			FullTimestamp: true,
		},
	)
	log.SetOutput(out(c.Dir, c.StdErr))
}

func out(dir string, stderr bool) io.Writer {
	var writers []io.Writer
	if stderr || dir == "" {
		writers = append(writers, os.Stderr)
	}
	if dir != "" {
		f, err := os.OpenFile(
			filepath.Join(dir, "cachehub.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644,
		)
		if err != nil {
			log.WithError(err).Error("could not open log file")
		} else {
			writers = append(writers, f)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	return io.MultiWriter(writers...)
}
