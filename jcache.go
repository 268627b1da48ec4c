package cachehub

import (
	"github.com/fatih/structs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-cachehub/cachehub/internal/utils"
)

// JCacheConf holds JSR-107 specific cache configuration.
type JCacheConf struct {
	// Config is the location of the configuration file used to initialize the
	// cache manager; its format depends on the underlying implementation.
	Config string `yaml:"config"`
	// Provider is the fully qualified name of the CachingProvider
	// implementation to use; only needed if more than one JSR-107
	// implementation is available.
	Provider string `yaml:"provider"`
	// Extra holds implementation specific keys that are passed through to the
	// provider untouched.
	Extra map[string]any `yaml:"-"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c JCacheConf) IsSet() bool {
	return c.Config != "" || c.Provider != ""
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (c *JCacheConf) UnmarshalYAML(node *yaml.Node) error {
	type jcacheConf JCacheConf
	var known jcacheConf
	if err := node.Decode(&known); err != nil {
		return errors.WithStack(err)
	}
	extra := make(map[string]any)
	if err := node.Decode(&extra); err != nil {
		return errors.WithStack(err)
	}
	s := structs.New(known)
	for _, tag := range utils.FieldTagNames(s.Fields(), "yaml") {
		delete(extra, tag)
	}
	if len(extra) == 0 {
		extra = nil
	}
	known.Extra = extra
	*c = JCacheConf(known)
	return nil
}
