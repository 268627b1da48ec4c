package cachehub

// EhcacheConf holds EhCache specific cache configuration.
type EhcacheConf struct {
	// Config is the location of the configuration file used to initialize
	// EhCache; empty means unset.
	Config string `yaml:"config"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c EhcacheConf) IsSet() bool {
	return c.Config != ""
}
