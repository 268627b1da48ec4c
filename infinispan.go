package cachehub

// InfinispanConf holds Infinispan specific cache configuration.
type InfinispanConf struct {
	// Config is the location of the configuration file used to initialize
	// Infinispan; empty means unset.
	Config string `yaml:"config"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c InfinispanConf) IsSet() bool {
	return c.Config != ""
}
