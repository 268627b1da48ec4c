package cachehub

// HazelcastConf holds Hazelcast specific cache configuration.
type HazelcastConf struct {
	// Config is the location of the configuration file used to initialize
	// Hazelcast; empty means unset.
	Config string `yaml:"config"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c HazelcastConf) IsSet() bool {
	return c.Config != ""
}
