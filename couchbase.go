package cachehub

// CouchbaseConf holds Couchbase specific cache configuration.
type CouchbaseConf struct {
	// Expiration is the entry expiration in milliseconds; by default entries
	// never expire. Couchbase itself works with whole seconds, see
	// ExpirationSeconds.
	Expiration int `yaml:"expiration"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c CouchbaseConf) IsSet() bool {
	return c.Expiration != 0
}

// ExpirationSeconds returns the entry expiration converted to whole seconds.
func (c CouchbaseConf) ExpirationSeconds() int {
	return c.Expiration / 1000
}
