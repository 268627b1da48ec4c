package cachehub

// CaffeineConf holds Caffeine specific cache configuration. The spec string
// follows the CaffeineSpec grammar and is passed to the provider as is.
type CaffeineConf struct {
	Spec string `yaml:"spec"`
}

// IsSet returns a bool indicating if this provider was configured or not
func (c CaffeineConf) IsSet() bool {
	return c.Spec != ""
}
