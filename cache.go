package cachehub

import (
	arrays "github.com/adam-hanna/arrayOperations"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zachmann/go-utils/fileutils"
)

// CacheType selects the caching provider backing an application. The empty
// value means the type is detected from the populated provider sections.
type CacheType string

const (
	CacheTypeAuto       CacheType = ""
	CacheTypeCaffeine   CacheType = "caffeine"
	CacheTypeCouchbase  CacheType = "couchbase"
	CacheTypeEhcache    CacheType = "ehcache"
	CacheTypeHazelcast  CacheType = "hazelcast"
	CacheTypeInfinispan CacheType = "infinispan"
	CacheTypeJCache     CacheType = "jcache"
	CacheTypeRedis      CacheType = "redis"
	CacheTypeSimple     CacheType = "simple"
	CacheTypeNone       CacheType = "none"
)

// ParseCacheType parses s into a CacheType
func ParseCacheType(s string) (CacheType, error) {
	switch t := CacheType(s); t {
	case CacheTypeAuto, CacheTypeCaffeine, CacheTypeCouchbase, CacheTypeEhcache,
		CacheTypeHazelcast, CacheTypeInfinispan, CacheTypeJCache,
		CacheTypeRedis, CacheTypeSimple, CacheTypeNone:
		return t, nil
	}
	return "", errors.Errorf("unknown cache type '%s'", s)
}

// CacheConf holds the cache configuration for an application: the cache type,
// the caches to create, and one section per supported provider. The provider
// sections are plain values, so they are always present once a CacheConf
// exists; only the fields inside them are optional.
type CacheConf struct {
	// Type is the cache type to use; if unset it is detected from the
	// populated provider sections.
	Type CacheType `yaml:"type"`
	// CacheNames are the names of the caches to create at startup, if
	// supported by the provider. Usually setting this disables creating
	// additional caches on the fly.
	CacheNames []string `yaml:"cache_names"`

	Caffeine   CaffeineConf   `yaml:"caffeine"`
	Couchbase  CouchbaseConf  `yaml:"couchbase"`
	Ehcache    EhcacheConf    `yaml:"ehcache"`
	Hazelcast  HazelcastConf  `yaml:"hazelcast"`
	Infinispan InfinispanConf `yaml:"infinispan"`
	JCache     JCacheConf     `yaml:"jcache"`
	Redis      RedisConf      `yaml:"redis"`
}

// Validate checks that the configured cache type is known. Provider config
// file locations are not checked here; bootstrap code resolves them through
// ResolveConfigLocation for the provider it actually starts.
func (c *CacheConf) Validate() error {
	if _, err := ParseCacheType(string(c.Type)); err != nil {
		return err
	}
	if len(arrays.Distinct(c.CacheNames)) != len(c.CacheNames) {
		log.Warn("cache conf: cache_names contains duplicate entries")
	}
	return nil
}

// ResolveConfigLocation resolves an optional provider config file location.
// An empty location means nothing is configured and is returned as is; a
// non-empty location must exist at call time and is returned unchanged.
func (c CacheConf) ResolveConfigLocation(location string) (string, error) {
	if location == "" {
		return "", nil
	}
	if !fileutils.FileExists(location) {
		return "", errors.Errorf("cache configuration does not exist '%s'", location)
	}
	return location, nil
}

// EffectiveType returns the configured cache type; if no explicit type is set
// it returns the type of the first populated provider section, falling back
// to CacheTypeSimple. The detection order is fixed.
func (c CacheConf) EffectiveType() CacheType {
	if c.Type != CacheTypeAuto {
		return c.Type
	}
	candidates := []struct {
		t   CacheType
		set bool
	}{
		{CacheTypeJCache, c.JCache.IsSet()},
		{CacheTypeEhcache, c.Ehcache.IsSet()},
		{CacheTypeHazelcast, c.Hazelcast.IsSet()},
		{CacheTypeInfinispan, c.Infinispan.IsSet()},
		{CacheTypeCouchbase, c.Couchbase.IsSet()},
		{CacheTypeRedis, c.Redis.IsSet()},
		{CacheTypeCaffeine, c.Caffeine.IsSet()},
	}
	for _, candidate := range candidates {
		if candidate.set {
			return candidate.t
		}
	}
	return CacheTypeSimple
}

// ConfigLocation returns the configured resource location for cache types
// that are initialized from an external configuration file; the second return
// value indicates whether the passed type uses one at all.
func (c CacheConf) ConfigLocation(t CacheType) (string, bool) {
	switch t {
	case CacheTypeEhcache:
		return c.Ehcache.Config, true
	case CacheTypeHazelcast:
		return c.Hazelcast.Config, true
	case CacheTypeInfinispan:
		return c.Infinispan.Config, true
	case CacheTypeJCache:
		return c.JCache.Config, true
	}
	return "", false
}
