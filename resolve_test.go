package cachehub

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveConfigLocationUnset(t *testing.T) {
	var c CacheConf
	location, err := c.ResolveConfigLocation("")
	if err != nil {
		t.Fatalf("resolving an unset location must not fail: %v", err)
	}
	if location != "" {
		t.Errorf("expected the no-location signal, got %q", location)
	}
}

func TestResolveConfigLocationExisting(t *testing.T) {
	f := filepath.Join(t.TempDir(), "ehcache.xml")
	if err := os.WriteFile(f, []byte("<config/>"), 0644); err != nil {
		t.Fatalf("could not write test file: %v", err)
	}
	var c CacheConf
	location, err := c.ResolveConfigLocation(f)
	if err != nil {
		t.Fatalf("resolving an existing location failed: %v", err)
	}
	if location != f {
		t.Errorf("expected the location to be returned unchanged, got %q", location)
	}
}

func TestResolveConfigLocationMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist.xml")
	var c CacheConf
	if _, err := c.ResolveConfigLocation(missing); err == nil {
		t.Fatal("expected an error for a missing location")
	} else if !strings.Contains(err.Error(), missing) {
		t.Errorf("error message should name the failed location, got %q", err.Error())
	}
}
