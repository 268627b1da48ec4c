package version

import (
	_ "embed" // for go:embed
	"strconv"
	"strings"
)

// VERSION holds the cachehub version
//
//go:embed VERSION
var VERSION string

// Version segments
var (
	MAJOR int
	MINOR int
	FIX   int
)

func init() {
	VERSION = strings.TrimSuffix(VERSION, "\n")
	v := strings.Split(VERSION, ".")
	MAJOR, _ = strconv.Atoi(v[0])
	MINOR, _ = strconv.Atoi(v[1])
	FIX, _ = strconv.Atoi(v[2])
}
