// Package config loads filter thresholds and hex limits from YAML.
//
// A file sets defaults for every service and overrides per layer:
//
//	level: warning
//	hex_limit: 32
//	layers:
//	  phy:
//	    level: error
//	  mac:
//	    level: debug
//	    hex_limit: 128
//
// Layer names match Filter service names case-insensitively.
package config
