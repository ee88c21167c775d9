// Package config provides configuration structures and utilities for
// footprintscan. It defines the timeouts, endpoints, sampling
// thresholds, and report preferences used by the scanning engine, plus
// the optional YAML configuration file loader.
package config
