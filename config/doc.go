// Package config defines the YAML/JSON configuration model consumed by the
// namely CLI as well as helper functions to load it.  Name lists can be kept
// inline or referenced by URL; URLs are resolved through the afs abstract
// file system so file, mem and cloud schemes all work.
package config
