// Package ppconfig loads YAML configuration for the enumeration CLI
// and for batch driver runs: degree bounds, the loader's coordinate
// byte width, a cancellation timeout, and whether shape pruning is
// enabled. Decoding uses gopkg.in/yaml.v3, already an indirect
// dependency of this module via testify promoted here to direct use.
package ppconfig
