// Package config provides the lesion table and drawing parameters for
// the measurement engine, loaded from YAML with built-in defaults.
//
// The defaults reproduce the AROI label assignment (SRF 161, Cyst 115,
// PED 138, Drusen 69) with a colorblind-friendly palette. A Config is
// an immutable value handed to the analyzer; nothing in this package
// holds mutable global state, so differing configurations can run
// side by side.
package config
