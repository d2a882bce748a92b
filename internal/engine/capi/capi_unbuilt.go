//go:build !cgo

package capi

import "github.com/dss-extensions/godss/internal/engine"

// New reports ErrNotBuilt when the module is compiled without cgo;
// the native library cannot be reached in that configuration.
func New() (engine.API, error) {
	return nil, engine.ErrNotBuilt
}
