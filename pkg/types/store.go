package types

import "errors"

// StoreConfig holds parameters for attaching the run store.
type StoreConfig struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Run store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("run store is detached")
	ErrAlreadyAttached = errors.New("run store is already attached")
	ErrRunNotFound     = errors.New("run not found")
)
