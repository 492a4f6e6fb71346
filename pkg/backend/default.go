package backend

import (
	"sync"
)

var (
	defaultMu      sync.RWMutex
	defaultBackend Backend
	defaultFactory func() Backend
)

// RegisterDefaultFactory installs the constructor used the first time
// Default is called. pkg/backend/ansi registers itself from init.
func RegisterDefaultFactory(f func() Backend) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFactory = f
}

// Default returns the process-wide backend, building it on first use.
// It returns nil when no backend has been set or registered.
func Default() Backend {
	defaultMu.RLock()
	b := defaultBackend
	defaultMu.RUnlock()
	if b != nil {
		return b
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultBackend == nil && defaultFactory != nil {
		defaultBackend = defaultFactory()
	}
	return defaultBackend
}

// SetDefault replaces the process-wide backend and returns the previous one.
// Passing nil makes the next Default call rebuild from the registered factory.
func SetDefault(b Backend) Backend {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultBackend
	defaultBackend = b
	return prev
}
