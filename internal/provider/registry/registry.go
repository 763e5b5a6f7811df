// File: internal/provider/registry/registry.go
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"s3lync/internal/config"
	"s3lync/pkg/storage"
)

// Defines the function signature for checking if a store backend is configured
type StoreConfigCheck func(settings config.Settings) bool

// Defines the function signature for creating a new object store client
type StoreInitializer func(ctx context.Context, settings config.Settings, logger *slog.Logger) (storage.ObjectStore, error)

// Holds the necessary functions to check configuration and initialize a store
type StoreRegistration struct {
	ConfigCheck StoreConfigCheck
	Initializer StoreInitializer
}

var (
	// Stores the registrations, keyed by the address scheme (lowercase)
	storeRegistry = make(map[string]StoreRegistration)
	registryMu    sync.RWMutex
)

// Allows a store implementation package to register itself during initialization (init())
func RegisterStore(scheme string, registration StoreRegistration) {
	registryMu.Lock()
	defer registryMu.Unlock()

	normalized := strings.ToLower(scheme)
	if _, exists := storeRegistry[normalized]; exists {
		panic(fmt.Sprintf("store for scheme %s already registered", normalized))
	}

	if registration.ConfigCheck == nil {
		panic(fmt.Sprintf("store %s registration missing ConfigCheck", normalized))
	}
	if registration.Initializer == nil {
		panic(fmt.Sprintf("store %s registration missing Initializer", normalized))
	}

	storeRegistry[normalized] = registration
}

// Returns a sorted list of all registered schemes
func SupportedSchemes() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	schemes := make([]string, 0, len(storeRegistry))
	for scheme := range storeRegistry {
		schemes = append(schemes, scheme)
	}
	sort.Strings(schemes)
	return schemes
}

// Checks if a scheme has been registered
func IsSupported(scheme string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, exists := storeRegistry[strings.ToLower(scheme)]
	return exists
}

// Retrieves the registration details for a scheme
func GetRegistration(scheme string) (StoreRegistration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	registration, exists := storeRegistry[strings.ToLower(scheme)]
	return registration, exists
}

// Returns a copy of the entire registry map (primarily for use by the factory)
func AllRegistrations() map[string]StoreRegistration {
	registryMu.RLock()
	defer registryMu.RUnlock()

	registrations := make(map[string]StoreRegistration, len(storeRegistry))
	for k, v := range storeRegistry {
		registrations[k] = v
	}
	return registrations
}
