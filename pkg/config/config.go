package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidTarget is returned when Load gets something other than a
// non-nil pointer to a struct.
var ErrInvalidTarget = errors.New("config: target must be a non-nil pointer to a struct")

var (
	dotenvOnce sync.Once
	cacheMu    sync.Mutex
	cache      = map[reflect.Type]any{}
)

// Load fills cfg from the environment. A .env file in the working directory
// is read once, on first use; variables already set in the environment win.
// Each type is parsed once and the cached value is copied on later calls.
func Load[T any](cfg *T) error {
	if cfg == nil || reflect.TypeFor[T]().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	dotenvOnce.Do(loadDotenv)

	cacheMu.Lock()
	defer cacheMu.Unlock()

	key := reflect.TypeFor[T]()
	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}
	cache[key] = *cfg
	return nil
}

// MustLoad is Load that panics on error. Intended for program start-up.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without the cache or .env file.
func Parse[T any](cfg *T) error {
	if cfg == nil || reflect.TypeFor[T]().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", reflect.TypeFor[T](), err)
	}
	return nil
}

func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load()
}
