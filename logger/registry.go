package logger

import (
	"maps"
	"slices"
	"sync"
)

// components caches per-component loggers derived from the global logger.
// Init clears it so later lookups pick up the new configuration.
var components struct {
	sync.Mutex
	byName map[string]*Logger
}

// Get returns the logger for component, deriving it from the global
// logger on first use.
func Get(component string) *Logger {
	components.Lock()
	defer components.Unlock()

	if l, ok := components.byName[component]; ok {
		return l
	}
	if components.byName == nil {
		components.byName = make(map[string]*Logger)
	}
	l := GetGlobalLogger().WithComponent(component)
	components.byName[component] = l
	return l
}

// Override pins the logger returned by Get for component until the next Init.
func Override(component string, l *Logger) {
	components.Lock()
	defer components.Unlock()

	if components.byName == nil {
		components.byName = make(map[string]*Logger)
	}
	components.byName[component] = l
}

// Components lists the component names resolved so far, sorted.
func Components() []string {
	components.Lock()
	defer components.Unlock()
	return slices.Sorted(maps.Keys(components.byName))
}

func resetComponents() {
	components.Lock()
	components.byName = nil
	components.Unlock()
}
