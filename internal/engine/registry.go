package engine

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// ===== Errors =====

// errEngineNotFound is returned when no engine is registered under the
// given tool name.
type errEngineNotFound struct {
	ToolName string
}

func (e *errEngineNotFound) Error() string {
	return fmt.Sprintf("engine not found: %s", e.ToolName)
}

// errEmptyRegistration is returned when a registration carries no engine.
var errEmptyRegistration = fmt.Errorf("cannot register empty engine registration")

// ===== Registry =====

// Registration contains the capabilities an external tool provides.
// A tool exposes a batch capability, a per-file capability, or both.
type Registration struct {
	Batch BatchEngine // nil if the tool is per-file only
	File  FileEngine  // nil if the tool is batch only
}

func (r *Registration) name() string {
	if r.Batch != nil {
		return r.Batch.Name()
	}
	if r.File != nil {
		return r.File.Name()
	}
	return ""
}

// Registry manages engine registrations.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Registration
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the singleton registry instance.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			tools: make(map[string]*Registration),
		}
	})
	return globalRegistry
}

// Register registers a tool's capabilities under its engine name.
func (r *Registry) Register(reg *Registration) error {
	if reg == nil || reg.name() == "" {
		return errEmptyRegistration
	}

	name := reg.name()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Warn on duplicate registration (init order issues)
	if _, exists := r.tools[name]; exists {
		log.Printf("warning: engine already registered: %s (ignoring duplicate)", name)
		return nil
	}

	r.tools[name] = reg

	return nil
}

// Batch finds a batch-capable engine by tool name.
func (r *Registry) Batch(toolName string) (BatchEngine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[toolName]; ok && reg.Batch != nil {
		return reg.Batch, nil
	}

	return nil, &errEngineNotFound{ToolName: toolName}
}

// File finds a per-file engine by tool name.
func (r *Registry) File(toolName string) (FileEngine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[toolName]; ok && reg.File != nil {
		return reg.File, nil
	}

	return nil, &errEngineNotFound{ToolName: toolName}
}

// Installers returns the registered engines that can install their
// underlying tool, keyed by engine name.
func (r *Registry) Installers() map[string]Installer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	installers := make(map[string]Installer)
	for name, reg := range r.tools {
		if inst, ok := reg.Batch.(Installer); ok {
			installers[name] = inst
			continue
		}
		if inst, ok := reg.File.(Installer); ok {
			installers[name] = inst
		}
	}
	return installers
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the full registration for a tool name.
func (r *Registry) Get(toolName string) (*Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.tools[toolName]; ok {
		return reg, nil
	}
	return nil, &errEngineNotFound{ToolName: toolName}
}
