package systems

// Phase IDs of one simulation tick, in execution order. The perf collector
// times each phase under its ID.
const (
	PhaseWeather   = "weather"
	PhaseCells     = "cells"
	PhaseTelemetry = "telemetry"
	PhaseSnapshot  = "snapshot"
)

// SystemInfo describes a tick phase for logs and perf output.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this phase does
	Category    string // Grouping (e.g., "core", "output")
}

// SystemRegistry holds metadata about every tick phase.
// This centralizes phase naming so the HUD, logs and perf CSV stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known phases to the registry.
// Update this when adding new phases.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PhaseWeather, Name: "Weather", Description: "Advances hour and temperature", Category: "environment"})
	r.Register(SystemInfo{ID: PhaseCells, Name: "Cells", Description: "Metabolism, death, actions and division for every cell", Category: "core"})
	r.Register(SystemInfo{ID: PhaseTelemetry, Name: "Telemetry", Description: "Flushes stats windows", Category: "output"})
	r.Register(SystemInfo{ID: PhaseSnapshot, Name: "Snapshot", Description: "Writes periodic state dumps", Category: "output"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
