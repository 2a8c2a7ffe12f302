// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// SettingMaintenanceMode is the unique name of the maintenance-mode singleton.
const SettingMaintenanceMode = "maintenance_mode"

// Setting is a named boolean switch. Settings are singletons keyed by their
// unique name and are lazily created with IsEnabled=false on first read.
type Setting struct {
	Name      string // Unique lookup key, e.g. "maintenance_mode".
	IsEnabled bool
}
