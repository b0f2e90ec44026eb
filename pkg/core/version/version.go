// ============================================================================
// adifkit - ADIF Log File Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the adifkit tools
// Author:      msto63 with Claude
// Created:     2026-02-10
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the toolkit
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Supported ADIF specification version
	ADIFSpec = "3.1.4"
)

// Info describes the running tool
type Info struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	ADIFSpec string `json:"adif_spec"`
}

// Get returns the version information for the given tool name
func Get(name string) Info {
	return Info{
		Name:     name,
		Version:  Toolkit,
		ADIFSpec: ADIFSpec,
	}
}

// String returns a human-readable version line
func (i Info) String() string {
	return fmt.Sprintf("%s v%s (ADIF %s)", i.Name, i.Version, i.ADIFSpec)
}
