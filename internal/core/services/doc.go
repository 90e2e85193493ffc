// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no platform-specific code; platform selection
// happens when adapters are wired.
package services
