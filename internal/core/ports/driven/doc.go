// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Destination: Writes sanitised note content somewhere (Markdown file, Apple Notes)
//   - NotesBridge: A Destination with read-only probes (availability, folder listing)
//   - ScriptRunner: Executes an automation script as an external process
//   - NoteStore: Reads the current note content
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
