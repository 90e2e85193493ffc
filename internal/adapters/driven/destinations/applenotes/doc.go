// Package applenotes provides the Apple Notes destination.
//
// Notes is driven through AppleScript: every operation generates a script,
// runs it through a driven.ScriptRunner and classifies failures from the
// captured stderr. Writes are upserts keyed by the exact note name within a
// named folder of the default account.
//
// The functional Backend only works on macOS. New selects it at runtime,
// and returns Unsupported on every other platform.
package applenotes
