// Package testutil provides fixture builders for gfxpack tests: a
// complete workshop plus Dwarf Fortress folder layout on an in-memory
// or temp-dir filesystem, pack and baseline builders, and a scriptable
// raw-merge engine.
//
// Tests that only read and plan should use NewMemInstall for speed and
// isolation. Tests that execute asset plans need NewTempInstall, since
// plan execution always runs against the real filesystem.
package testutil
