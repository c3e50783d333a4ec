// Package types holds the shared types used across gfxpack packages.
//
// Keeping Pack, the filesystem interface and the operation outcome types
// here avoids import cycles between the catalog, installer and bridge
// packages that all exchange them.
package types
