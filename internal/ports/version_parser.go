package ports

import "github.com/hailam/primport/internal/prim"

// VersionParser parses game version names (like "HM2016") into
// prim.GameVersion values.
type VersionParser interface {
	Parse(name string) (prim.GameVersion, error)
}
