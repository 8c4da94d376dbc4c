package prim

import (
	"fmt"
	"strings"
)

// GameVersion identifies the engine generation a PRIM file targets. The
// value order matches the numeric ids the game tooling uses for the
// same versions.
type GameVersion int

const (
	HMA GameVersion = iota
	Alpha
	HM2016
	WOA
)

// ParseGameVersion parses a version name, case-insensitively.
func ParseGameVersion(name string) (GameVersion, error) {
	switch strings.ToLower(name) {
	case "hma":
		return HMA, nil
	case "alpha":
		return Alpha, nil
	case "hm2016":
		return HM2016, nil
	case "woa":
		return WOA, nil
	default:
		return 0, fmt.Errorf("unknown PRIM game version %q: enter one of HMA, ALPHA, HM2016, WOA", name)
	}
}

func (v GameVersion) String() string {
	switch v {
	case HMA:
		return "HMA"
	case Alpha:
		return "ALPHA"
	case HM2016:
		return "HM2016"
	case WOA:
		return "WOA"
	}
	return fmt.Sprintf("GameVersion(%d)", int(v))
}

// hasColor1 reports whether SPrimObject carries the color1 field in
// this version. The same versions carry num_indices_extra on the
// sub-mesh and use the wide bone-index count prefix.
func (v GameVersion) hasColor1() bool {
	return v == HM2016 || v == WOA
}
