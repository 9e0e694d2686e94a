package snapshot

import "fmt"

// Constellation codes by GNSS system number, as reported by gpsd.
var gnssCodes = map[int]string{
	0: "GP", // GPS
	1: "SB", // SBAS
	2: "GA", // Galileo
	3: "BD", // BeiDou
	4: "IM", // IMES
	5: "QZ", // QZSS
	6: "GL", // GLONASS
}

// UnknownConstellation is the prefix used for GNSS system numbers outside
// the known enumeration.
const UnknownConstellation = "unknown"

// Identifier formats a constellation code and per-constellation satellite
// number into the display string used as a map key and munin label,
// e.g. "GP 5". The string stays stable for as long as the satellite is
// tracked, which is what lets the registry pre-seed it across polls.
func Identifier(gnssID, svID int) string {
	code, ok := gnssCodes[gnssID]
	if !ok {
		code = UnknownConstellation
	}
	return fmt.Sprintf("%s %d", code, svID)
}
