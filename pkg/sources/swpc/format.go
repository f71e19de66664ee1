package swpc

import (
	"errors"
	"fmt"
)

// SpeedClass names a solar wind speed in km/s.
func SpeedClass(speed float64) string {
	switch {
	case speed > 700:
		return "Very fast"
	case speed > 500:
		return "Fast"
	case speed > 350:
		return "Moderate"
	default:
		return "Slow"
	}
}

// StormLevel names a planetary K index on the NOAA G scale.
func StormLevel(kp float64) string {
	switch {
	case kp >= 8:
		return "Severe storm G4–G5"
	case kp >= 6:
		return "Strong storm G3"
	case kp >= 5:
		return "Moderate storm G1–G2"
	case kp >= 4:
		return "Active"
	default:
		return "Quiet"
	}
}

// SolarWindLine renders the solar wind summary. err is the fetch error, if
// any, and selects the degraded wording.
func SolarWindLine(p *Plasma, err error) string {
	if err != nil {
		return "**Solar wind** &nbsp; " + failure(err)
	}
	return fmt.Sprintf("**Solar wind** &nbsp; %.0f km/s — %s &nbsp; Density %.1f p/cm³",
		p.Speed, SpeedClass(p.Speed), p.Density)
}

// KpLine renders the Kp summary with an aurora note from Kp 5.
func KpLine(kp float64, err error) string {
	if err != nil {
		return "**Kp index** &nbsp; " + failure(err)
	}
	aurora := ""
	if kp >= 5 {
		aurora = " &nbsp; Aurora possible at high latitudes."
	}
	return fmt.Sprintf("**Kp index** &nbsp; %.1f — %s.%s", kp, StormLevel(kp), aurora)
}

func failure(err error) string {
	if errors.Is(err, ErrNoData) {
		return "data parse error"
	}
	return "unavailable"
}
