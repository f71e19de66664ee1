// Package swpc renders space weather from the NOAA Space Weather Prediction
// Center (https://services.swpc.noaa.gov).
//
// Two products feed one region: the two-hour solar wind plasma series and
// the planetary K index. Each is summarised on its own line and degrades on
// its own: a failed Kp fetch still shows the solar wind.
//
// Solar wind speed is classed as very fast (>700 km/s), fast (>500),
// moderate (>350) or slow. Kp maps to NOAA storm scales: G4-G5 from 8,
// G3 from 6, G1-G2 from 5, active from 4, quiet below; from Kp 5 an aurora
// note is added.
package swpc
