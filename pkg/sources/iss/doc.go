// Package iss renders where the International Space Station is right now
// and who is in space, from the Open Notify API (http://api.open-notify.org).
//
// The position links to OpenStreetMap. The crew list is best effort: when
// the astronauts endpoint fails the position is still shown.
package iss
