package sources

import (
	"strconv"
	"strings"

	"github.com/matzehuels/readmefeed/pkg/errors"
)

// Params are the string parameters configured on a region.
type Params map[string]string

// String returns the parameter or def when unset or empty.
func (p Params) String(key, def string) string {
	if v := strings.TrimSpace(p[key]); v != "" {
		return v
	}
	return def
}

// Int parses an integer parameter.
func (p Params) Int(key string, def int) (int, error) {
	v := p.String(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "param %s: not an integer: %q", key, v)
	}
	return n, nil
}

// Float parses a floating point parameter.
func (p Params) Float(key string, def float64) (float64, error) {
	v := p.String(key, "")
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "param %s: not a number: %q", key, v)
	}
	return f, nil
}

// List splits a comma separated parameter, dropping blanks.
func (p Params) List(key string, def []string) []string {
	v := p.String(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Bounded parses an integer parameter and checks it lies in [lo, hi].
func (p Params) Bounded(key string, def, lo, hi int) (int, error) {
	n, err := p.Int(key, def)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "param %s: %d out of range [%d, %d]", key, n, lo, hi)
	}
	return n, nil
}
