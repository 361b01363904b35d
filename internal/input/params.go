package input

import (
	"net/url"
	"strings"
)

// Params are the optional hours/minutes supplied once at startup.
type Params struct {
	Hours   string
	Minutes string
}

// Seconds is the duration the params describe. Unlike Commit, values longer
// than a field are accepted.
func (p Params) Seconds() int {
	return Commit(strings.TrimSpace(p.Hours), strings.TrimSpace(p.Minutes))
}

// Empty reports whether neither value was supplied.
func (p Params) Empty() bool {
	return strings.TrimSpace(p.Hours) == "" && strings.TrimSpace(p.Minutes) == ""
}

// Merge fills blank values of p from other.
func (p Params) Merge(other Params) Params {
	if strings.TrimSpace(p.Hours) == "" {
		p.Hours = other.Hours
	}
	if strings.TrimSpace(p.Minutes) == "" {
		p.Minutes = other.Minutes
	}
	return p
}

// ParamsFromURL reads the hours and minutes query keys from a full URL, a
// "?hours=1&minutes=30" fragment or a bare query string. Anything that does
// not parse yields empty params.
func ParamsFromURL(raw string) Params {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Params{}
	}
	query := raw
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		query = raw[i+1:]
	} else if strings.Contains(raw, "://") {
		return Params{}
	}
	if i := strings.IndexByte(query, '#'); i >= 0 {
		query = query[:i]
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return Params{}
	}
	return Params{Hours: values.Get("hours"), Minutes: values.Get("minutes")}
}
