package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDefaults is returned if a defaults file cannot be read.
var ErrInvalidDefaults = errors.New("invalid defaults file")

// ReadProps reads option values from a YAML document, e.g. a site-wide
// defaults file:
//
//     theme: light
//     arrow: true
//     delay: [100, 50]
//     zIndex: 10000
//
// Numbers are converted to float64 (also inside lists), so values look the
// same as if they had been read from declarative attributes. Keys not in
// DefaultSchema are skipped. An empty document yields empty Props.
func ReadProps(r io.Reader) (Props, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Props{}, nil
		}
		tracer().Errorf("cannot decode defaults: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefaults, err)
	}
	props := make(Props, len(raw))
	for key, v := range raw {
		if _, ok := DefaultSchema.Lookup(key); !ok {
			tracer().Infof("defaults: skipping unknown option %q", key)
			continue
		}
		props[key] = normalizeNumbers(v)
	}
	return props, nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case []any:
		l := make([]any, len(x))
		for i, el := range x {
			l[i] = normalizeNumbers(el)
		}
		return l
	}
	return v
}
