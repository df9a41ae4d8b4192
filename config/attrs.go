package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/poptip/dom/w3cdom"
)

// AttributePrefix is prepended to an option name to form the name of its
// declarative attribute, e.g. data-tippy-placement.
const AttributePrefix = "data-tippy-"

// ErrMalformedAttribute is returned if a declarative attribute looks like a
// JSON array but cannot be parsed as one.
var ErrMalformedAttribute = errors.New("malformed declarative attribute")

// ParseAttributes reads the declarative attribute of every option in schema
// off a reference element. Attributes which are missing or blank are omitted
// from the result. Attribute text is coerced, first match wins:
//
//     "true" / "false"       =>  bool
//     decimal number         =>  float64 (also Infinity, see numeric)
//     starts with '['        =>  []any, parsed as JSON (not for selector options)
//     anything else          =>  string, trimmed
//
// A malformed JSON array is reported as an error wrapping ErrMalformedAttribute.
// Attributes of names not in the schema are never looked at.
func ParseAttributes(ref w3cdom.Element, schema Schema) (Props, error) {
	props := make(Props)
	if ref == nil {
		return props, nil
	}
	for _, opt := range schema {
		raw, ok := ref.GetAttribute(AttributePrefix + opt.Name)
		if !ok {
			continue
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		v, err := coerce(opt, value)
		if err != nil {
			tracer().Errorf("option %s: %v", opt.Name, err)
			return nil, err
		}
		props[opt.Name] = v
	}
	return props, nil
}

func coerce(opt Option, value string) (any, error) {
	switch {
	case value == "true":
		return true, nil
	case value == "false":
		return false, nil
	}
	if x, ok := numeric(value); ok {
		return x, nil
	}
	if value[0] == '[' && opt.Kind != KindSelector {
		var list []any
		if err := json.Unmarshal([]byte(value), &list); err != nil {
			return nil, fmt.Errorf("%w: %s%s=%q: %v", ErrMalformedAttribute, AttributePrefix, opt.Name, value, err)
		}
		return list, nil
	}
	return value, nil
}

// decimal matches plain decimal notation with an optional exponent, or Infinity.
var decimal = regexp.MustCompile(`^[+-]?((\d+\.?\d*|\.\d+)([eE][+-]?\d+)?|Infinity)$`)

// numeric tests if an attribute value denotes a number. Only decimal notation
// and [+-]Infinity count; hex literals, "inf" and "NaN" stay strings.
// Values out of range become ±Inf or 0.
func numeric(value string) (float64, bool) {
	if !decimal.MatchString(value) {
		return 0, false
	}
	x, err := strconv.ParseFloat(value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(x) {
		return 0, false
	}
	return x, true
}
