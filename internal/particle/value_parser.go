package particle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is a closed interval [Min, Max] sampled uniformly.
// A fixed value is a Range with Min == Max.
type Range struct {
	Min float64
	Max float64
}

// Fixed returns a degenerate range holding a single value.
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Span returns a range [min, max].
func Span(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Sample draws a value from the range using rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// Mean returns the midpoint of the range.
func (r Range) Mean() float64 {
	return (r.Min + r.Max) / 2
}

// String formats the range the way ParseRange reads it.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s %s]",
		strconv.FormatFloat(r.Min, 'g', -1, 64),
		strconv.FormatFloat(r.Max, 'g', -1, 64))
}

// ParseRange parses a value string from effect configuration.
// Supports:
//   - Fixed value: "1500" → [1500 1500]
//   - Range: "[0.7 0.9]" → [0.7 0.9]
//   - Single bracketed value: "[3]" → [3 3]
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unterminated range %q", s)
		}
		parts := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"))
		switch len(parts) {
		case 1:
			v, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range value %q: %w", s, err)
			}
			return Fixed(v), nil
		case 2:
			min, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range min %q: %w", s, err)
			}
			max, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				return Range{}, fmt.Errorf("invalid range max %q: %w", s, err)
			}
			if min > max {
				return Range{}, fmt.Errorf("range %q has min > max", s)
			}
			return Span(min, max), nil
		default:
			return Range{}, fmt.Errorf("range %q must have one or two values", s)
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Range{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return Fixed(v), nil
}

// UnmarshalYAML accepts both plain numbers and "[min max]" strings.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar, got kind %d", node.Line, node.Kind)
	}
	parsed, err := ParseRange(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML writes the range back in its compact string form.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
