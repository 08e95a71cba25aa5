package model

import (
	"fmt"
	"strings"
)

// SizeProfile scales fonts, image dimensions, borders and padding uniformly.
type SizeProfile string

const (
	SizeSmall  SizeProfile = "small"
	SizeMedium SizeProfile = "medium"
	SizeLarge  SizeProfile = "large"
)

// DefaultSize is used when no size profile was chosen.
const DefaultSize = SizeMedium

var sizeOrder = []SizeProfile{SizeSmall, SizeMedium, SizeLarge}

var sizeScales = map[SizeProfile]float64{
	SizeSmall:  0.85,
	SizeMedium: 1.0,
	SizeLarge:  1.2,
}

// SizeProfiles returns the profiles from smallest to largest.
func SizeProfiles() []SizeProfile {
	return append([]SizeProfile(nil), sizeOrder...)
}

// Valid reports whether s is a known profile.
func (s SizeProfile) Valid() bool {
	_, ok := sizeScales[s]
	return ok
}

// Scale is the multiplier applied to pixel dimensions. Unknown profiles
// scale like DefaultSize.
func (s SizeProfile) Scale() float64 {
	if scale, ok := sizeScales[s]; ok {
		return scale
	}
	return sizeScales[DefaultSize]
}

func (s SizeProfile) String() string {
	return string(s)
}

// ParseSizeProfile resolves a profile name case-insensitively. An empty name
// yields DefaultSize.
func ParseSizeProfile(name string) (SizeProfile, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return DefaultSize, nil
	}
	size := SizeProfile(trimmed)
	if !size.Valid() {
		return "", fmt.Errorf("model: unknown size profile %q", name)
	}
	return size, nil
}
