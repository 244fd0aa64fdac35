// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package edition infers The New Atlantis issue number from a season and year.
package edition

import (
	"strconv"
	"strings"
)

// Calibration for the quarterly schedule: the Winter 2025 issue carried
// number 79, and each published year holds four sequential issues.
const (
	baseYear         = 2025
	baseWinterNumber = 79
	issuesPerYear    = 4
)

// seasonOffsets orders the four issues within a publication year.
// Autumn is accepted as a synonym for fall.
var seasonOffsets = map[string]int{
	"winter": 0,
	"spring": 1,
	"summer": 2,
	"fall":   3,
	"autumn": 3,
}

// Infer returns the issue number for a season and year. The season is
// matched case-insensitively; ok is false when it is not one of the
// recognized names. The formula holds backward in time as well, so years
// before the calibration point yield smaller numbers.
func Infer(season string, year int) (n int, ok bool) {
	offset, ok := seasonOffsets[strings.ToLower(strings.TrimSpace(season))]
	if !ok {
		return 0, false
	}
	return baseWinterNumber + (year-baseYear)*issuesPerYear + offset, true
}

// InferFromStrings is Infer for raw text captures. It rejects empty input
// and non-numeric years instead of guessing.
func InferFromStrings(season, year string) (int, bool) {
	if season == "" || year == "" {
		return 0, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, false
	}
	return Infer(season, y)
}
