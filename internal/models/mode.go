package models

import "fmt"

// SplitMode selects how a tab is divided.
type SplitMode string

const (
	// SplitModeProportional charges each person their own items plus an even
	// share of tax, tip and gratuity.
	SplitModeProportional SplitMode = "proportional"
	// SplitModeEven divides the whole bill equally by headcount.
	SplitModeEven SplitMode = "even"
)

// ParseSplitMode validates a mode name received from a client.
func ParseSplitMode(s string) (SplitMode, error) {
	switch SplitMode(s) {
	case SplitModeProportional, SplitModeEven:
		return SplitMode(s), nil
	default:
		return "", fmt.Errorf("unknown split mode: %q", s)
	}
}
