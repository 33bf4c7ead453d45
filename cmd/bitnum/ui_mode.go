package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode selects the batch progress display.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// autoUIMinItems: для одной строки прогресс только мешает.
const autoUIMinItems = 2

func readUIMode(value string) (uiMode, error) {
	switch m := uiMode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI decides whether a batch of items gets the progress view.
// The view draws on stderr, so auto needs stderr to be a terminal; results
// still go to stdout and may be piped.
func shouldUseTUI(mode uiMode, quiet bool, items int) bool {
	if items == 0 {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return !quiet && items >= autoUIMinItems && isTerminal(os.Stderr)
}
