package aura

import (
	"fmt"
	"strings"
)

type Mode string

const (
	ModeBot      Mode = "bot"
	ModeLinked   Mode = "linked"
	ModeActivity Mode = "activity"
)

func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ModeBot, ModeLinked, ModeActivity:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q, choose 'bot', 'linked', or 'activity'", raw)
	}
}
