package tui

import "go.trai.ch/btl/internal/core/domain"

// MsgLine carries one relayed BuildTools output line.
type MsgLine struct {
	Text string
}

// MsgRefresh draws the lines buffered since the last redraw.
type MsgRefresh struct{}

// MsgExited reports the end of the launch.
type MsgExited struct {
	Status domain.ExitStatus
	Err    error
}
