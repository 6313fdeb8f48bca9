// Package fetch implements the request lifecycle shared by every query
// site: Idle -> InProgress -> Success | Failure, re-entering InProgress on
// each new fetch. Each fetch is tagged with a monotonically increasing
// sequence number and only the latest one may change state.
package fetch

import "fmt"

// Status is the lifecycle state of a tracker
type Status int

const (
	Idle Status = iota
	InProgress
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case InProgress:
		return "IN_PROGRESS"
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Settled reports whether the last issued fetch has completed
func (s Status) Settled() bool {
	switch s {
	case Success, Failure:
		return true
	case Idle, InProgress:
		return false
	default:
		return false
	}
}
