package domain

import "go.trai.ch/zerr"

var (
	// ErrNoCorporaSpecified is returned when a report is requested without
	// any corpus files.
	ErrNoCorporaSpecified = zerr.New("no corpus files specified")
)
