package tinystr

import "go.trai.ch/zerr"

// ErrTooLong is returned by every construction path when the content would
// exceed MaxLen bytes. It is the type's only recoverable failure; allocator
// exhaustion is fatal, matching ordinary string allocation.
var ErrTooLong = zerr.New("string was too long to be stored as a tinystr.String (max 256 bytes)")
