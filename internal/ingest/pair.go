package ingest

import "fmt"

// PairError describes a Create request whose symbol tag does not match the
// engine's configured pair. The engine logs it and counts the request as
// rejected; it is not returned by Run, and the engine continues processing
// the rest of the stream.
type PairError struct {
	Expected string
	Found    string
}

func (e *PairError) Error() string {
	return fmt.Sprintf("ingest: pair mismatch: expected %q, found %q", e.Expected, e.Found)
}
