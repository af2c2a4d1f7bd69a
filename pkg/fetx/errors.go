package fetx

import "errors"

// ErrParam reports a caller-supplied argument outside its valid domain.
var ErrParam = errors.New("fetx: invalid parameter")

// ErrRange reports a netlist or vector reference outside the bounds it
// must index into.
var ErrRange = errors.New("fetx: value out of range")

// ErrTimeout reports that Simulate exceeded its caller-supplied resolve
// iteration cap before the circuit settled. Session state remains
// consistent and may still be inspected.
var ErrTimeout = errors.New("fetx: resolve iteration limit exceeded")
