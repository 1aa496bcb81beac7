package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrWitnessFailed appears when the method must be called
// using a certain account but was not.
var ErrWitnessFailed = "witness check failed"

// CheckWitness checks the witness of the passed caller.
// It panics with ErrWitnessFailed message on fail.
func CheckWitness(caller []byte) {
	CheckWitnessWithMessage(caller, ErrWitnessFailed)
}

// CheckWitnessWithMessage checks the witness of the passed caller and panics
// with the given message on fail. Contracts use it to keep their own failure
// taxonomy in panic texts.
func CheckWitnessWithMessage(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
