package fuzz

import (
	"strings"

	"gitlab.com/zzsleep/zz/helpers/timespec"
)

// Fuzz feeds arbitrary argument vectors through the specification parser.
// Parsing must classify the input or fail, never panic, and must be
// deterministic.
func Fuzz(data []byte) int {
	args := strings.Fields(string(data))

	spec, err := timespec.Parse(args)
	if err != nil {
		return 0
	}
	if spec == nil {
		panic("nil specification without error")
	}

	again, err := timespec.Parse(args)
	if err != nil || again.String() != spec.String() {
		panic("parse is not deterministic")
	}

	return 1
}
