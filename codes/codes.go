// Package codes is the registry of OBD-II, UDS and GM LAN diagnostic constants: service
// identifiers, vehicle information codes and standard PIDs.
//
// Every value is a wire byte fixed by SAE J1979, ISO 14229 or GMW3110 and must never be
// renumbered. The three namespaces are distinct types so a PID cannot be used where a service
// is expected. Tables are built once at init and only read afterwards, so lookups are safe
// from any number of goroutines.
package codes

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Unknown is returned by the reverse lookups for bytes outside the catalogued set.
// Reserved and manufacturer specific codes are legitimate wire input, so this is not an error.
const Unknown = "UNKNOWN"

const (
	PositiveResponseOffset byte = 0x40
	NegativeResponseByte   byte = byte(ServiceNegativeResponse)
)

type code interface {
	~byte
}

func invert[C code](names map[C]string) map[string]C {
	byName := make(map[string]C, len(names))
	for c, name := range names {
		byName[name] = c
	}
	return byName
}

func sortedKeys[C code](names map[C]string) []C {
	out := make([]C, 0, len(names))
	for c := range names {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b C) int { return cmp.Compare(a, b) })
	return out
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func unknownString(b byte) string {
	return fmt.Sprintf("%s(0x%02X)", Unknown, b)
}
