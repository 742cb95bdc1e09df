package codes

import (
	"strings"
)

// Namespace tags which table a code belongs to, for callers that only have a byte and a string.
type Namespace string

const (
	NamespaceService     Namespace = "service"
	NamespaceVehicleInfo Namespace = "vehicle-info"
	NamespacePID         Namespace = "pid"
)

// Entry is one row of a namespace table.
type Entry struct {
	Namespace Namespace
	Value     byte
	Name      string
	Label     string
}

var namespaceAliases = map[string]Namespace{
	"service":      NamespaceService,
	"services":     NamespaceService,
	"sid":          NamespaceService,
	"vehicle-info": NamespaceVehicleInfo,
	"vehicleinfo":  NamespaceVehicleInfo,
	"vi":           NamespaceVehicleInfo,
	"pid":          NamespacePID,
	"pids":         NamespacePID,
}

// ParseNamespace accepts the canonical namespace names and their short aliases (sid, vi, pids).
func ParseNamespace(s string) (Namespace, error) {
	if ns, ok := namespaceAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ns, nil
	}
	return "", &UnknownNamespaceError{Namespace: s}
}

// Value resolves a symbolic name within ns.
func Value(ns Namespace, name string) (byte, error) {
	switch ns {
	case NamespaceService:
		c, err := ServiceCodeValue(name)
		return byte(c), err
	case NamespaceVehicleInfo:
		c, err := VehicleInfoCodeValue(name)
		return byte(c), err
	case NamespacePID:
		c, err := PIDCodeValue(name)
		return byte(c), err
	default:
		return 0, &UnknownNamespaceError{Namespace: string(ns)}
	}
}

// Name is the namespace tagged reverse lookup. Unrecognised bytes yield Unknown.
func Name(ns Namespace, b byte) (string, error) {
	switch ns {
	case NamespaceService:
		return NameForServiceCode(b), nil
	case NamespaceVehicleInfo:
		return NameForVehicleInfoCode(b), nil
	case NamespacePID:
		return NameForPIDCode(b), nil
	default:
		return "", &UnknownNamespaceError{Namespace: string(ns)}
	}
}

// Entries lists the catalogued codes of ns in ascending order.
func Entries(ns Namespace) ([]Entry, error) {
	var entries []Entry
	switch ns {
	case NamespaceService:
		for _, c := range AllServiceCodes() {
			entries = append(entries, Entry{Namespace: ns, Value: byte(c), Name: c.String(), Label: c.Label()})
		}
	case NamespaceVehicleInfo:
		for _, c := range AllVehicleInfoCodes() {
			entries = append(entries, Entry{Namespace: ns, Value: byte(c), Name: c.String(), Label: c.Label()})
		}
	case NamespacePID:
		for _, c := range AllPIDCodes() {
			entries = append(entries, Entry{Namespace: ns, Value: byte(c), Name: c.String(), Label: c.Label()})
		}
	default:
		return nil, &UnknownNamespaceError{Namespace: string(ns)}
	}
	return entries, nil
}
