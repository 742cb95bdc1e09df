package commands

import (
	"fmt"
	"io"

	"diagcodes/codes"
	"diagcodes/utils"
)

// RunLookup prints the wire byte of a symbolic name.
func RunLookup(namespace, name string, w io.Writer) error {
	ns, err := codes.ParseNamespace(namespace)
	if err != nil {
		return err
	}
	v, err := codes.Value(ns, name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s = 0x%02X (%s)\n", normalizedName(ns, v), v, label(ns, v))
	return err
}

// RunName prints the symbolic name of a wire byte. Unknown bytes are not an error.
func RunName(namespace, value string, w io.Writer) error {
	ns, err := codes.ParseNamespace(namespace)
	if err != nil {
		return err
	}
	b, err := utils.ParseByte(value)
	if err != nil {
		return err
	}
	name, err := codes.Name(ns, b)
	if err != nil {
		return err
	}
	if name != codes.Unknown {
		_, err = fmt.Fprintf(w, "0x%02X %s (%s)\n", b, name, label(ns, b))
		return err
	}
	if ns == codes.NamespacePID {
		if desc, ok := codes.PIDDescription(b); ok {
			_, err = fmt.Fprintf(w, "0x%02X %s (pending: %s)\n", b, name, desc)
			return err
		}
	}
	_, err = fmt.Fprintf(w, "0x%02X %s\n", b, name)
	return err
}

func normalizedName(ns codes.Namespace, b byte) string {
	name, _ := codes.Name(ns, b)
	return name
}

func label(ns codes.Namespace, b byte) string {
	switch ns {
	case codes.NamespaceService:
		return codes.ServiceCode(b).Label()
	case codes.NamespaceVehicleInfo:
		return codes.VehicleInfoCode(b).Label()
	case codes.NamespacePID:
		return codes.PIDCode(b).Label()
	}
	return fmt.Sprintf("0x%02X", b)
}
