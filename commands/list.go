package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"diagcodes/codes"
)

// RunList prints every catalogued code of a namespace.
func RunList(namespace string, w io.Writer) error {
	ns, err := codes.ParseNamespace(namespace)
	if err != nil {
		return err
	}
	entries, err := codes.Entries(ns)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tNAME\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(tw, "0x%02X\t%s\t%s\n", e.Value, e.Name, e.Label)
	}
	return tw.Flush()
}

// RunPending prints the PIDs known by description only.
func RunPending(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tDESCRIPTION")
	for _, pid := range codes.PendingPIDCodes() {
		desc, _ := codes.PIDDescription(pid)
		fmt.Fprintf(tw, "0x%02X\t%s\n", pid, desc)
	}
	return tw.Flush()
}
