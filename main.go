// Command diagcodes looks up and decodes OBD-II, UDS and GM LAN diagnostic codes.
//
// Usage:
//
//	diagcodes <command> [flags] <args>
//
// Examples:
//
//	# Name to wire byte
//	diagcodes lookup service UDS_SECURITY_ACCESS
//
//	# Wire byte to name
//	diagcodes name pid 0C
//
//	# Decode a candump style frame
//	diagcodes decode -frame 7E8#037F2735
package main

import (
	"flag"
	"fmt"
	"os"

	"diagcodes/commands"
	"diagcodes/config"
	"diagcodes/logging"
)

const usage = `diagcodes - OBD-II / UDS / GM LAN code registry

Usage:
  diagcodes <command> [flags] <args>

Commands:
  lookup   Print the wire byte of a symbolic name    lookup <namespace> <NAME>
  name     Print the symbolic name of a wire byte    name <namespace> <byte>
  list     Print every code of a namespace           list <namespace>
  pending  Print PIDs known by description only
  decode   Decode a single frame or payload          decode [-id 7E8] <hex> | decode -frame 7E8#037F2735

Namespaces: service (sid), vehicle-info (vi), pid

Use "diagcodes <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "lookup":
		runLookup(args)
	case "name":
		runName(args)
	case "list":
		runList(args)
	case "pending":
		exitOnError(commands.RunPending(os.Stdout))
	case "decode":
		runDecode(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runLookup(args []string) {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: lookup <namespace> <NAME>")
		os.Exit(1)
	}
	exitOnError(commands.RunLookup(fs.Arg(0), fs.Arg(1), os.Stdout))
}

func runName(args []string) {
	fs := flag.NewFlagSet("name", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: name <namespace> <byte>")
		os.Exit(1)
	}
	exitOnError(commands.RunName(fs.Arg(0), fs.Arg(1), os.Stdout))
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: list <namespace>")
		os.Exit(1)
	}
	exitOnError(commands.RunList(fs.Arg(0), os.Stdout))
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `diagcodes decode - Decode a single frame or payload

Usage:
  diagcodes decode [-id 7E8] <hex payload>
  diagcodes decode -frame 7E8#037F2735

Flags:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a YAML config file")
	senderID := fs.String("id", "", "Sender CAN ID of the payload (default from config)")
	frame := fs.String("frame", "", "Frame in ID#DATA form, PCI byte included")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	exitOnError(err)

	l, err := logging.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Console)
	exitOnError(err)

	opts := commands.DecodeOptions{Frame: *frame, SenderID: *senderID}
	if opts.SenderID == "" {
		opts.SenderID = cfg.Decode.SenderID
	}
	if opts.Frame == "" {
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: payload or -frame required")
			fs.Usage()
			os.Exit(1)
		}
		opts.Payload = fs.Arg(0)
	}

	if err := commands.RunDecode(opts, os.Stdout, l); err != nil {
		l.WriteLog(fmt.Sprintf("error: %s", err.Error()), logging.LogLevelError)
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
