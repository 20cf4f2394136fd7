// identicon prints and renders 19-dot identicons.
//
// Usage:
//
//	identicon [-format F] [-json] [-o file.png] [-size N] [seed...]
//	identicon explain [-format F] <seed>
//	identicon self [-dir DIR] [-user NAME] [-o file.png] [-size N]
//
// With no seeds on the command line, seeds are read one per line from stdin.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"identicon/internal/batch"
	"identicon/internal/cache"
	"identicon/internal/dot"
	"identicon/internal/identity"
	"identicon/internal/render"
	"identicon/internal/seed"
)

const (
	envUser     = "IDENTICON_USER"
	ss58Prefix  = 42 // generic Substrate
	defaultDir  = "./data"
	defaultSize = 72
)

var log = logging.Logger("identicon")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	args := os.Args[1:]
	var err error
	switch {
	case len(args) > 0 && args[0] == "explain":
		err = runExplain(args[1:], os.Stdout)
	case len(args) > 0 && args[0] == "self":
		err = runSelf(args[1:], os.Stdout)
	case len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help"):
		printUsage(os.Stdout)
	default:
		err = run(ctx, args, os.Stdin, os.Stdout)
	}
	if err != nil {
		fatal(err)
	}
}

type output struct {
	Seed       string   `json:"seed"`
	Foreground string   `json:"foreground"`
	Colors     []string `json:"colors"`
}

func newOutput(input string, icon dot.Icon) output {
	out := output{
		Seed:       input,
		Foreground: dot.Hex(icon.Foreground),
		Colors:     make([]string, len(icon.Colors)),
	}
	for i, c := range icon.Colors {
		out.Colors[i] = dot.Hex(c)
	}
	return out
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("identicon", flag.ContinueOnError)
	var (
		format  string
		asJSON  bool
		outPath string
		size    int
		workers int
		verbose bool
	)
	fs.StringVar(&format, "format", "text", "Seed encoding: text, hex, ss58, zbase32, peer, ed25519")
	fs.BoolVar(&asJSON, "json", false, "Print one JSON object per seed")
	fs.StringVar(&outPath, "o", "", "Render the first icon to this PNG file, - for stdout")
	fs.IntVar(&size, "size", defaultSize, "PNG size in pixels")
	fs.IntVar(&workers, "workers", 0, "Parallel derivations (0 = one per CPU)")
	fs.BoolVar(&verbose, "v", false, "Debug logging")
	fs.Usage = func() { printUsage(fs.Output()) }
	if err := fs.Parse(args); err != nil {
		return ignoreHelp(err)
	}
	setVerbose(verbose)

	f, err := seed.ParseFormat(format)
	if err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		if inputs, err = readLines(stdin); err != nil {
			return err
		}
	}

	seeds := make([][]byte, len(inputs))
	for i, in := range inputs {
		if seeds[i], err = seed.Parse(in, f); err != nil {
			return fmt.Errorf("seed %q: %w", in, err)
		}
	}

	c, err := cache.New(cache.DefaultSize)
	if err != nil {
		return err
	}
	icons, err := batch.Derive(ctx, c, seeds, workers)
	if err != nil {
		return err
	}
	stats := c.Stats()
	log.Debugf("derived %d icons (%d cached)", len(icons), stats.Hits)

	if outPath == "-" {
		if len(icons) == 0 {
			return nil
		}
		return writeIcon(stdout, outPath, icons[0], size)
	}

	enc := json.NewEncoder(stdout)
	for i, icon := range icons {
		out := newOutput(inputs[i], icon)
		if asJSON {
			if err := enc.Encode(out); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(stdout, "%s %s\n", out.Seed, strings.Join(out.Colors, " "))
	}

	if outPath != "" && len(icons) > 0 {
		return writeIcon(stdout, outPath, icons[0], size)
	}
	return nil
}

func runExplain(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	var format string
	fs.StringVar(&format, "format", "text", "Seed encoding")
	if err := fs.Parse(args); err != nil {
		return ignoreHelp(err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("explain takes exactly one seed")
	}
	f, err := seed.ParseFormat(format)
	if err != nil {
		return err
	}
	b, err := seed.Parse(fs.Arg(0), f)
	if err != nil {
		return err
	}

	d := dot.Explain(b)
	fmt.Fprintf(stdout, "seed:       %x\n", b)
	if addr, err := seed.EncodeSS58(ss58Prefix, b); err == nil {
		fmt.Fprintf(stdout, "ss58:       %s\n", addr)
	}
	fmt.Fprintf(stdout, "id:         %x\n", d.ID[:])
	fmt.Fprintf(stdout, "saturation: %.2f\n", d.Saturation)
	fmt.Fprintf(stdout, "scheme:     %s (selector %d of %d)\n", d.Scheme.Name, d.Selector, dot.TotalFreq())
	fmt.Fprintf(stdout, "rotation:   %d\n", d.Rotation)
	fmt.Fprintf(stdout, "foreground: %s\n", dot.Hex(d.Icon.Foreground))
	for i, c := range d.Icon.Colors {
		fmt.Fprintf(stdout, "dot %2d:     %s\n", i, dot.Hex(c))
	}
	return nil
}

func runSelf(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("self", flag.ContinueOnError)
	var (
		dir     string
		user    string
		outPath string
		size    int
	)
	fs.StringVar(&dir, "dir", defaultDir, "Directory holding identity.json")
	fs.StringVar(&user, "user", defaultUser(), "Username for a new identity")
	fs.StringVar(&outPath, "o", "", "Render the icon to this PNG file, - for stdout")
	fs.IntVar(&size, "size", defaultSize, "PNG size in pixels")
	if err := fs.Parse(args); err != nil {
		return ignoreHelp(err)
	}

	id, err := identity.LoadOrCreate(dir, user)
	if err != nil {
		return fmt.Errorf("load identity: %w", err)
	}
	b, err := id.Seed()
	if err != nil {
		return err
	}
	icon := dot.Derive(b)
	if outPath == "-" {
		return writeIcon(stdout, outPath, icon, size)
	}

	out := newOutput(id.DisplayName(), icon)
	fmt.Fprintf(stdout, "%s %s\n", out.Seed, strings.Join(out.Colors, " "))
	fmt.Fprintf(stdout, "user %s, peer %s\n", id.Username(), id.PeerID())
	if outPath != "" {
		return writeIcon(stdout, outPath, icon, size)
	}
	return nil
}

// writeIcon renders icon to path, or as raw PNG to stdout when path is "-".
func writeIcon(stdout io.Writer, path string, icon dot.Icon, size int) error {
	if path == "-" {
		return render.Encode(stdout, icon, size)
	}
	if err := render.WriteFile(path, icon, size); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

func defaultUser() string {
	if u := os.Getenv(envUser); u != "" {
		return u
	}
	return "anonymous"
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read seeds: %w", err)
	}
	return lines, nil
}

// ignoreHelp treats -h as success; the usage text is already printed.
func ignoreHelp(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func setVerbose(v bool) {
	if v {
		logging.SetAllLoggers(logging.LevelDebug)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `identicon - 19-dot identicons

USAGE:
    identicon [options] [seed...]
    identicon explain [-format F] <seed>
    identicon self [-dir DIR] [-user NAME] [-o file.png] [-size N]

OPTIONS:
    -format F     text (default), hex, ss58, zbase32, peer, ed25519
    -json         one JSON object per seed
    -o FILE       render the first icon as PNG (- writes it to stdout)
    -size N       PNG size in pixels (default 72)
    -workers N    parallel derivations (default: one per CPU)
    -v            debug logging

Seeds are read from stdin, one per line, when none are given.

EXAMPLES:
    identicon 0xb00adb8980766d75518dfa8efa139fe0d7bb5e4e
    identicon -format ss58 -o alice.png 5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY
    identicon explain -format hex d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d
    IDENTICON_USER=me identicon self -o me.png
`)
}
