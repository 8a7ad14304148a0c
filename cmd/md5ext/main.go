// Command md5ext forges MD5 digests with a length extension attack.
//
// Given the digest of secret || message and the combined byte length, it
// prints the bytes to append to message and the digest the verifier will
// compute for the extended message.
package main

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"github.com/markkurossi/tabulate"
	"github.com/zeebo/md5ext"
)

var log = slog.Disabled

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	ConfigFile string  `short:"C" long:"configfile" description:"load option defaults from an INI file"`
	Length     int     `short:"l" long:"length" description:"byte length of the hashed message, secret included"`
	Digest     string  `short:"d" long:"digest" description:"known MD5 digest of the hashed message (32 hex characters)"`
	Append     string  `short:"a" long:"append" description:"text to append"`
	AppendHex  string  `short:"x" long:"appendhex" description:"hex encoded bytes to append; overrides --append"`
	Verify     *string `long:"verify" description:"hash the given text with this package and the standard library, then exit"`
	Plain      bool    `short:"p" long:"plain" description:"print key: value lines instead of a table"`
	DebugLevel string  `long:"debuglevel" description:"logging level {trace, debug, info, warn, error, critical, off}"`
}

// loadConfig parses the command line, folding in an INI file when one is
// named. Command line values win over the file.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	cfg := config{
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS]"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, parser, err
	}

	if cfg.ConfigFile != "" {
		if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, parser, fmt.Errorf("unable to load %s: %w",
				cfg.ConfigFile, err)
		}
		if _, err := parser.ParseArgs(args); err != nil {
			return nil, parser, err
		}
	}

	return &cfg, parser, nil
}

func setupLogging(w io.Writer, level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("invalid debug level %q", level)
	}

	backend := slog.NewBackend(w)
	l := backend.Logger("MD5X")
	l.SetLevel(lvl)

	log = l
	md5ext.UseLogger(l)
	return nil
}

// suffix returns the bytes to append as configured.
func (cfg *config) suffix() ([]byte, error) {
	if cfg.AppendHex != "" {
		b, err := hex.DecodeString(cfg.AppendHex)
		if err != nil {
			return nil, fmt.Errorf("invalid --appendhex: %w", err)
		}
		return b, nil
	}
	return []byte(cfg.Append), nil
}

type result struct {
	label string
	value string
}

func printResults(w io.Writer, plain bool, results []result) {
	if plain {
		for _, r := range results {
			fmt.Fprintf(w, "%s: %s\n", r.label, r.value)
		}
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Field").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)
	for _, r := range results {
		row := tab.Row()
		row.Column(r.label)
		row.Column(r.value)
	}
	tab.Print(w)
}

// verify compares Sum128 with crypto/md5 on text, which may be empty.
func verify(w io.Writer, text string, plain bool) {
	local := md5ext.Sum128([]byte(text))
	std := md5.Sum([]byte(text))

	printResults(w, plain, []result{
		{"Manual", hex.EncodeToString(local[:])},
		{"Stdlib", hex.EncodeToString(std[:])},
		{"Match", fmt.Sprint(local == std)},
	})
}

func attack(w io.Writer, cfg *config) error {
	suffix, err := cfg.suffix()
	if err != nil {
		return err
	}

	log.Infof("Extending a %d byte message by %d bytes", cfg.Length,
		len(suffix))
	f, err := md5ext.Extend(cfg.Length, cfg.Digest, suffix)
	if err != nil {
		return err
	}

	printResults(w, cfg.Plain, []result{
		{"Extend text", fmt.Sprintf("%q", f.Encode(md5ext.Raw))},
		{"Extend text (URL encoded)", f.Encode(md5ext.URL)},
		{"Extend text (Base64)", f.Encode(md5ext.Base64)},
		{"Extend text (hex)", f.Encode(md5ext.Hex)},
		{"Final hash", f.Digest.String()},
	})
	return nil
}

func run(w io.Writer, cfg *config) error {
	if cfg.Verify != nil {
		verify(w, *cfg.Verify, cfg.Plain)
		return nil
	}
	return attack(w, cfg)
}

// exitCode maps a loadConfig error to the process exit status: 0 after
// --help, 2 for any other command line error and 1 for everything else.
func exitCode(err error) int {
	var e *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &e) && e.Type == flags.ErrHelp:
		return 0
	case errors.As(err, &e):
		return 2
	default:
		return 1
	}
}

func main() {
	cfg, parser, err := loadConfig(os.Args[1:])
	if err != nil {
		// go-flags prints its own parse errors, but not wrapped ones
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}

	if err := setupLogging(os.Stderr, cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(parser)
	}

	if cfg.Verify == nil && cfg.Digest == "" {
		fmt.Fprintln(os.Stderr, "either --digest or --verify is required")
		usage(parser)
	}

	if err := run(os.Stdout, cfg); err != nil {
		fatalf("%v\n", err)
	}
}
