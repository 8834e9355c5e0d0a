package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"calmh.dev/nmea"
	"calmh.dev/nmea/internal/fixlog"
	"calmh.dev/nmea/internal/logging"
	"github.com/alecthomas/kong"
	"go.bug.st/serial"
)

type CLI struct {
	Files  []string `arg:"" optional:"" type:"existingfile" help:"Files to decode; standard input if none"`
	Serial string   `help:"Read from this serial port instead"`
	Baud   int      `default:"9600" help:"Serial port baud rate"`

	Format  string `default:"text" enum:"text,json,yaml" help:"Output format (text, json, yaml)"`
	Codes   bool   `help:"List the supported message codes and exit"`
	DB      string `help:"Record position fixes in this SQLite database"`
	Summary bool   `default:"true" negatable:"" help:"Print statistics to stderr when done"`

	Century int  `default:"2000" help:"Base year for two-digit dates"`
	Lax     bool `help:"Accept sentences without CRLF terminator"`

	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)
	if err := logging.Setup(cli.LogLevel); err != nil {
		kctx.Fatalf("%v", err)
	}

	if cli.Codes {
		listCodes(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []nmea.Option{nmea.WithCentury(cli.Century)}
	if cli.Lax {
		opts = append(opts, nmea.WithLaxTerminator())
	}
	d := newDumper(os.Stdout, cli.Format, nmea.NewDecoder(opts...))

	if cli.DB != "" {
		st, err := fixlog.Open(cli.DB)
		if err != nil {
			slog.Error("Failed to open fix log", "path", cli.DB, "error", err)
			os.Exit(1)
		}
		defer st.Close()
		d.fixes = st
	}

	if err := run(ctx, &cli, d); err != nil {
		slog.Error("Decoding failed", "error", err)
		os.Exit(1)
	}
	if cli.Summary {
		d.stats.write(os.Stderr)
	}
}

func run(ctx context.Context, cli *CLI, d *dumper) error {
	switch {
	case cli.Serial != "":
		fd, err := serial.Open(cli.Serial, &serial.Mode{
			BaudRate: cli.Baud,
			Parity:   serial.NoParity,
			DataBits: 8,
			StopBits: serial.OneStopBit,
		})
		if err != nil {
			return fmt.Errorf("open %s: %w", cli.Serial, err)
		}
		go func() {
			<-ctx.Done()
			fd.Close()
		}()
		return d.dump(ctx, fd)

	case len(cli.Files) == 0:
		return d.dump(ctx, os.Stdin)

	default:
		for _, name := range cli.Files {
			if err := dumpFile(ctx, d, name); err != nil {
				return err
			}
		}
		return nil
	}
}

func dumpFile(ctx context.Context, d *dumper, name string) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()
	if err := d.dump(ctx, fd); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func listCodes(w io.Writer) {
	for _, code := range nmea.SupportedCodes() {
		fmt.Fprintf(w, "%s  %s\n", code, nmea.Describe(code))
	}
}
