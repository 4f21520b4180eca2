// Package ritualctl parses ritualctl flags and issues one call against a
// running ritual server.
package ritualctl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	ritualpb "github.com/withmystar/ritual/api/gen/go/ritual"
	grpcmeta "github.com/withmystar/ritual/internal/api/grpc/metadata"
	entrypoint "github.com/withmystar/ritual/internal/platform/cmd"
	apperrors "github.com/withmystar/ritual/internal/platform/errors"
	platformgrpc "github.com/withmystar/ritual/internal/platform/grpc"
	"github.com/withmystar/ritual/internal/platform/logging"
	"github.com/withmystar/ritual/internal/platform/timeouts"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Command names accepted after the global flags.
const (
	CommandPerform = "perform"
	CommandSync    = "sync"
	CommandHealth  = "health"
)

// Config holds ritualctl command configuration.
type Config struct {
	Addr      string `env:"RITUAL_ADDR" envDefault:"[::1]:50051"`
	Locale    string `env:"RITUAL_LOCALE"`
	Verbose   bool   `env:"RITUAL_CTL_VERBOSE"`
	Command   string
	Name      string
	Traits    []string
	RequestID string
}

// traitList collects repeated -trait flags.
type traitList []string

func (l *traitList) String() string {
	return strings.Join(*l, ",")
}

func (l *traitList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// ParseConfig parses environment, global flags, and the subcommand with its
// own flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "ritual server address")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "preferred locale for error messages")
	fs.StringVar(&cfg.RequestID, "request-id", "", "request ID to send with the call")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log dial progress to stderr")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("command is required: perform, sync or health")
	}
	cfg.Command = rest[0]

	sub := flag.NewFlagSet(cfg.Command, flag.ContinueOnError)
	sub.SetOutput(fs.Output())
	switch cfg.Command {
	case CommandPerform:
		sub.StringVar(&cfg.Name, "name", "", "name of the ritual to perform")
	case CommandSync:
		sub.Var((*traitList)(&cfg.Traits), "trait", "trait to synchronize (repeatable)")
	case CommandHealth:
	default:
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if err := sub.Parse(rest[1:]); err != nil {
		return Config{}, err
	}
	if sub.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments for %s: %v", cfg.Command, sub.Args())
	}
	return cfg, nil
}

// Run dials the ritual server, executes cfg.Command, and prints the result to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := logging.Discard()
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceRitualCtl, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		conn, err := platformgrpc.DialWithHealth(
			ctx,
			nil,
			cfg.Addr,
			ritualpb.RitualService_ServiceDesc.ServiceName,
			timeouts.GRPCDial,
			logger,
			platformgrpc.DefaultClientDialOptions()...,
		)
		if err != nil {
			return err
		}
		defer conn.Close()

		callCtx, cancel := context.WithTimeout(outgoingContext(ctx, cfg), timeouts.GRPCRequest)
		defer cancel()
		return execute(callCtx, conn, cfg, out)
	})
}

func outgoingContext(ctx context.Context, cfg Config) context.Context {
	var pairs []string
	if locale := strings.TrimSpace(cfg.Locale); locale != "" {
		pairs = append(pairs, apperrors.LocaleHeader, locale)
	}
	if requestID := strings.TrimSpace(cfg.RequestID); requestID != "" {
		pairs = append(pairs, grpcmeta.RequestIDHeader, requestID)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

func execute(ctx context.Context, conn *grpc.ClientConn, cfg Config, out io.Writer) error {
	client := ritualpb.NewRitualServiceClient(conn)
	switch cfg.Command {
	case CommandPerform:
		resp, err := client.PerformRitual(ctx, &ritualpb.RitualRequest{Name: cfg.Name})
		if err != nil {
			return fmt.Errorf("perform ritual: %w", err)
		}
		_, err = fmt.Fprintln(out, resp.GetMessage())
		return err
	case CommandSync:
		resp, err := client.SyncTraits(ctx, &ritualpb.SyncTraitsRequest{Traits: cfg.Traits})
		if err != nil {
			return fmt.Errorf("sync traits: %w", err)
		}
		_, err = fmt.Fprintln(out, resp.GetMessage())
		return err
	case CommandHealth:
		// DialWithHealth already waited for SERVING.
		_, err := fmt.Fprintln(out, "SERVING")
		return err
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}
