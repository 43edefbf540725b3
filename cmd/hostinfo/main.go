package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lucheng0127/hostid/internal/config"
	"github.com/lucheng0127/hostid/internal/ident"
	"github.com/lucheng0127/hostid/internal/report"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	resolver := ident.NewResolver(ident.OSProvider{}, cfg.QueryTimeout(), logger)
	fields := newFields(resolver, logger)

	ctx := context.Background()
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		err = fields.PrintAll(ctx, os.Stdout)

	case len(args) == 1:
		if args[0] == "help" || args[0] == "--help" {
			usage(os.Stdout, fields)
			return
		}
		err = fields.Print(ctx, os.Stdout, args[0])
		if errors.Is(err, report.ErrUnknownField) {
			fmt.Fprintf(os.Stderr, "hostinfo: unknown field %q\n\n", args[0])
			usage(os.Stderr, fields)
			os.Exit(2)
		}

	default:
		fmt.Fprintln(os.Stderr, "hostinfo: too many arguments")
		usage(os.Stderr, fields)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("hostinfo failed", zap.Error(err))
		os.Exit(1)
	}
}

// newFields registers every identity field the resolver can answer.
func newFields(resolver *ident.Resolver, logger *zap.Logger) *report.FieldSet {
	fields := report.NewFieldSet(logger)

	fields.Register("username", func(ctx context.Context) (string, error) {
		return resolver.Username()
	})
	fields.Register("realname", func(ctx context.Context) (string, error) {
		return resolver.RealName()
	})
	fields.Register("devicename", func(ctx context.Context) (string, error) {
		return resolver.DeviceName(ctx)
	})
	fields.Register("hostname", func(ctx context.Context) (string, error) {
		return resolver.Hostname(ctx)
	})
	fields.Register("distro", func(ctx context.Context) (string, error) {
		return resolver.Distro(ctx)
	})
	fields.Register("platform", func(ctx context.Context) (string, error) {
		return string(ident.CurrentPlatform()), nil
	})
	fields.Register("arch", func(ctx context.Context) (string, error) {
		return string(ident.CurrentArch()), nil
	})
	fields.Register("desktop", func(ctx context.Context) (string, error) {
		return resolver.DesktopEnv()
	})
	fields.Register("langs", func(ctx context.Context) (string, error) {
		tags, err := resolver.Langs()
		if err != nil {
			return "", err
		}
		names := make([]string, len(tags))
		for i, tag := range tags {
			names[i] = tag.String()
		}
		return strings.Join(names, ", "), nil
	})

	return fields
}

func usage(w *os.File, fields *report.FieldSet) {
	fmt.Fprintln(w, "Usage: hostinfo [FIELD]")
	fmt.Fprintln(w, "Print host and user identity. Without a field, prints everything.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fields:")
	for _, name := range fields.Names() {
		fmt.Fprintf(w, "    %s\n", name)
	}
}

// initLogger creates the logger, writing to stderr only.
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zapLevel
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
