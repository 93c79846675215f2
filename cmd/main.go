package main

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"os/signal"
	"syscall"
	"udp-chat/contract"
	"udp-chat/errors"
	"udp-chat/internal"
	"udp-chat/moderation"
	"udp-chat/observability"
	"udp-chat/repositories"
	"udp-chat/runtime"
	"udp-chat/runtime/workers"
	"udp-chat/sink"
	"udp-chat/transport"
	"udp-chat/ui"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

// Exit codes to provide meaningful status to the shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run(os.Args[1:])
	switch {
	case stdErrors.Is(err, errors.ErrInvalidPort):
		fmt.Fprintln(os.Stderr, usage)
	case err != nil:
		fmt.Fprintf(os.Stderr, "udp-chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component, blocks on the input loop and releases resources in reverse order.
func run(args []string) (int, error) {
	// 1. Arguments & Configuration
	port, err := parsePort(args)
	if err != nil {
		return exitConfig, err
	}

	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, _ := internal.CharacterRune(config.CharReplacement)

	log, closer, err := internal.NewLogger(config)
	if err != nil {
		return exitConfig, err
	}
	defer func() { _ = closer.Close() }()

	// 2. Socket
	counters := observability.NewCounters()
	host := netip.MustParseAddr(config.BindHost)
	endpoint, err := transport.Bind(host, port, config.ReceiveBufferSize, counters, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = endpoint.Close() }()

	// 3. Optional archive & moderation
	var sinks []contract.EntrySink
	if config.ArchivePath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.ArchivePath).WithLoggingLevel(badger.ERROR))
		if err != nil {
			return exitRuntime, fmt.Errorf("archive opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing archive...")
			_ = db.Close()
		}()
		repository := repositories.NewTranscriptRepository(db, log, config.ArchiveLimit)
		sinks = append(sinks, sink.NewArchiveSink(repository, log))
	}

	history := runtime.NewHistory()
	terminal := ui.NewTerminal(os.Stdout, config.Colours, log)
	receiver := workers.NewReceiverWorker(endpoint, history, terminal, log).
		WithSinks(config.SinkTimeout, sinks...)

	if words := moderation.ParseWords(config.CensoredWords); len(words) > 0 {
		moderator, err := moderation.NewModerator(words, charReplacement)
		if err != nil {
			return exitConfig, fmt.Errorf("moderation setup failed: %w", err)
		}
		receiver.WithModerator(moderator)
		log.Info(fmt.Sprintf("%d censored words loaded", len(words)))
	}

	// 4. Session & Orchestration
	session := runtime.NewSession(log, endpoint, runtime.NewRegistry(), history,
		terminal, counters, observability.ProcessStats)
	background := []contract.Worker{receiver}
	if config.ReportInterval > 0 {
		background = append(background,
			workers.NewReporterWorker(counters, observability.ProcessStats, config.ReportInterval, log))
	}
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log, config.RestartInterval), session, background...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Screen
	if err := terminal.EnterAlternateScreen(); err != nil {
		return exitRuntime, err
	}
	defer func() { _ = terminal.LeaveAlternateScreen() }()

	orchestrator.Start(ctx)
	log.Info("Session started", slog.Int("port", int(endpoint.LocalPort())))
	err = orchestrator.Run(ctx, os.Stdin)
	orchestrator.Stop()
	if err != nil {
		return exitRuntime, err
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}
