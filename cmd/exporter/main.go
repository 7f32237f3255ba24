package main

import (
	"chat-export/exporting"
	"chat-export/internal"
	"chat-export/moderation"
	"chat-export/render"
	"chat-export/sink"
	"chat-export/storage"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Export terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (database, sink) ahead of os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	request, err := config.ExportRequest()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	redactor, err := buildRedactor(config)
	if err != nil {
		return exitConfig, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Message source (BadgerDB, read-only)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	repository := storage.NewMessageRepository(db, logger)

	// 3. Renderer, sink and writer
	renderer, err := render.NewTemplateBundle(logger, render.WithRedactor(redactor))
	if err != nil {
		return exitRuntime, err
	}
	output, err := sink.CreateFileSink(config.OutputPath)
	if err != nil {
		return exitRuntime, err
	}
	writer, err := exporting.NewMessageWriter(output, renderer, request,
		exporting.WithJoinThreshold(config.JoinThreshold),
		exporting.WithLogger(logger))
	if err != nil {
		_ = output.Release()
		return exitConfig, err
	}

	// 4. Export, the writer releases the sink on every path
	logger.Info("Starting export",
		"channel", request.Channel.ID,
		"format", request.Format,
		"output", config.OutputPath)
	result, err := exporting.Export(ctx, logger, repository, writer, request)
	if err != nil {
		return exitRuntime, fmt.Errorf("export of channel %s failed, %s may be incomplete: %w",
			request.Channel.ID, config.OutputPath, err)
	}

	printSummary(config, result)
	return exitOK, nil
}

func buildRedactor(config internal.Config) (*moderation.Redactor, error) {
	words := config.CensoredWordList()
	if len(words) == 0 {
		return nil, nil
	}
	mask, err := internal.CharacterRune(config.RedactionCharacter)
	if err != nil {
		return nil, err
	}
	return moderation.NewRedactor(words, mask)
}

func printSummary(config internal.Config, result exporting.ExportResult) {
	fmt.Println(color.New(color.BgBlack, color.FgGreen).Render("  ====== Export completed ======"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Channel", "Format", "Messages", "Groups", "Duration", "Output"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.Append([]string{
		config.ChannelID,
		config.ExportFormat,
		strconv.FormatInt(result.MessageCount, 10),
		strconv.FormatInt(result.GroupCount, 10),
		result.Duration.String(),
		config.OutputPath,
	})
	table.Render()
}

