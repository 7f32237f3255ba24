package exporting

import (
	"chat-export/contract"
	"chat-export/domain"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type ExportResult struct {
	MessageCount int64
	GroupCount   int64
	Duration     time.Duration
}

type statsProvider interface {
	Stats() Stats
}

// Export streams every message of the requested channel through the writer.
// The writer is closed on every exit path. A close failure is only reported
// when the export itself succeeded.
func Export(ctx context.Context, log *slog.Logger, source contract.MessageSource, writer contract.MessageWriter, request domain.ExportRequest) (result ExportResult, err error) {
	start := time.Now()
	defer func() {
		if closeErr := writer.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close writer: %w", closeErr)
			} else {
				log.Warn("Writer close failed after export error", "error", closeErr)
			}
		}
		result.Duration = time.Since(start)
	}()

	if err = writer.WritePreamble(ctx); err != nil {
		return result, err
	}

	err = source.IterateMessages(ctx, request.Channel.ID, request.Range, func(message domain.Message) error {
		if err := writer.WriteMessage(ctx, message); err != nil {
			return err
		}
		result.MessageCount++
		return nil
	})
	if err != nil {
		return result, err
	}

	if err = writer.WritePostamble(ctx); err != nil {
		return result, err
	}

	if s, ok := writer.(statsProvider); ok {
		result.GroupCount = s.Stats().GroupCount
	}
	log.Info("Export completed",
		"channel", request.Channel.ID,
		"messages", result.MessageCount,
		"groups", result.GroupCount)
	return result, nil
}
