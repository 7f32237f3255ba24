package exporting

import (
	"chat-export/domain"
	"chat-export/errors"
	"chat-export/mocks"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sourceOf(ctrl *gomock.Controller, messages ...domain.Message) *mocks.MockMessageSource {
	source := mocks.NewMockMessageSource(ctrl)
	source.EXPECT().
		IterateMessages(gomock.Any(), "general", domain.Range{}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ domain.Range, fn func(domain.Message) error) error {
			for _, m := range messages {
				if err := fn(m); err != nil {
					return err
				}
			}
			return nil
		})
	return source
}

func TestExport_StreamsEverything(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	w, _, sink := newTestWriter()
	source := sourceOf(ctrl, at("A", 0), at("A", 1), at("A", 2), at("B", 3))

	result, err := Export(ctx, log, source, w, domain.ExportRequest{Channel: domain.Channel{ID: "general"}})

	req.NoError(err)
	req.Equal(int64(4), result.MessageCount)
	req.Equal(int64(2), result.GroupCount)
	req.Equal([]string{"pre(Dark,0)", "group(A@0,A@1,A@2)", "group(B@3)", "post(4)"}, sink.lines())
	req.Equal(1, sink.releases)
}

func TestExport_ClosesWriterOnSourceFailure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockMessageWriter(ctrl)
	source := mocks.NewMockMessageSource(ctrl)
	unreachable := stderrors.New("storage unreachable")

	gomock.InOrder(
		writer.EXPECT().WritePreamble(gomock.Any()).Return(nil),
		source.EXPECT().IterateMessages(gomock.Any(), "general", gomock.Any(), gomock.Any()).Return(unreachable),
		writer.EXPECT().Close().Return(nil),
	)

	_, err := Export(ctx, log, source, writer, domain.ExportRequest{Channel: domain.Channel{ID: "general"}})
	req.ErrorIs(err, unreachable)
}

func TestExport_ClosesWriterOnWriteFailure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockMessageWriter(ctrl)
	source := sourceOf(ctrl, at("A", 0), at("B", 1), at("C", 2))
	full := stderrors.New("disk full")

	gomock.InOrder(
		writer.EXPECT().WritePreamble(gomock.Any()).Return(nil),
		writer.EXPECT().WriteMessage(gomock.Any(), gomock.Any()).Return(nil),
		writer.EXPECT().WriteMessage(gomock.Any(), gomock.Any()).Return(full),
		writer.EXPECT().Close().Return(stderrors.New("already broken")),
	)

	result, err := Export(ctx, log, source, writer, domain.ExportRequest{Channel: domain.Channel{ID: "general"}})

	// Then the first failure wins over the close failure
	req.ErrorIs(err, full)
	req.Equal(int64(1), result.MessageCount)
}

func TestExport_ReportsCloseFailure(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	writer := mocks.NewMockMessageWriter(ctrl)
	source := sourceOf(ctrl)
	flush := stderrors.New("flush failed")

	writer.EXPECT().WritePreamble(gomock.Any()).Return(nil)
	writer.EXPECT().WritePostamble(gomock.Any()).Return(nil)
	writer.EXPECT().Close().Return(flush)

	_, err := Export(ctx, log, source, writer, domain.ExportRequest{Channel: domain.Channel{ID: "general"}})
	req.ErrorIs(err, flush)
}

func TestNewMessageWriter(t *testing.T) {
	req := require.New(t)
	sink := &memorySink{}
	renderer := &recordingRenderer{}

	w, err := NewMessageWriter(sink, renderer, domain.ExportRequest{Format: domain.HTMLLight})
	req.NoError(err)
	req.IsType(&HTMLMessageWriter{}, w)

	_, err = NewMessageWriter(sink, renderer, domain.ExportRequest{Format: "PlainText"})
	req.ErrorIs(err, errors.ErrUnsupportedFormat)
}
