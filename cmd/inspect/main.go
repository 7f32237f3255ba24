package main

import (
	"chat-export/domain"
	"chat-export/storage"
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	channelID := flag.String("channel", "", "Channel to list")
	limit := flag.Int("limit", 50, "Maximum number of messages to list, 0 for all")
	flag.Parse()
	if *channelID == "" {
		log.Fatal("-channel is required")
	}

	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := storage.NewMessageRepository(db, slog.Default())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Timestamp", "ID", "Author", "Content", "Attachments"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	listed := 0
	err = repository.IterateMessages(context.Background(), *channelID, domain.Range{}, func(m domain.Message) error {
		if *limit > 0 && listed == *limit {
			return errLimitReached
		}
		listed++
		table.Append([]string{
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.ID.String()[:8],
			m.Author.FullName(),
			truncate(m.Content, 60),
			strconv.Itoa(len(m.Attachments)),
		})
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		log.Fatal(err)
	}
	table.Render()
}

var errLimitReached = errors.New("limit reached")

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
