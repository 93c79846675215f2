package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"udp-chat/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", os.Getenv("ARCHIVE_PATH"), "Path to the badger archive")
	pageSize := flag.Int("page", 50, "Entries read per page")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("No archive given, use -db or ARCHIVE_PATH")
	}
	if err := validatePage(*pageSize); err != nil {
		log.Fatal(err)
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewTranscriptRepository(db, slog.Default(), pageSize)
	if err := render(os.Stdout, repository); err != nil {
		log.Fatal(err)
	}
}

func validatePage(page int) error {
	if page <= 0 {
		return fmt.Errorf("page must be greater than 0, got %d", page)
	}
	return nil
}

// render prints every archived entry, newest first, walking the archive page by page.
func render(w io.Writer, repository repositories.ITranscriptRepository) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"At", "From", "Lang", "ID", "Payload"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	var cursor *string
	for {
		entries, next, err := repository.GetEntries(cursor)
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		if len(entries) == 0 {
			break
		}
		for _, entry := range entries {
			displayID := entry.ID.String()[:8]
			table.Append([]string{
				entry.At.Format("2006-01-02 15:04:05"),
				entry.From,
				entry.Lang,
				displayID,
				strings.ReplaceAll(entry.Payload, "\n", "⏎"),
			})
		}
		cursor = next
	}
	table.Render()
	return nil
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
