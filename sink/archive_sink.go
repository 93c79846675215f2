package sink

import (
	"context"
	"fmt"
	"log/slog"
	"udp-chat/domain"
	"udp-chat/repositories"

	"github.com/abadojack/whatlanggo"
)

// ArchiveSink keeps every received entry on disk, tagged with its detected language.
type ArchiveSink struct {
	repository repositories.ITranscriptRepository
	log        *slog.Logger
}

func NewArchiveSink(repository repositories.ITranscriptRepository, log *slog.Logger) ArchiveSink {
	return ArchiveSink{repository: repository, log: log}
}

func (a ArchiveSink) Consume(ctx context.Context, received domain.Received) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := toArchivedEntry(received)
	if err := a.repository.StoreEntry(entry); err != nil {
		return fmt.Errorf("archive entry %s: %w", received.ID, err)
	}
	a.log.Debug("Entry archived", "id", entry.ID, "lang", entry.Lang)
	return nil
}

func toArchivedEntry(received domain.Received) repositories.ArchivedEntry {
	return repositories.ArchivedEntry{
		ID:      received.ID,
		Payload: received.Payload,
		From:    received.From.String(),
		Lang:    DetectLanguage(received.Payload),
		At:      received.At,
	}
}

// DetectLanguage returns the ISO 639-1 code of text, empty when unreliable.
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
