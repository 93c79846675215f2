//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const entryPrefix = "entry:"

type ITranscriptRepository interface {
	StoreEntry(entry ArchivedEntry) error
	GetEntries(cursor *string) ([]ArchivedEntry, *string, error)
}

// ArchivedEntry is a received datagram as kept on disk.
type ArchivedEntry struct {
	ID      uuid.UUID `json:"id"`
	Payload string    `json:"payload"`
	From    string    `json:"from"`
	Lang    string    `json:"lang"`
	At      time.Time `json:"at"`
}

type TranscriptRepository struct {
	db           *badger.DB
	log          *slog.Logger
	limitEntries *int
}

func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limitEntries *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limitEntries: limitEntries}
}

// StoreEntry persists an entry under "entry:{timestamp_padded}:{uuid}".
// The 19 digit padding keeps keys in chronological order, the uuid separates
// two datagrams received in the same nanosecond.
func (r TranscriptRepository) StoreEntry(entry ArchivedEntry) error {
	key := fmt.Sprintf("%s%019d:%s", entryPrefix, entry.At.UnixNano(), entry.ID)
	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetEntries returns entries newest first, starting after cursor when given.
// The returned cursor points at the last entry read and feeds the next page.
func (r TranscriptRepository) GetEntries(cursor *string) ([]ArchivedEntry, *string, error) {
	var values [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(entryPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append([]byte(entryPrefix), []byte("9999999999999999999")...)
		if cursor != nil {
			seekKey = append([]byte(entryPrefix), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[len(entryPrefix):]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitEntries != nil && len(values) == *r.limitEntries {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *r.limitEntries))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(entryPrefix):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	entries := make([]ArchivedEntry, 0, len(values))
	for _, value := range values {
		var entry ArchivedEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			return nil, nil, fmt.Errorf("decode archived entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, &lastKey, nil
}
