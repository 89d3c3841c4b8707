package repositories

import (
	"chat-notifier/domain"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

const (
	notificationPrefix = "notif:"
	defaultPageSize    = 50
)

// HistoryRepository keeps launched notifications in badger, newest first,
// and indexes their text in bluge for full text search.
type HistoryRepository struct {
	db       *badger.DB
	index    *bluge.Writer
	log      *slog.Logger
	pageSize int
}

func NewHistoryRepository(db *badger.DB, index *bluge.Writer, log *slog.Logger, pageSize int) *HistoryRepository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &HistoryRepository{db: db, index: index, log: log, pageSize: pageSize}
}

// historyID orders notifications by time, the uuid breaks ties
func historyID(n domain.Notification) string {
	return fmt.Sprintf("%019d:%s", n.At.UnixNano(), n.ID)
}

func (r *HistoryRepository) Store(ctx context.Context, n domain.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeNotification(n)
	if err != nil {
		return err
	}
	id := historyID(n)
	if err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(notificationPrefix+id), data)
	}); err != nil {
		return err
	}

	doc := bluge.NewDocument(id).
		AddField(bluge.NewTextField("text", n.Text)).
		AddField(bluge.NewTextField("author", n.Author)).
		AddField(bluge.NewKeywordField("command", n.Command)).
		AddField(bluge.NewKeywordField("kind", string(n.Kind)))
	if err := r.index.Update(doc.ID(), doc); err != nil {
		// Badger stays the source of truth, search just misses this entry
		r.log.Warn("Unable to index notification", "id", id, "error", err)
	}
	return nil
}

// List returns one page of notifications, newest first.
// The returned cursor is nil once the end of the history is reached.
func (r *HistoryRepository) List(cursor *string) ([]domain.Notification, *string, error) {
	var notifications []domain.Notification
	var lastKey string
	prefix := []byte(notificationPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		seekKey := append([]byte{}, prefix...)
		if cursor != nil {
			seekKey = append(seekKey, []byte(*cursor)...)
		} else {
			seekKey = append(seekKey, []byte("9999999999999999999")...)
		}
		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if len(notifications) >= r.pageSize {
				break
			}
			item := it.Item()
			err := item.Value(func(val []byte) error {
				n, err := decodeNotification(val)
				if err != nil {
					return err
				}
				notifications = append(notifications, n)
				return nil
			})
			if err != nil {
				return err
			}
			lastKey = strings.TrimPrefix(string(item.Key()), notificationPrefix)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(notifications) < r.pageSize {
		return notifications, nil, nil
	}
	return notifications, &lastKey, nil
}

// Search runs a match query over the notification text and author.
// Results are ordered by relevance.
func (r *HistoryRepository) Search(ctx context.Context, query string, limit int) ([]domain.Notification, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = r.pageSize
	}

	reader, err := r.index.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField("text")).
		AddShould(bluge.NewMatchQuery(query).SetField("author"))
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(ids))
	err = r.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			item, err := txn.Get([]byte(notificationPrefix + id))
			if err == badger.ErrKeyNotFound {
				continue
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				n, err := decodeNotification(val)
				if err != nil {
					return err
				}
				notifications = append(notifications, n)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	return notifications, err
}
