package repositories

import (
	"chat-notifier/auth"
	"chat-notifier/domain"
	"chat-notifier/errors"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"
)

const (
	commandPrefix = "cmd:"
	userPrefix    = "user:"
	commandSeqKey = "meta:cmd_seq"
)

// CommandRepository persists the command table and the approved users.
// Keys are "cmd:{name}" and "user:{folded name}". Each record carries its
// position so listings survive a restart in declaration order.
type CommandRepository struct {
	db *badger.DB
}

func NewCommandRepository(db *badger.DB) *CommandRepository {
	return &CommandRepository{db: db}
}

// SaveCommand inserts or updates a command. An update keeps the original position.
func (r *CommandRepository) SaveCommand(cmd domain.Command) error {
	key := []byte(commandPrefix + cmd.Name)
	return r.db.Update(func(txn *badger.Txn) error {
		position, err := r.positionOf(txn, key)
		if err != nil {
			return err
		}
		data, err := encodeCommand(cmd, position)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (r *CommandRepository) DeleteCommand(name string) error {
	key := []byte(commandPrefix + name)
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", errors.ErrNotFound, name)
			}
			return err
		}
		return txn.Delete(key)
	})
}

func (r *CommandRepository) LoadCommands() ([]domain.Command, error) {
	type positioned struct {
		cmd      domain.Command
		position int64
	}
	var records []positioned

	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, commandPrefix, func(value []byte) error {
			cmd, position, err := decodeCommand(value)
			if err != nil {
				return err
			}
			records = append(records, positioned{cmd: cmd, position: position})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].position < records[j].position })
	commands := make([]domain.Command, len(records))
	for i, rec := range records {
		commands[i] = rec.cmd
	}
	return commands, nil
}

// SaveApprovedUsers replaces the whole allow-list in one transaction.
func (r *CommandRepository) SaveApprovedUsers(users []string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var stale [][]byte
		err := scanKeys(txn, userPrefix, func(key []byte) {
			stale = append(stale, key)
		})
		if err != nil {
			return err
		}
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		for i, user := range users {
			data, err := encodeUser(user, i)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(userPrefix+auth.Fold(user)), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CommandRepository) LoadApprovedUsers() ([]string, error) {
	type positioned struct {
		name     string
		position int
	}
	var records []positioned
	err := r.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, userPrefix, func(value []byte) error {
			name, position, err := decodeUser(value)
			if err != nil {
				return err
			}
			records = append(records, positioned{name: name, position: position})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].position < records[j].position })
	users := make([]string, len(records))
	for i, rec := range records {
		users[i] = rec.name
	}
	return users, nil
}

// positionOf returns the stored position of key, or allocates the next one.
func (r *CommandRepository) positionOf(txn *badger.Txn, key []byte) (int64, error) {
	item, err := txn.Get(key)
	switch {
	case err == nil:
		var position int64
		err = item.Value(func(val []byte) error {
			_, position, err = decodeCommand(val)
			return err
		})
		return position, err
	case err != badger.ErrKeyNotFound:
		return 0, err
	}

	var next uint64
	item, err = txn.Get([]byte(commandSeqKey))
	switch {
	case err == nil:
		err = item.Value(func(val []byte) error {
			next = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
	case err != badger.ErrKeyNotFound:
		return 0, err
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next+1)
	if err := txn.Set([]byte(commandSeqKey), buf); err != nil {
		return 0, err
	}
	return int64(next), nil
}

func scanPrefix(txn *badger.Txn, prefix string, fn func(value []byte) error) error {
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

func scanKeys(txn *badger.Txn, prefix string, fn func(key []byte)) error {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()
	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		fn(it.Item().KeyCopy(nil))
	}
	return nil
}
