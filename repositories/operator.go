package repositories

import (
	"chat-notifier/domain"
	"chat-notifier/errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const operatorPrefix = "operator:"

type OperatorRepository struct {
	db *badger.DB
}

func NewOperatorRepository(db *badger.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// CreateOperator persists a new operator with an already hashed password.
func (o *OperatorRepository) CreateOperator(name, hashedPassword string) error {
	s, err := structpb.NewStruct(map[string]any{
		"name":          name,
		"password_hash": hashedPassword,
		"created_at":    strconv.FormatInt(time.Now().Unix(), 10),
	})
	if err != nil {
		return err
	}
	data, err := proto.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return o.db.Update(func(txn *badger.Txn) error {
		key := []byte(operatorPrefix + name)
		if _, err = txn.Get(key); err == nil {
			return fmt.Errorf("%w: operator %s", errors.ErrDuplicateName, name)
		}
		return txn.Set(key, data)
	})
}

// GetOperator returns ErrNotFound for an unknown operator.
func (o *OperatorRepository) GetOperator(name string) (domain.Operator, error) {
	var s structpb.Struct
	err := o.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(operatorPrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &s)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.Operator{}, fmt.Errorf("%w: operator %s", errors.ErrNotFound, name)
	}
	if err != nil {
		return domain.Operator{}, err
	}

	fields := s.GetFields()
	createdAt, err := strconv.ParseInt(fields["created_at"].GetStringValue(), 10, 64)
	if err != nil {
		return domain.Operator{}, err
	}
	return domain.Operator{
		Name:         fields["name"].GetStringValue(),
		PasswordHash: fields["password_hash"].GetStringValue(),
		CreatedAt:    time.Unix(createdAt, 0).UTC(),
	}, nil
}
