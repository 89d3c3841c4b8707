package repositories

import (
	"chat-notifier/domain"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Values are stored as protobuf Struct messages, which keeps records
// self-describing and lets new fields be added without a migration.

func encodeCommand(cmd domain.Command, position int64) ([]byte, error) {
	options := make(map[string]any, len(cmd.Options))
	for k, v := range cmd.Options {
		options[k] = v
	}
	s, err := structpb.NewStruct(map[string]any{
		"name":        cmd.Name,
		"call_string": cmd.CallString,
		"action":      string(cmd.Action),
		"options":     options,
		"position":    strconv.FormatInt(position, 10),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeCommand(data []byte) (domain.Command, int64, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.Command{}, 0, err
	}
	fields := s.GetFields()
	cmd := domain.Command{
		Name:       fields["name"].GetStringValue(),
		CallString: fields["call_string"].GetStringValue(),
		Action:     domain.ActionHandle(fields["action"].GetStringValue()),
	}
	if options := fields["options"].GetStructValue().GetFields(); len(options) > 0 {
		cmd.Options = make(map[string]string, len(options))
		for k, v := range options {
			cmd.Options[k] = v.GetStringValue()
		}
	}
	position, err := strconv.ParseInt(fields["position"].GetStringValue(), 10, 64)
	if err != nil {
		return domain.Command{}, 0, fmt.Errorf("command %s: %w", cmd.Name, err)
	}
	return cmd, position, nil
}

func encodeUser(name string, position int) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"name":     name,
		"position": position,
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeUser(data []byte) (string, int, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return "", 0, err
	}
	fields := s.GetFields()
	return fields["name"].GetStringValue(), int(fields["position"].GetNumberValue()), nil
}

func encodeNotification(n domain.Notification) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":      n.ID.String(),
		"kind":    string(n.Kind),
		"text":    n.Text,
		"sound":   n.Sound,
		"speak":   n.Speak,
		"author":  n.Author,
		"command": n.Command,
		// Nanoseconds overflow the float64 mantissa, keep them as text
		"at": strconv.FormatInt(n.At.UnixNano(), 10),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeNotification(data []byte) (domain.Notification, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return domain.Notification{}, err
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Notification{}, err
	}
	at, err := strconv.ParseInt(fields["at"].GetStringValue(), 10, 64)
	if err != nil {
		return domain.Notification{}, err
	}
	return domain.Notification{
		ID:      id,
		Kind:    domain.NotificationKind(fields["kind"].GetStringValue()),
		Text:    fields["text"].GetStringValue(),
		Sound:   fields["sound"].GetStringValue(),
		Speak:   fields["speak"].GetBoolValue(),
		Author:  fields["author"].GetStringValue(),
		Command: fields["command"].GetStringValue(),
		At:      time.Unix(0, at).UTC(),
	}, nil
}

// Record is a human readable view of one stored key, used by the inspector.
type Record struct {
	Key    string
	Kind   string
	At     string
	Detail string
}

// DescribeRecord decodes any value written by this package.
func DescribeRecord(key string, value []byte) (Record, error) {
	rec := Record{Key: key, Kind: "RAW", At: "--", Detail: fmt.Sprintf("%d bytes", len(value))}
	switch {
	case strings.HasPrefix(key, commandPrefix):
		cmd, position, err := decodeCommand(value)
		if err != nil {
			return rec, err
		}
		rec.Kind = "COMMAND"
		rec.Detail = fmt.Sprintf("#%d !%s -> %s %v", position, cmd.CallString, cmd.Action, cmd.Options)
	case strings.HasPrefix(key, userPrefix):
		name, position, err := decodeUser(value)
		if err != nil {
			return rec, err
		}
		rec.Kind = "USER"
		rec.Detail = fmt.Sprintf("#%d %s", position, name)
	case strings.HasPrefix(key, notificationPrefix):
		n, err := decodeNotification(value)
		if err != nil {
			return rec, err
		}
		rec.Kind = string(n.Kind)
		rec.At = n.At.Format(time.DateTime)
		rec.Detail = fmt.Sprintf("%s (%s)", n.Text, n.Author)
	case strings.HasPrefix(key, operatorPrefix):
		rec.Kind = "OPERATOR"
		rec.Detail = strings.TrimPrefix(key, operatorPrefix)
	}
	return rec, nil
}
