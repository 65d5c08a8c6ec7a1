// Playstats - Playback Session Telemetry Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package eventlog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/playstats/internal/playback"
	"github.com/tomtom215/playstats/internal/validation"
)

var (
	// ErrEmptyLog is returned for a file with no content.
	ErrEmptyLog = errors.New("event log is empty")

	// ErrInvalidRecord wraps decode and field validation failures.
	ErrInvalidRecord = errors.New("invalid event record")
)

// maxLineBytes bounds a single JSON Lines record.
const maxLineBytes = 1 << 20

// SessionLog is one decoded event file.
type SessionLog struct {
	// ID is the session_id from the file, or a generated UUID when absent.
	ID string

	// Session is ready to be passed to playback.Build.
	Session playback.Session
}

// eventRecord is one state event on the wire.
type eventRecord struct {
	TimeMs *int64 `json:"t_ms" validate:"required,gte=0"`
	State  string `json:"state" validate:"required,playback_state"`
}

// sessionHeader holds the document fields other than events.
type sessionHeader struct {
	SessionID string `json:"session_id" validate:"omitempty,max=128"`
	Ad        bool   `json:"ad"`
	NowMs     *int64 `json:"now_ms" validate:"omitempty,gte=0"`
}

// sessionDocument is the single-object file format. Events is a pointer so a
// JSON Lines file holding one event is not mistaken for a document.
type sessionDocument struct {
	sessionHeader
	Events *[]eventRecord `json:"events"`
}

// Decode parses an event file. Two layouts are accepted:
//
//	{"session_id":"a1","ad":false,"now_ms":9000,"events":[{"t_ms":0,"state":"joining_foreground"}]}
//
// or JSON Lines, one {"t_ms":..,"state":..} object per line, where the session
// is closed at the last event.
func Decode(data []byte) (SessionLog, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return SessionLog{}, ErrEmptyLog
	}

	// A single JSON object is a document unless it lacks events, in which
	// case it is a one-line JSON Lines file. Anything else is JSON Lines.
	if data[0] == '{' && singleValue(data) {
		var doc sessionDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return SessionLog{}, fmt.Errorf("document: %w: %w", ErrInvalidRecord, err)
		}
		if doc.Events != nil {
			return fromDocument(doc)
		}
	}
	return decodeLines(data)
}

// singleValue reports whether data holds exactly one well-formed JSON value.
func singleValue(data []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return false
	}
	return !dec.More()
}

func fromDocument(doc sessionDocument) (SessionLog, error) {
	if err := validation.ValidateStruct(&doc.sessionHeader); err != nil {
		return SessionLog{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	events, err := convertEvents(*doc.Events, func(i int) string { return fmt.Sprintf("event %d", i) })
	if err != nil {
		return SessionLog{}, err
	}

	out := SessionLog{
		ID:      doc.SessionID,
		Session: playback.Session{Events: events, Ad: doc.Ad},
	}
	if doc.NowMs != nil {
		out.Session.Now = playback.Millis(*doc.NowMs)
	}
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	return out, nil
}

func decodeLines(data []byte) (SessionLog, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		records []eventRecord
		lines   []int
	)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var rec eventRecord
		if err := json.Unmarshal(text, &rec); err != nil {
			return SessionLog{}, fmt.Errorf("line %d: %w: %w", line, ErrInvalidRecord, err)
		}
		records = append(records, rec)
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return SessionLog{}, fmt.Errorf("line %d: %w: %w", line+1, ErrInvalidRecord, err)
	}

	events, err := convertEvents(records, func(i int) string { return fmt.Sprintf("line %d", lines[i]) })
	if err != nil {
		return SessionLog{}, err
	}
	return SessionLog{
		ID:      uuid.NewString(),
		Session: playback.Session{Events: events},
	}, nil
}

// convertEvents validates records and maps them onto playback events.
// Ordering is left to the builder. where names record i in errors.
func convertEvents(records []eventRecord, where func(i int) string) ([]playback.Event, error) {
	events := make([]playback.Event, 0, len(records))
	for i := range records {
		rec := &records[i]
		if err := validation.ValidateStruct(rec); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", where(i), ErrInvalidRecord, err)
		}
		state, err := playback.ParseState(rec.State)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", where(i), ErrInvalidRecord, err)
		}
		events = append(events, playback.Event{TimeMs: *rec.TimeMs, State: state})
	}
	return events, nil
}
