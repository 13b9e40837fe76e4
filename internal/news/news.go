// Package news collects the narrative records produced while fleets act:
// galactic news, realm events, and private messages.
package news

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/realmfleet/internal/galaxy"
)

// Kind separates public news from realm-private records.
type Kind uint8

const (
	KindNews Kind = iota
	KindEvent
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindNews:
		return "news"
	case KindEvent:
		return "event"
	case KindMessage:
		return "message"
	}
	return "unknown"
}

// Record is one narrative entry.
type Record struct {
	Turn  int            `json:"turn"`
	Kind  Kind           `json:"kind"`
	Realm galaxy.RealmID `json:"realm"` // NoRealm for galaxy-wide news
	Coord galaxy.Coord   `json:"coord"`
	Title string         `json:"title"`
	Text  string         `json:"text"`
}

// Sink accepts narrative records.
type Sink interface {
	Publish(r Record)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Publish(Record) {}

// maxRecords bounds the in-memory log between drains.
const maxRecords = 1000

// Log is an in-memory Sink that also writes each record to slog.
type Log struct {
	Turn    int
	records []Record
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Publish stamps the current turn when the record has none and stores it.
func (l *Log) Publish(r Record) {
	if r.Turn == 0 {
		r.Turn = l.Turn
	}
	l.records = append(l.records, r)
	if len(l.records) > maxRecords {
		l.records = l.records[len(l.records)-maxRecords:]
	}
	slog.Info(r.Title, "kind", r.Kind, "realm", r.Realm, "turn", r.Turn, "text", r.Text)
}

// Records returns a copy of the stored records.
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Drain returns the stored records and empties the log.
func (l *Log) Drain() []Record {
	out := l.records
	l.records = nil
	return out
}

// Len returns the number of stored records.
func (l *Log) Len() int {
	return len(l.records)
}

// Credits formats a credit amount with thousands separators.
func Credits(n int) string {
	return humanize.Comma(int64(n)) + " credits"
}

// TurnLabel renders a turn number as "the 12th turn".
func TurnLabel(turn int) string {
	return fmt.Sprintf("the %s turn", humanize.Ordinal(turn))
}
