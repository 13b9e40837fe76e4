// Package persistence provides SQLite-based save storage for mission
// registries, fleets and the narrative log.
package persistence

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
	"github.com/talgya/realmfleet/internal/mission"
	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/realm"
)

// Metadata keys written by SaveTurn.
const (
	MetaLastTurn = "last_turn"
	MetaSaveID   = "save_id"
)

// DB wraps a SQLite connection for save games.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS missions (
		realm_id INTEGER PRIMARY KEY,
		turn INTEGER NOT NULL,
		count INTEGER NOT NULL,
		data BLOB NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fleets (
		id INTEGER PRIMARY KEY,
		realm_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		pos_x INTEGER NOT NULL,
		pos_y INTEGER NOT NULL,
		fleet_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn INTEGER NOT NULL,
		kind INTEGER NOT NULL,
		realm_id INTEGER NOT NULL,
		pos_x INTEGER NOT NULL,
		pos_y INTEGER NOT NULL,
		title TEXT NOT NULL,
		text TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS world_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_turn ON events(turn);
	CREATE INDEX IF NOT EXISTS idx_fleets_realm ON fleets(realm_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMissions stores a realm's registry as one encoded blob, replacing any
// earlier save for that realm.
func (db *DB) SaveMissions(id galaxy.RealmID, turn int, reg *mission.Registry) error {
	var buf bytes.Buffer
	if err := reg.Save(&buf); err != nil {
		return fmt.Errorf("encode missions: %w", err)
	}
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO missions (realm_id, turn, count, data) VALUES (?, ?, ?, ?)",
		int64(id), turn, reg.Len(), buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("insert missions for realm %d: %w", id, err)
	}
	return nil
}

// LoadMissions restores a realm's registry. A realm that was never saved gets
// an empty registry.
func (db *DB) LoadMissions(id galaxy.RealmID) (*mission.Registry, error) {
	var data []byte
	err := db.conn.Get(&data, "SELECT data FROM missions WHERE realm_id = ?", int64(id))
	if errors.Is(err, sql.ErrNoRows) {
		return mission.NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("select missions for realm %d: %w", id, err)
	}
	reg, err := mission.Restore(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode missions for realm %d: %w", id, err)
	}
	return reg, nil
}

// SaveFleets writes all of a realm's fleets (full replace).
func (db *DB) SaveFleets(id galaxy.RealmID, fleets []*fleet.Fleet) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM fleets WHERE realm_id = ?", int64(id)); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO fleets
		(id, realm_id, name, pos_x, pos_y, fleet_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range fleets {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encode fleet %d: %w", f.ID, err)
		}
		if _, err := stmt.Exec(f.ID, int64(id), f.Name, f.Coord.X, f.Coord.Y, string(data)); err != nil {
			return fmt.Errorf("insert fleet %d: %w", f.ID, err)
		}
	}

	return tx.Commit()
}

// LoadFleets returns a realm's saved fleets ordered by ID.
func (db *DB) LoadFleets(id galaxy.RealmID) ([]*fleet.Fleet, error) {
	var rows []string
	err := db.conn.Select(&rows, "SELECT fleet_json FROM fleets WHERE realm_id = ? ORDER BY id", int64(id))
	if err != nil {
		return nil, fmt.Errorf("select fleets for realm %d: %w", id, err)
	}
	fleets := make([]*fleet.Fleet, 0, len(rows))
	for _, data := range rows {
		var f fleet.Fleet
		if err := json.Unmarshal([]byte(data), &f); err != nil {
			return nil, fmt.Errorf("decode fleet: %w", err)
		}
		fleets = append(fleets, &f)
	}
	return fleets, nil
}

type eventRow struct {
	Turn  int    `db:"turn"`
	Kind  int    `db:"kind"`
	Realm int64  `db:"realm_id"`
	X     int    `db:"pos_x"`
	Y     int    `db:"pos_y"`
	Title string `db:"title"`
	Text  string `db:"text"`
}

func (r eventRow) record() news.Record {
	return news.Record{
		Turn:  r.Turn,
		Kind:  news.Kind(r.Kind),
		Realm: galaxy.RealmID(r.Realm),
		Coord: galaxy.Coord{X: r.X, Y: r.Y},
		Title: r.Title,
		Text:  r.Text,
	}
}

// SaveEvents appends narrative records to the database.
func (db *DB) SaveEvents(records []news.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range records {
		_, err := tx.Exec(
			"INSERT INTO events (turn, kind, realm_id, pos_x, pos_y, title, text) VALUES (?, ?, ?, ?, ?, ?, ?)",
			r.Turn, int(r.Kind), int64(r.Realm), r.Coord.X, r.Coord.Y, r.Title, r.Text,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N records, newest first.
func (db *DB) RecentEvents(limit int) ([]news.Record, error) {
	var rows []eventRow
	err := db.conn.Select(&rows,
		"SELECT turn, kind, realm_id, pos_x, pos_y, title, text FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	out := make([]news.Record, len(rows))
	for i, r := range rows {
		out[i] = r.record()
	}
	return out, nil
}

// SaveMeta stores a key-value pair in save metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM world_meta WHERE key = ?", key)
	return value, err
}

// LastTurn returns the turn of the latest save, or 0 when nothing was saved.
func (db *DB) LastTurn() (int, error) {
	v, err := db.GetMeta(MetaLastTurn)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}

// SaveTurn performs a full save of every realm's fleets and missions plus
// the given narrative records, and stamps the save with a fresh ID.
func (db *DB) SaveTurn(turn int, realms []*realm.Realm, records []news.Record) (string, error) {
	slog.Info("saving turn", "turn", turn, "realms", len(realms), "events", len(records))

	for _, r := range realms {
		if err := db.SaveFleets(r.ID, r.Fleets.All()); err != nil {
			return "", fmt.Errorf("save fleets of %s: %w", r.Name, err)
		}
		if err := db.SaveMissions(r.ID, turn, r.Missions); err != nil {
			return "", fmt.Errorf("save missions of %s: %w", r.Name, err)
		}
	}
	if err := db.SaveEvents(records); err != nil {
		return "", fmt.Errorf("save events: %w", err)
	}

	saveID := uuid.NewString()
	if err := db.SaveMeta(MetaLastTurn, strconv.Itoa(turn)); err != nil {
		return "", fmt.Errorf("save meta: %w", err)
	}
	if err := db.SaveMeta(MetaSaveID, saveID); err != nil {
		return "", fmt.Errorf("save meta: %w", err)
	}

	slog.Info("turn saved", "turn", turn, "save_id", saveID)
	return saveID, nil
}

// LoadRealm replaces r's fleets and missions with the saved ones.
func (db *DB) LoadRealm(r *realm.Realm) error {
	fleets, err := db.LoadFleets(r.ID)
	if err != nil {
		return err
	}
	reg, err := db.LoadMissions(r.ID)
	if err != nil {
		return err
	}
	r.Fleets = fleet.NewList()
	for _, f := range fleets {
		r.Fleets.Add(f)
	}
	r.Missions = reg
	return nil
}
