package mission

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/talgya/realmfleet/internal/fleet"
	"github.com/talgya/realmfleet/internal/galaxy"
)

var (
	// ErrTruncated is returned when the stream ends inside a record.
	ErrTruncated = errors.New("mission stream truncated")
	// ErrCorrupt is returned when a record holds an impossible value.
	ErrCorrupt = errors.New("mission record corrupt")
)

// maxString caps string fields; longer values cannot be written.
const maxString = 1<<16 - 1

// record is the fixed-size part of one mission on the wire.
type record struct {
	Type         uint8
	Phase        uint8
	X            int32
	Y            int32
	TargetPlanet uint64
	TargetRealm  int32
	TargetFleet  uint64
	Origin       uint64
	Fleet        uint64
	Time         int32
	Sun          uint64
	Espionage    uint8
}

// Save writes a 32-bit mission count followed by one record per mission.
func (r *Registry) Save(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(r.missions))); err != nil {
		return fmt.Errorf("write mission count: %w", err)
	}
	for i, m := range r.missions {
		if err := writeMission(w, m); err != nil {
			return fmt.Errorf("write mission %d: %w", i, err)
		}
	}
	return nil
}

// Restore reads a registry written by Save.
func Restore(rd io.Reader) (*Registry, error) {
	var count uint32
	if err := binary.Read(rd, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("read mission count: %w", wrapEOF(err))
	}
	reg := NewRegistry()
	for i := uint32(0); i < count; i++ {
		m, err := readMission(rd)
		if err != nil {
			return nil, fmt.Errorf("read mission %d: %w", i, err)
		}
		reg.missions = append(reg.missions, m)
	}
	return reg, nil
}

func writeMission(w io.Writer, m *Mission) error {
	rec := record{
		Type:         uint8(m.Type),
		Phase:        uint8(m.Phase),
		X:            int32(m.Target.X),
		Y:            int32(m.Target.Y),
		TargetPlanet: uint64(m.TargetPlanet),
		TargetRealm:  int32(m.TargetRealm),
		TargetFleet:  uint64(m.TargetFleet),
		Origin:       uint64(m.Origin),
		Fleet:        uint64(m.FleetID),
		Time:         int32(m.Time),
		Sun:          uint64(m.Sun),
		Espionage:    uint8(m.Espionage),
	}
	if err := binary.Write(w, binary.BigEndian, &rec); err != nil {
		return err
	}
	if err := writeString(w, m.Building); err != nil {
		return err
	}
	return writeString(w, m.ShipFilter)
}

func readMission(rd io.Reader) (*Mission, error) {
	var rec record
	if err := binary.Read(rd, binary.BigEndian, &rec); err != nil {
		return nil, wrapEOF(err)
	}
	if rec.Type >= NumTypes || int(rec.Phase) >= len(phaseNames) || rec.Espionage >= NumEspionageTypes {
		return nil, fmt.Errorf("%w: type=%d phase=%d espionage=%d", ErrCorrupt, rec.Type, rec.Phase, rec.Espionage)
	}
	building, err := readString(rd)
	if err != nil {
		return nil, err
	}
	filter, err := readString(rd)
	if err != nil {
		return nil, err
	}
	return &Mission{
		Type:         Type(rec.Type),
		Phase:        Phase(rec.Phase),
		Target:       galaxy.Coord{X: int(rec.X), Y: int(rec.Y)},
		TargetPlanet: galaxy.PlanetID(rec.TargetPlanet),
		TargetRealm:  galaxy.RealmID(rec.TargetRealm),
		TargetFleet:  fleet.ID(rec.TargetFleet),
		Origin:       galaxy.PlanetID(rec.Origin),
		Building:     building,
		FleetID:      fleet.ID(rec.Fleet),
		Time:         int(rec.Time),
		ShipFilter:   filter,
		Sun:          galaxy.SunID(rec.Sun),
		Espionage:    EspionageType(rec.Espionage),
	}, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > maxString {
		return fmt.Errorf("%w: string field of %d bytes", ErrCorrupt, len(s))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(rd io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(rd, binary.BigEndian, &n); err != nil {
		return "", wrapEOF(err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return "", wrapEOF(err)
	}
	return string(buf), nil
}

func wrapEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return err
}
