// Star map generation using layered simplex noise.
// Suns sit on a jittered lattice; nebulae, anomalies and deep-space anchors
// are carved from independent noise fields.
package galaxy

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds star map generation parameters.
type GenConfig struct {
	Width       int
	Height      int
	Seed        int64   // Random seed (0 = random)
	SunSpacing  int     // Lattice spacing between suns
	NebulaLevel float64 // Noise threshold above which empty space becomes nebula
	AnomalyLvl  float64 // Noise threshold for anomalies
	AnchorLevel float64 // Noise threshold for deep-space anchors
}

// DefaultGenConfig returns a medium-sized galaxy.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:       64,
		Height:      64,
		SunSpacing:  14,
		NebulaLevel: 0.78,
		AnomalyLvl:  0.86,
		AnchorLevel: 0.88,
	}
}

// SmallTestConfig returns a tiny galaxy for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:       32,
		Height:      32,
		Seed:        42,
		SunSpacing:  12,
		NebulaLevel: 0.82,
		AnomalyLvl:  0.88,
		AnchorLevel: 0.9,
	}
}

var sunNames = []string{
	"Sol", "Vega", "Altair", "Deneb", "Rigel", "Mira", "Castor", "Pollux",
	"Antares", "Sirius", "Capella", "Arcturus", "Spica", "Regulus", "Bellatrix",
	"Procyon", "Achernar", "Hadar", "Alnair", "Shaula", "Menkar", "Zosma",
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI"}

// planetOffsets are candidate orbit cells around a sun.
var planetOffsets = []Coord{
	{X: 2, Y: 0}, {X: -2, Y: 1}, {X: 1, Y: 3}, {X: -1, Y: -3}, {X: 3, Y: -2}, {X: -3, Y: -1},
}

// Generate creates a complete star map with suns, planets, nebulae,
// anomalies and deep-space anchors.
func Generate(cfg GenConfig) *Map {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	nebulaNoise := opensimplex.NewNormalized(seed)
	anomalyNoise := opensimplex.NewNormalized(seed + 1)
	anchorNoise := opensimplex.NewNormalized(seed + 2)

	m := NewMap(cfg.Width, cfg.Height)

	placeSuns(m, cfg, rng)

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c := Coord{X: x, Y: y}
			if m.Tile(c) != TileEmpty || nearSun(m, c, 4) {
				continue
			}
			fx, fy := float64(x), float64(y)

			if octaveNoise(nebulaNoise, fx, fy, 3, 0.09, 0.5) > cfg.NebulaLevel {
				m.SetTile(c, TileNebula)
				continue
			}
			if octaveNoise(anchorNoise, fx, fy, 2, 0.2, 0.5) > cfg.AnchorLevel {
				m.SetTile(c, TileAnchor)
				continue
			}
			if octaveNoise(anomalyNoise, fx, fy, 2, 0.25, 0.5) > cfg.AnomalyLvl {
				m.Anomalies[c] = &Anomaly{
					Coord:   c,
					Kind:    anomalyKinds[rng.Intn(len(anomalyKinds))],
					Credits: 10 + rng.Intn(40),
				}
			}
		}
	}

	return m
}

var anomalyKinds = []string{"derelict", "ancient probe", "wormhole echo", "ion storm"}

func placeSuns(m *Map, cfg GenConfig, rng *rand.Rand) {
	spacing := cfg.SunSpacing
	if spacing < 8 {
		spacing = 8
	}
	sunID := SunID(1)
	planetID := PlanetID(1)
	for gy := spacing / 2; gy < cfg.Height-3; gy += spacing {
		for gx := spacing / 2; gx < cfg.Width-3; gx += spacing {
			jitter := spacing/4 + 1
			c := Coord{X: gx + rng.Intn(jitter) - jitter/2, Y: gy + rng.Intn(jitter) - jitter/2}
			if !m.InBounds(c) {
				continue
			}
			name := sunNames[int(sunID-1)%len(sunNames)]
			if int(sunID) > len(sunNames) {
				name = fmt.Sprintf("%s %d", name, int(sunID-1)/len(sunNames)+1)
			}
			sun := &Sun{ID: sunID, Name: name, Coord: c}
			m.AddSun(sun)
			sunID++

			count := 2 + rng.Intn(len(planetOffsets)-1)
			for i := 0; i < count; i++ {
				pc := Coord{X: c.X + planetOffsets[i].X, Y: c.Y + planetOffsets[i].Y}
				if !m.InBounds(pc) || m.Tile(pc) != TileEmpty {
					continue
				}
				m.AddPlanet(&Planet{
					ID:       planetID,
					Name:     fmt.Sprintf("%s %s", name, romanNumerals[i]),
					Coord:    pc,
					Sun:      sun.ID,
					Owner:    NoRealm,
					Size:     1 + rng.Intn(10),
					Metal:    rng.Intn(200),
					GasGiant: rng.Intn(5) == 0,
				})
				planetID++
			}
		}
	}
}

func nearSun(m *Map, c Coord, radius float64) bool {
	for _, s := range m.Suns {
		if s.Coord.Distance(c) <= radius {
			return true
		}
	}
	return false
}

// octaveNoise samples multi-octave simplex noise normalized to 0..1.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxValue := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return math.Min(1, math.Max(0, total/maxValue))
}
