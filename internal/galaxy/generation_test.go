package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(SmallTestConfig())
	b := Generate(SmallTestConfig())

	require.NotEmpty(t, a.Suns)
	require.NotEmpty(t, a.Planets)
	require.Len(t, b.Planets, len(a.Planets))
	for i := range a.Planets {
		assert.Equal(t, a.Planets[i].Coord, b.Planets[i].Coord)
		assert.Equal(t, a.Planets[i].Name, b.Planets[i].Name)
		assert.Equal(t, a.Planets[i].Size, b.Planets[i].Size)
	}
	assert.Equal(t, len(a.Anomalies), len(b.Anomalies))
}

func TestGeneratedPlanetsAreReachable(t *testing.T) {
	m := Generate(DefaultGenConfig())

	for _, p := range m.Planets {
		assert.True(t, m.InBounds(p.Coord), p.Name)
		assert.Equal(t, TilePlanet, m.Tile(p.Coord), p.Name)
		assert.Equal(t, NoRealm, p.Owner, p.Name)
		assert.GreaterOrEqual(t, p.Size, 1)
		assert.LessOrEqual(t, p.Size, 10)
		require.NotNil(t, m.Sun(p.Sun), p.Name)
	}
	for c := range m.Anomalies {
		assert.Equal(t, TileEmpty, m.Tile(c))
	}
}
