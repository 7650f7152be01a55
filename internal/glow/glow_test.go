package glow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestEmitRandomisesWithinBounds(t *testing.T) {
	r := NewRing(Capacity, 7)
	for i := 0; i < 500; i++ {
		r.Emit(10, 20)
	}
	r.Each(func(p Particle) {
		require.GreaterOrEqual(t, p.Size, 2.0)
		require.Less(t, p.Size, 6.0)
		require.GreaterOrEqual(t, p.Life, 20.0)
		require.Less(t, p.Life, 60.0)
		require.Equal(t, p.Life, p.MaxLife)
		require.GreaterOrEqual(t, p.Vel.X(), -0.3)
		require.Less(t, p.Vel.X(), 0.3)
		require.GreaterOrEqual(t, p.Vel.Y(), -0.3)
		require.Less(t, p.Vel.Y(), 0.3)
	})
}

func TestRingEvictsOldestAtCapacity(t *testing.T) {
	r := NewRing(Capacity, 1)
	for i := 0; i < Capacity; i++ {
		r.Emit(float64(i), 0)
	}
	require.Equal(t, Capacity, r.Len())

	r.Emit(float64(Capacity), 0)
	require.Equal(t, Capacity, r.Len(), "ring never grows past capacity")

	ps := r.Snapshot()
	require.Equal(t, 1.0, ps[0].Pos.X(), "particle #1 was evicted")
	require.Equal(t, float64(Capacity), ps[len(ps)-1].Pos.X())

	for i := 0; i < 3*Capacity; i++ {
		r.Emit(0, 0)
		require.LessOrEqual(t, r.Len(), Capacity)
	}
}

func TestTickMovesAgesAndExpires(t *testing.T) {
	r := NewRing(4, 3)
	r.push(Particle{Life: 1, MaxLife: 10, Size: 2})
	r.push(Particle{Life: 3, MaxLife: 10, Size: 2})
	r.push(Particle{Life: 2, MaxLife: 10, Size: 2})
	r.Emit(5, 5)
	before := r.Snapshot()[3]

	r.Tick()
	require.Equal(t, 3, r.Len(), "life 1 reaches zero and is removed")
	ps := r.Snapshot()
	require.Equal(t, 2.0, ps[0].Life)
	require.Equal(t, 1.0, ps[1].Life)
	require.InDelta(t, before.Pos.X()+before.Vel.X(), ps[2].Pos.X(), 1e-12)
	require.InDelta(t, before.Pos.Y()+before.Vel.Y(), ps[2].Pos.Y(), 1e-12)

	r.Tick()
	require.Equal(t, 2, r.Len())
	r.Tick()
	require.Equal(t, 1, r.Len())
	for i := 0; i < 60; i++ {
		r.Tick()
	}
	require.Zero(t, r.Len())
}

func TestTickAfterWrapKeepsOrder(t *testing.T) {
	r := NewRing(3, 1)
	for i := 0; i < 5; i++ {
		r.push(Particle{Pos: mgl64.Vec2{float64(i), 0}, Life: float64(10 - i), MaxLife: 10})
	}
	r.Tick()
	ps := r.Snapshot()
	require.Len(t, ps, 3)
	require.Equal(t, []float64{2, 3, 4}, []float64{ps[0].Pos.X(), ps[1].Pos.X(), ps[2].Pos.X()})
}

func TestClear(t *testing.T) {
	r := NewRing(10, 1)
	r.Emit(1, 1)
	r.Emit(2, 2)
	r.Clear()
	require.Zero(t, r.Len())
	require.Empty(t, r.AppendDraws(nil, Transform{Scale: 1}))
}

func TestDrawsScaleAndFade(t *testing.T) {
	r := NewRing(4, 1)
	r.push(Particle{Pos: mgl64.Vec2{400, 400}, Size: 4, Life: 30, MaxLife: 60})
	r.push(Particle{Pos: mgl64.Vec2{0, 800}, Size: 2, Life: 60, MaxLife: 60})

	draws := r.AppendDraws(nil, Transform{Scale: 0.5, OriginX: 100, OriginY: 20})
	require.Len(t, draws, 4, "core and halo per particle")

	core, halo := draws[0], draws[1]
	require.Equal(t, 300.0, core.X)
	require.Equal(t, 220.0, core.Y)
	require.InDelta(t, 1.0, core.Radius, 1e-12)
	require.InDelta(t, 0.4, core.Alpha, 1e-12)
	require.Zero(t, core.Blur)
	require.InDelta(t, 0.8, halo.Radius, 1e-12)
	require.InDelta(t, core.Alpha, halo.Alpha, 1e-12)
	require.Greater(t, halo.Blur, 0.0)

	require.Equal(t, 100.0, draws[2].X)
	require.Equal(t, 420.0, draws[2].Y)
	require.InDelta(t, 0.8, draws[2].Alpha, 1e-12, "full life peaks at 0.8")
}
