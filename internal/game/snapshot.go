package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot contains the simulation state relevant for replay and
// determinism checks. Uses primitive types only.
type Snapshot struct {
	Tick       uint64
	Phase      string
	ScoreLeft  int
	ScoreRight int
	Server     int
	Winner     int

	BallX, BallY   float64
	BallVX, BallVY float64
	BallSpin       float64

	LeftY, LeftVel   float64
	RightY, RightVel float64

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:      g.phase,
		ScoreLeft:  g.scoreLeft,
		ScoreRight: g.scoreRight,
		Server:     int(g.server),
		Winner:     int(g.winner),

		BallX:    g.ball.Pos.X,
		BallY:    g.ball.Pos.Y,
		BallVX:   g.ball.Vel.X,
		BallVY:   g.ball.Vel.Y,
		BallSpin: g.ball.Spin,

		LeftY:    g.left.Pos.Y,
		LeftVel:  g.left.Vel,
		RightY:   g.right.Pos.Y,
		RightVel: g.right.Vel,

		ParticleCount: g.particles.Len(),
	}
}

// Hash returns a digest of the snapshot for determinism comparisons.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 8)

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf, v)
		h.Write(buf)
	}
	writeF64 := func(v float64) {
		writeU64(math.Float64bits(v))
	}

	writeU64(s.Tick)
	h.Write([]byte(s.Phase))
	writeU64(uint64(int64(s.ScoreLeft)))   //#nosec G115 -- score is non-negative
	writeU64(uint64(int64(s.ScoreRight)))  //#nosec G115 -- score is non-negative
	writeU64(uint64(int64(s.Server)))      //#nosec G115 -- small enum
	writeU64(uint64(int64(s.Winner)))      //#nosec G115 -- small enum
	writeU64(uint64(int64(s.ParticleCount)))

	writeF64(s.BallX)
	writeF64(s.BallY)
	writeF64(s.BallVX)
	writeF64(s.BallVY)
	writeF64(s.BallSpin)
	writeF64(s.LeftY)
	writeF64(s.LeftVel)
	writeF64(s.RightY)
	writeF64(s.RightVel)

	return h.Sum64()
}
