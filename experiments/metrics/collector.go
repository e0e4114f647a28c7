package metrics

import (
	"sync/atomic"
	"time"
)

// TurnMetric summarizes one player's turn.
type TurnMetric struct {
	Turn      int
	Player    int
	Duration  time.Duration
	Attacks   int
	Destroyed int
	Balance   int
	Units     int
	Holdings  int
}

type MatchMetric struct {
	Seed       int64
	Difficulty string
	Winner     int // -1 when the turn limit was hit
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
}

// Snapshot is the end-of-turn position of the player being measured.
type Snapshot struct {
	Balance  int
	Units    int
	Holdings int
}

type Collector interface {
	Start(turn, player int)
	AddAttack(destroyed int)
	Complete(snap Snapshot) TurnMetric
}

type collector struct {
	turn      int
	player    int
	startTime time.Time
	attacks   atomic.Int32
	destroyed atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turn, player int) {
	m.turn = turn
	m.player = player
	m.startTime = time.Now()
	m.attacks.Store(0)
	m.destroyed.Store(0)
}

func (m *collector) AddAttack(destroyed int) {
	m.attacks.Add(1)
	m.destroyed.Add(int32(destroyed))
}

func (m *collector) Complete(snap Snapshot) TurnMetric {
	return TurnMetric{
		Turn:      m.turn,
		Player:    m.player,
		Duration:  time.Since(m.startTime),
		Attacks:   int(m.attacks.Load()),
		Destroyed: int(m.destroyed.Load()),
		Balance:   snap.Balance,
		Units:     snap.Units,
		Holdings:  snap.Holdings,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn, player int)             {}
func (m *dummyCollector) AddAttack(destroyed int)            {}
func (m *dummyCollector) Complete(snap Snapshot) TurnMetric { return TurnMetric{} }
