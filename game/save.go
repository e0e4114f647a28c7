package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"hexwar/hex"
	"hexwar/meta"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported save version")
	ErrMalformedSave      = errors.New("malformed save")
)

// SavedUnit is the flattened, reference-free form of a unit. Animation state
// is transient and not saved.
type SavedUnit struct {
	Type              UnitType `json:"type"`
	Q                 int      `json:"q"`
	R                 int      `json:"r"`
	Owner             Player   `json:"owner"`
	HP                int      `json:"hp"`
	MaxHP             int      `json:"maxHP"`
	Offense           int      `json:"offense"`
	Defense           int      `json:"defense"`
	AttackRange       int      `json:"attackRange"`
	Experience        int      `json:"experience"`
	RemainingMovement int      `json:"remainingMovement"`
	Acted             bool     `json:"acted"`
}

// SavedState is the versioned save shape.
type SavedState struct {
	Version        int         `json:"version"`
	Turn           int         `json:"turn"`
	CurrentPlayer  Player      `json:"currentPlayer"`
	Tiles          []Tile      `json:"tiles"`
	Units          []SavedUnit `json:"units"`
	PlayerBalances []int       `json:"playerBalances"`
	MapWidth       int         `json:"mapWidth"`
	MapHeight      int         `json:"mapHeight"`

	// Winner is only written for finished games. It settles the outcome when
	// both HQs fell in the same exchange.
	Winner *Player `json:"winner,omitempty"`
}

// SnapshotUnit flattens u.
func SnapshotUnit(u *Unit) SavedUnit {
	return SavedUnit{
		Type:              u.Type,
		Q:                 u.Pos.Q,
		R:                 u.Pos.R,
		Owner:             u.Owner,
		HP:                u.HP,
		MaxHP:             u.MaxHP,
		Offense:           u.Offense,
		Defense:           u.Defense,
		AttackRange:       u.AttackRange,
		Experience:        u.Experience,
		RemainingMovement: u.RemainingMovement,
		Acted:             u.Acted,
	}
}

// Unit rebuilds a live unit from its saved form. The id is assigned by the roster.
func (su SavedUnit) Unit() *Unit {
	pos := hex.Axial{Q: su.Q, R: su.R}
	return &Unit{
		Type:              su.Type,
		Pos:               pos,
		Owner:             su.Owner,
		HP:                su.HP,
		MaxHP:             su.MaxHP,
		Offense:           su.Offense,
		Defense:           su.Defense,
		AttackRange:       su.AttackRange,
		Experience:        su.Experience,
		RemainingMovement: su.RemainingMovement,
		Acted:             su.Acted,
		Anim:              pos.Point(),
	}
}

// Serialize captures the persistent part of s.
func Serialize(s *State) SavedState {
	units := s.Units.All()
	saved := SavedState{
		Version:        meta.SAVE_VERSION,
		Turn:           s.Turn,
		CurrentPlayer:  s.CurrentPlayer,
		Tiles:          s.Board.Snapshot(),
		Units:          make([]SavedUnit, 0, len(units)),
		PlayerBalances: []int{s.Balances[0], s.Balances[1]},
		MapWidth:       s.Board.Width,
		MapHeight:      s.Board.Height,
	}
	for _, u := range units {
		saved.Units = append(saved.Units, SnapshotUnit(u))
	}
	if s.GameOver {
		winner := s.Winner
		saved.Winner = &winner
	}
	return saved
}

// Deserialize validates saved and builds a fresh state from it. Selection and
// overlays start empty. The winner is recomputed from the surviving HQs; with
// none left the saved winner is used, or the current player if there is none.
func Deserialize(saved SavedState) (*State, error) {
	if saved.Version != meta.SAVE_VERSION {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, saved.Version)
	}
	if !saved.CurrentPlayer.Valid() {
		return nil, fmt.Errorf("%w: current player %d", ErrMalformedSave, saved.CurrentPlayer)
	}
	if len(saved.PlayerBalances) != 2 {
		return nil, fmt.Errorf("%w: %d player balances", ErrMalformedSave, len(saved.PlayerBalances))
	}
	if saved.Turn < 1 {
		return nil, fmt.Errorf("%w: turn %d", ErrMalformedSave, saved.Turn)
	}

	board, err := NewBoard(saved.MapWidth, saved.MapHeight, saved.Tiles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}

	s := NewState(board, 0)
	s.Turn = saved.Turn
	s.CurrentPlayer = saved.CurrentPlayer
	s.Balances = [2]int{saved.PlayerBalances[0], saved.PlayerBalances[1]}

	for i, su := range saved.Units {
		if err := validateSavedUnit(board, su); err != nil {
			return nil, fmt.Errorf("%w: unit %d: %v", ErrMalformedSave, i, err)
		}
		if _, err := s.Units.Add(su.Unit()); err != nil {
			return nil, fmt.Errorf("%w: unit %d: %v", ErrMalformedSave, i, err)
		}
	}

	hq0 := len(s.Units.Headquarters(0)) > 0
	hq1 := len(s.Units.Headquarters(1)) > 0
	switch {
	case hq0 && !hq1:
		s.GameOver, s.Winner = true, 0
	case hq1 && !hq0:
		s.GameOver, s.Winner = true, 1
	case !hq0 && !hq1:
		s.GameOver, s.Winner = true, saved.CurrentPlayer
		if saved.Winner != nil && saved.Winner.Valid() {
			s.Winner = *saved.Winner
		}
	}
	return s, nil
}

func validateSavedUnit(board *Board, su SavedUnit) error {
	if !su.Type.Valid() {
		return fmt.Errorf("unknown type %d", int(su.Type))
	}
	if !su.Owner.Valid() {
		return fmt.Errorf("invalid owner %d", su.Owner)
	}
	pos := hex.Axial{Q: su.Q, R: su.R}
	if board.Tile(pos) == nil {
		return fmt.Errorf("position %s is off the board", pos)
	}
	if su.MaxHP <= 0 || su.HP <= 0 || su.HP > su.MaxHP {
		return fmt.Errorf("hp %d/%d out of range", su.HP, su.MaxHP)
	}
	if su.RemainingMovement < 0 {
		return fmt.Errorf("negative movement %d", su.RemainingMovement)
	}
	if su.Experience < 0 || su.Experience > meta.MAX_EXPERIENCE {
		return fmt.Errorf("experience %d out of range", su.Experience)
	}
	return nil
}

// MarshalState encodes s as JSON in the save shape.
func MarshalState(s *State) ([]byte, error) {
	return json.Marshal(Serialize(s))
}

// ParseSave decodes a JSON save without validating it.
func ParseSave(data []byte) (SavedState, error) {
	var saved SavedState
	if err := json.Unmarshal(data, &saved); err != nil {
		return SavedState{}, fmt.Errorf("%w: %v", ErrMalformedSave, err)
	}
	return saved, nil
}

// UnmarshalState decodes and validates a JSON save.
func UnmarshalState(data []byte) (*State, error) {
	saved, err := ParseSave(data)
	if err != nil {
		return nil, err
	}
	return Deserialize(saved)
}
