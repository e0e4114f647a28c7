package game

import "hexwar/hex"

// Selection is the per-turn interaction state. Each variant carries only the
// fields valid in that state, so overlays cannot outlive their selection.
type Selection interface {
	selection()
}

// Idle means nothing is selected.
type Idle struct{}

// UnitSelected holds a selected friendly unit and its overlays. Both overlays
// are empty when the unit has already acted.
type UnitSelected struct {
	Unit      UnitID
	Reachable *Reachable
	Overlay   *Overlay
}

// PendingPurchase waits for a drop tile for a unit bought at an HQ.
type PendingPurchase struct {
	Type  UnitType
	Owner Player
	HQ    UnitID
	Drop  *Reachable
}

func (Idle) selection()            {}
func (UnitSelected) selection()    {}
func (PendingPurchase) selection() {}

// State is the single mutable aggregate of a running game.
type State struct {
	Turn          int
	CurrentPlayer Player
	GameOver      bool
	Winner        Player
	SelectedHex   *hex.Axial
	Selection     Selection
	Board         *Board
	Units         *Roster
	Balances      [2]int
}

// NewState creates a turn-one state over the given board with no units.
func NewState(board *Board, balance int) *State {
	return &State{
		Turn:          1,
		CurrentPlayer: 0,
		Winner:        NoPlayer,
		Selection:     Idle{},
		Board:         board,
		Units:         NewRoster(),
		Balances:      [2]int{balance, balance},
	}
}

// Tile is a convenience for s.Board.Tile.
func (s *State) Tile(a hex.Axial) *Tile {
	return s.Board.Tile(a)
}

// Neighbors is a NeighborsFunc over the state's board.
func (s *State) Neighbors(a hex.Axial) []*Tile {
	return s.Board.Neighbors(a)
}

// SelectedUnit returns the selected unit, or nil.
func (s *State) SelectedUnit() *Unit {
	sel, ok := s.Selection.(UnitSelected)
	if !ok {
		return nil
	}
	return s.Units.Get(sel.Unit)
}

// ReachableTiles returns the movement or drop overlay of the active selection.
func (s *State) ReachableTiles() *Reachable {
	switch sel := s.Selection.(type) {
	case UnitSelected:
		return sel.Reachable
	case PendingPurchase:
		return sel.Drop
	}
	return nil
}

// AttackOverlay returns the attack, heal or road overlay of the selected unit.
func (s *State) AttackOverlay() *Overlay {
	if sel, ok := s.Selection.(UnitSelected); ok {
		return sel.Overlay
	}
	return nil
}

// ClearSelection returns to Idle, optionally forgetting the last clicked hex.
func (s *State) ClearSelection(clearHex bool) {
	if clearHex {
		s.SelectedHex = nil
	}
	s.Selection = Idle{}
}

// Holdings counts p's units standing on City or Industry tiles.
func (s *State) Holdings(p Player) int {
	count := 0
	for _, u := range s.Units.Owned(p) {
		if t := s.Tile(u.Pos); t != nil && t.Field.Capturable() {
			count++
		}
	}
	return count
}
