package engine

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"hexwar/game"
	"hexwar/hex"
)

// ErrPlacement means no valid start position was found; generate a new map.
var ErrPlacement = errors.New("failed to place starting units")

// startCluster is the unit lineup around each base, in neighbor order.
var startCluster = []game.UnitType{game.Infantry, game.Cavalry, game.MachineGun}

// placeStartUnits puts each player's base and escort on the board. Player 0
// starts in the left third, player 1 in the right third on land connected to
// player 0's base.
func placeStartUnits(s *game.State, rng *rand.Rand) error {
	w := s.Board.Width
	base0, err := placeCluster(s, rng, 0, 0, w/3, nil)
	if err != nil {
		return err
	}
	_, err = placeCluster(s, rng, 1, (2*w)/3, w, &base0)
	return err
}

func placeCluster(s *game.State, rng *rand.Rand, owner game.Player, colMin, colMax int, connectTo *hex.Axial) (hex.Axial, error) {
	base, neighbors, ok := findBase(s, rng, colMin, colMax, connectTo)
	if !ok {
		return hex.Axial{}, fmt.Errorf("%w for player %d", ErrPlacement, owner)
	}
	for i, ut := range startCluster {
		if _, err := s.Units.Add(game.NewUnit(ut, neighbors[i], owner)); err != nil {
			return hex.Axial{}, fmt.Errorf("%w for player %d: %v", ErrPlacement, owner, err)
		}
	}
	if _, err := s.Units.Add(game.NewUnit(game.MilitaryBase, base, owner)); err != nil {
		return hex.Axial{}, fmt.Errorf("%w for player %d: %v", ErrPlacement, owner, err)
	}
	return base, nil
}

// findBase samples random land tiles in [colMin, colMax) until one has enough
// free land around it. The neighbors come back shuffled.
func findBase(s *game.State, rng *rand.Rand, colMin, colMax int, connectTo *hex.Axial) (hex.Axial, []hex.Axial, bool) {
	if colMax <= colMin {
		return hex.Axial{}, nil, false
	}
	maxAttempts := s.Board.Width * s.Board.Height
	for attempt := 0; attempt < maxAttempts; attempt++ {
		row := rng.Intn(s.Board.Height)
		col := rng.Intn(colMax-colMin) + colMin
		tile := s.Board.TileAtColRow(col, row)
		if tile == nil || tile.Field == game.Ocean || s.Units.Occupied(tile.Pos()) {
			continue
		}
		if connectTo != nil && !game.Connected(s.Board, tile.Pos(), *connectTo) {
			continue
		}

		var free []hex.Axial
		for _, n := range s.Neighbors(tile.Pos()) {
			if n.Field != game.Ocean && !s.Units.Occupied(n.Pos()) {
				free = append(free, n.Pos())
			}
		}
		if len(free) < len(startCluster) {
			continue
		}
		rng.Shuffle(len(free), func(i, j int) {
			free[i], free[j] = free[j], free[i]
		})
		return tile.Pos(), free, true
	}
	return hex.Axial{}, nil, false
}
