// meta/meta.go
package meta

// MAX_EXPERIENCE caps unit experience.
const MAX_EXPERIENCE = 10

// EXPERIENCE_BONUS is the effective offense/defense granted per experience point.
const EXPERIENCE_BONUS = 10

// HEAL_AMOUNT is restored by a Medic heal.
const HEAL_AMOUNT = 50

// PASSIVE_HEAL is restored at turn end for units that neither moved nor acted.
const PASSIVE_HEAL = 10

// ROAD_COST is charged for an Engineer road.
const ROAD_COST = 20

// RETREAT_HP is the HP below which AI units fall back.
const RETREAT_HP = 15

// Income per turn.
const (
	BASE_INCOME     = 10
	CITY_INCOME     = 50
	INDUSTRY_INCOME = 40
)

// STARTING_BALANCE is each player's balance at game start.
const STARTING_BALANCE = 50

// SAVE_VERSION is the only accepted save format version.
const SAVE_VERSION = 1

// Default board dimensions.
const (
	MAP_WIDTH  = 24
	MAP_HEIGHT = 16
)

// MAX_TURNS bounds headless runs.
const MAX_TURNS = 300
