package game

import "fmt"

// UnitType indexes the unit catalogue.
type UnitType int

const (
	Infantry UnitType = iota
	MachineGun
	Cavalry
	Tank
	Artillery
	Medic
	Engineer
	MilitaryBase
)

// UnitTypeData is the immutable catalogue entry of a unit type.
type UnitTypeData struct {
	Name        string
	MaxMovement int
	Offense     int
	Defense     int
	AttackRange int
	MaxHP       int
	Price       int
}

var unitTypes = map[UnitType]UnitTypeData{
	Infantry:     {Name: "Infantry", MaxMovement: 3, Offense: 10, Defense: 5, AttackRange: 1, MaxHP: 100, Price: 150},
	MachineGun:   {Name: "Machine Gun", MaxMovement: 2, Offense: 15, Defense: 10, AttackRange: 1, MaxHP: 100, Price: 200},
	Cavalry:      {Name: "Cavalry", MaxMovement: 5, Offense: 12, Defense: 5, AttackRange: 1, MaxHP: 100, Price: 250},
	Tank:         {Name: "Tank", MaxMovement: 4, Offense: 25, Defense: 20, AttackRange: 1, MaxHP: 150, Price: 500},
	Artillery:    {Name: "Artillery", MaxMovement: 2, Offense: 30, Defense: 5, AttackRange: 3, MaxHP: 80, Price: 400},
	Medic:        {Name: "Medic", MaxMovement: 3, Offense: 0, Defense: 5, AttackRange: 1, MaxHP: 80, Price: 150},
	Engineer:     {Name: "Engineer", MaxMovement: 3, Offense: 0, Defense: 5, AttackRange: 1, MaxHP: 80, Price: 150},
	MilitaryBase: {Name: "Military Base", MaxMovement: 0, Offense: 0, Defense: 30, AttackRange: 0, MaxHP: 300, Price: 0},
}

// Data returns the catalogue entry. Panics on an unknown type.
func (t UnitType) Data() UnitTypeData {
	data, ok := unitTypes[t]
	if !ok {
		panic(fmt.Sprintf("unknown unit type %d", int(t)))
	}
	return data
}

func (t UnitType) Valid() bool {
	_, ok := unitTypes[t]
	return ok
}

func (t UnitType) String() string {
	if data, ok := unitTypes[t]; ok {
		return data.Name
	}
	return fmt.Sprintf("UnitType(%d)", int(t))
}

// UnitTypes lists every catalogue entry in declaration order.
func UnitTypes() []UnitType {
	return []UnitType{Infantry, MachineGun, Cavalry, Tank, Artillery, Medic, Engineer, MilitaryBase}
}
