package game

import "fmt"

// Field is the terrain of a tile.
type Field int

const (
	Farmland Field = iota
	Woods
	Hills
	Mountain
	Ocean
	City
	Industry
)

// FieldDef holds the immutable attributes of a terrain type.
type FieldDef struct {
	Name         string
	Land         bool
	MovementCost int
	Defense      int
}

var fieldDefs = map[Field]FieldDef{
	Woods:    {Name: "Woods", Land: true, MovementCost: 2, Defense: 35},
	Ocean:    {Name: "Ocean", Land: false, MovementCost: 1, Defense: 0},
	Mountain: {Name: "Mountain", Land: true, MovementCost: 3, Defense: 50},
	Farmland: {Name: "Farmland", Land: true, MovementCost: 1, Defense: 15},
	Hills:    {Name: "Hills", Land: true, MovementCost: 2, Defense: 35},
	City:     {Name: "City", Land: true, MovementCost: 1, Defense: 40},
	Industry: {Name: "Industry", Land: true, MovementCost: 1, Defense: 40},
}

// Def returns the terrain definition. Panics on an unknown field.
func (f Field) Def() FieldDef {
	def, ok := fieldDefs[f]
	if !ok {
		panic(fmt.Sprintf("unknown field type %d", int(f)))
	}
	return def
}

func (f Field) Valid() bool {
	_, ok := fieldDefs[f]
	return ok
}

func (f Field) String() string {
	if def, ok := fieldDefs[f]; ok {
		return def.Name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Capturable reports whether holding the field yields income.
func (f Field) Capturable() bool {
	return f == City || f == Industry
}
