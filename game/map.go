package game

import "fmt"

// Coordinate is a column or row number, 1 through 5.
type Coordinate int

func NewCoordinate(n int) (Coordinate, error) {
	if n < 1 || n > 5 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidCoordinate, n)
	}
	return Coordinate(n), nil
}

// Field addresses one hexagon cell by column and row.
type Field struct {
	Column Coordinate
	Row    Coordinate
}

// rowsPerColumn and columnOffset describe the hexagon: columns 1 and 5 hold
// three cells, columns 2 and 4 four, the middle column five.
var (
	rowsPerColumn = [6]int{0, 3, 4, 5, 4, 3}
	columnOffset  = [6]int{0, 0, 3, 7, 12, 16}
)

func NewField(column, row int) (Field, error) {
	f := Field{Column: Coordinate(column), Row: Coordinate(row)}
	if !f.Valid() {
		return Field{}, fmt.Errorf("%w: (%d %d)", ErrInvalidField, column, row)
	}
	return f, nil
}

// MustField is NewField for static tables and tests.
func MustField(column, row int) Field {
	f, err := NewField(column, row)
	if err != nil {
		panic(err)
	}
	return f
}

func (f Field) Valid() bool {
	if f.Column < 1 || f.Column > 5 || f.Row < 1 {
		return false
	}
	return int(f.Row) <= rowsPerColumn[f.Column]
}

// Index is the field's position 0..18 in column-major order. It panics for
// invalid fields.
func (f Field) Index() int {
	if !f.Valid() {
		panic(fmt.Sprintf("index of invalid field %v", f))
	}
	return columnOffset[f.Column] + int(f.Row) - 1
}

func (f Field) String() string {
	return fmt.Sprintf("Field(%d %d)", f.Column, f.Row)
}

var allFields = func() [NumFields]Field {
	var fields [NumFields]Field
	i := 0
	for column := 1; column <= 5; column++ {
		for row := 1; row <= rowsPerColumn[column]; row++ {
			fields[i] = Field{Column: Coordinate(column), Row: Coordinate(row)}
			i++
		}
	}
	return fields
}()

// AllFields returns the 19 valid fields in index order.
func AllFields() []Field {
	fields := allFields
	return fields[:]
}

// Section is a straight line of fields scored on one orientation.
type Section struct {
	Orientation Orientation
	Fields      []Field
}

func (s Section) Len() int {
	return len(s.Fields)
}

func at(column, row Coordinate) Field {
	return Field{Column: column, Row: row}
}

var sections = [NumSections]Section{
	// Columns, read on the top edge.
	{Top, []Field{at(1, 1), at(1, 2), at(1, 3)}},
	{Top, []Field{at(2, 1), at(2, 2), at(2, 3), at(2, 4)}},
	{Top, []Field{at(3, 1), at(3, 2), at(3, 3), at(3, 4), at(3, 5)}},
	{Top, []Field{at(4, 1), at(4, 2), at(4, 3), at(4, 4)}},
	{Top, []Field{at(5, 1), at(5, 2), at(5, 3)}},

	// Rising diagonals, read on the left edge.
	{Left, []Field{at(1, 1), at(2, 1), at(3, 1)}},
	{Left, []Field{at(1, 2), at(2, 2), at(3, 2), at(4, 1)}},
	{Left, []Field{at(1, 3), at(2, 3), at(3, 3), at(4, 2), at(5, 1)}},
	{Left, []Field{at(2, 4), at(3, 4), at(4, 3), at(5, 2)}},
	{Left, []Field{at(3, 5), at(4, 4), at(5, 3)}},

	// Falling diagonals, read on the right edge.
	{Right, []Field{at(3, 1), at(4, 1), at(5, 1)}},
	{Right, []Field{at(2, 1), at(3, 2), at(4, 2), at(5, 2)}},
	{Right, []Field{at(1, 1), at(2, 2), at(3, 3), at(4, 3), at(5, 3)}},
	{Right, []Field{at(1, 2), at(2, 3), at(3, 4), at(4, 4)}},
	{Right, []Field{at(1, 3), at(2, 4), at(3, 5)}},
}

// sectionIndices mirrors sections with field indices for the scoring loops.
var sectionIndices = func() [NumSections][]int {
	var out [NumSections][]int
	for i, s := range sections {
		out[i] = make([]int, len(s.Fields))
		for j, field := range s.Fields {
			out[i][j] = field.Index()
		}
	}
	return out
}()

// Sections returns the 15 scoring lines: five per orientation, top first.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Orientation: s.Orientation, Fields: append([]Field(nil), s.Fields...)}
	}
	return out
}
