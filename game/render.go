package game

import (
	"fmt"
	"strconv"
)

// boardTemplate draws the hexagon column by column; each cell shows its top
// value above its left and right values.
const boardTemplate = `
                    _______
                   /       \
           _______/    %s    \_______
          /       \  %s   %s  /       \
  _______/    %s    \_______/    %s    \_______
 /       \  %s   %s  /       \  %s   %s  /       \
/    %s    \_______/    %s    \_______/    %s    \
\  %s   %s  /       \  %s   %s  /       \  %s   %s  /
 \_______/    %s    \_______/    %s    \_______/
 /       \  %s   %s  /       \  %s   %s  /       \
/    %s    \_______/    %s    \_______/    %s    \
\  %s   %s  /       \  %s   %s  /       \  %s   %s  /
 \_______/    %s    \_______/    %s    \_______/
 /       \  %s   %s  /       \  %s   %s  /       \
/    %s    \_______/    %s    \_______/    %s    \
\  %s   %s  /       \  %s   %s  /       \  %s   %s  /
 \_______/    %s    \_______/    %s    \_______/
         \  %s   %s  /       \  %s   %s  /
          \_______/    %s    \_______/
                  \  %s   %s  /
                   \_______/`

// renderBands lists the fields crossing each horizontal band of the template,
// top to bottom. Each band prints the fields' top values, then their left and
// right values one line lower.
var renderBands = [][]Field{
	{at(3, 1)},
	{at(2, 1), at(4, 1)},
	{at(1, 1), at(3, 2), at(5, 1)},
	{at(2, 2), at(4, 2)},
	{at(1, 2), at(3, 3), at(5, 2)},
	{at(2, 3), at(4, 3)},
	{at(1, 3), at(3, 4), at(5, 3)},
	{at(2, 4), at(4, 4)},
	{at(3, 5)},
}

func (b *Board) String() string {
	args := make([]any, 0, 3*NumFields)
	edge := func(field Field, o Orientation) string {
		t, ok := b.At(field)
		if !ok {
			return " "
		}
		return strconv.Itoa(t.Edge(o))
	}
	for _, band := range renderBands {
		for _, field := range band {
			args = append(args, edge(field, Top))
		}
		for _, field := range band {
			args = append(args, edge(field, Left), edge(field, Right))
		}
	}
	return fmt.Sprintf(boardTemplate, args...)
}
