package page

import (
	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

// Cell is one grid position: a packed character handle, the age it was
// last stamped at, its rendering attributes, and its cached column
// width.
type Cell struct {
	Ch     char.Handle
	Age    Age
	Attr   attr.Attributes
	Width  int
}

// blank returns an empty cell carrying a (background) attribute, the
// state every cell in a line's [fill, width) suffix holds.
func blank(a attr.Attributes, age Age) Cell {
	return Cell{Ch: char.Null, Age: age, Attr: a, Width: 1}
}

// IsBlank reports whether the cell holds no character.
func (c Cell) IsBlank() bool {
	return c.Ch == char.Null
}

// continuation is the internal placeholder a wide character's second
// column holds: an empty handle with Width 0.
func continuation(a attr.Attributes, age Age) Cell {
	c := blank(a, age)
	c.Width = 0
	return c
}

// release frees c's allocated handle storage, if any, before c is
// overwritten or discarded. A no-op for inline handles and for Null.
func release(c *Cell) {
	char.Free(c.Ch)
}
