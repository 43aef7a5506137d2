// Package matrix holds the boolean module grid produced by the encoding
// collaborator and annotates every cell with its functional role. The
// styling pipeline consults roles, never raw positions, to decide which
// component draws a cell.
package matrix

import "fmt"

// MinSize is the smallest valid QR side length (version 1).
const MinSize = 21

// Role labels the function of one module in the grid.
type Role uint8

const (
	// RoleData is an ordinary data module, drawn by the dot builder.
	RoleData Role = iota
	// RoleFinderOuter is part of a 7x7 finder frame.
	RoleFinderOuter
	// RoleFinderInner is part of a 3x3 finder center.
	RoleFinderInner
	// RoleSeparator is the light padding inside and around a finder
	// footprint. Never drawn, never hidden.
	RoleSeparator
	// RoleHidden is a data module suppressed by the logo reservation.
	RoleHidden
)

func (r Role) String() string {
	switch r {
	case RoleData:
		return "data"
	case RoleFinderOuter:
		return "finder-outer"
	case RoleFinderInner:
		return "finder-inner"
	case RoleSeparator:
		return "separator"
	case RoleHidden:
		return "hidden"
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// InvalidMatrixError signals a contract breach by the encoding
// collaborator: a grid below the minimum size or not square.
type InvalidMatrixError struct {
	Reason string
}

func (e *InvalidMatrixError) Error() string {
	return "invalid module matrix: " + e.Reason
}

// Matrix is a square grid of modules with classified roles. The matrix
// owns the roles; the only transition after classification is
// RoleData -> RoleHidden, performed by the logo reservation.
type Matrix struct {
	size    int
	modules []bool
	roles   []Role
}

// New builds a matrix from row-major module rows and classifies every
// cell. Rows must form a square grid of side >= MinSize.
func New(rows [][]bool) (*Matrix, error) {
	n := len(rows)
	if n < MinSize {
		return nil, &InvalidMatrixError{Reason: fmt.Sprintf("side %d below minimum %d", n, MinSize)}
	}
	m := &Matrix{
		size:    n,
		modules: make([]bool, n*n),
		roles:   make([]Role, n*n),
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, &InvalidMatrixError{Reason: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), n)}
		}
		copy(m.modules[r*n:(r+1)*n], row)
	}
	m.classify()
	return m, nil
}

// Size returns the side length in modules.
func (m *Matrix) Size() int { return m.size }

// Dark reports whether the module at (row, col) is active. Out-of-bounds
// cells are inactive.
func (m *Matrix) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.modules[row*m.size+col]
}

// Role returns the classified role at (row, col). Out-of-bounds cells are
// separators: never drawn, never merged with.
func (m *Matrix) Role(row, col int) Role {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return RoleSeparator
	}
	return m.roles[row*m.size+col]
}

// Hide reclassifies a data module as hidden. Finder and separator roles
// are never reassigned; this preserves scanner lock-on regardless of the
// requested exclusion region.
func (m *Matrix) Hide(row, col int) {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return
	}
	i := row*m.size + col
	if m.roles[i] == RoleData {
		m.roles[i] = RoleHidden
	}
}

// DrawableDot reports whether the dot builder should emit geometry for
// (row, col): an active data module that has not been hidden.
func (m *Matrix) DrawableDot(row, col int) bool {
	return m.Dark(row, col) && m.Role(row, col) == RoleData
}

// Clone returns an independent copy. Renders mutate roles via the logo
// reservation, so each render works on its own clone.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		size:    m.size,
		modules: make([]bool, len(m.modules)),
		roles:   make([]Role, len(m.roles)),
	}
	copy(c.modules, m.modules)
	copy(c.roles, m.roles)
	return c
}

// finderOrigins returns the top-left anchors of the three 7x7 finder
// footprints: top-left, top-right, bottom-left. No finder exists at the
// fourth corner.
func (m *Matrix) finderOrigins() [3][2]int {
	return [3][2]int{
		{0, 0},
		{0, m.size - 7},
		{m.size - 7, 0},
	}
}

// classify assigns a role to every cell. Cells default to data; the three
// finder footprints (with their 1-module separator strips) are labeled by
// position within the fixed 7x7 pattern.
func (m *Matrix) classify() {
	for i := range m.roles {
		m.roles[i] = RoleData
	}
	for _, origin := range m.finderOrigins() {
		m.classifyFinder(origin[0], origin[1])
	}
}

func (m *Matrix) classifyFinder(r0, c0 int) {
	// The 7x7 footprint itself.
	for lr := 0; lr < 7; lr++ {
		for lc := 0; lc < 7; lc++ {
			var role Role
			switch {
			case lr == 0 || lr == 6 || lc == 0 || lc == 6:
				role = RoleFinderOuter
			case lr >= 2 && lr <= 4 && lc >= 2 && lc <= 4:
				role = RoleFinderInner
			default:
				role = RoleSeparator
			}
			m.roles[(r0+lr)*m.size+c0+lc] = role
		}
	}
	// The 1-module separator strip between the footprint and the data area.
	for lr := -1; lr <= 7; lr++ {
		for lc := -1; lc <= 7; lc++ {
			r, c := r0+lr, c0+lc
			if r < 0 || c < 0 || r >= m.size || c >= m.size {
				continue
			}
			if lr >= 0 && lr < 7 && lc >= 0 && lc < 7 {
				continue
			}
			m.roles[r*m.size+c] = RoleSeparator
		}
	}
}
