package catalog

import (
	"errors"
	"image/color"

	"charm.land/lipgloss/v2"
)

// LevelsPerModule is the width of each module's level band.
const LevelsPerModule = 100

// MaxLevel is the nominal top of the progression ladder. Levels above the
// last module's band fall back to the generic problem scheme; the trail
// itself only maps levels 1..600 to modules.
const MaxLevel = 1000

// ErrOutOfRange is returned for a module id outside 1..Count().
// UI-level guards should make this unreachable; hitting it means a broken
// invariant upstream, not a user error.
var ErrOutOfRange = errors.New("catalog: module id out of range")

// Module is one themed band of 100 contiguous difficulty levels.
type Module struct {
	ID          int
	Title       string
	Description string

	// Lo and Hi bound the module's level range, both inclusive.
	Lo, Hi int

	// Color is the module's accent color on the trail map.
	Color color.Color
}

// Contains reports whether level falls inside the module's band.
func (m Module) Contains(level int) bool {
	return level >= m.Lo && level <= m.Hi
}

// modules is the static trail table. Ranges partition 1..600 contiguously;
// id order equals range order.
var modules = []Module{
	{ID: 1, Title: "Aritmética Primordial", Lo: 1, Hi: 100, Color: lipgloss.Color("#6366F1"), Description: "Números, operações e fluência básica."},
	{ID: 2, Title: "Proporcionalidade", Lo: 101, Hi: 200, Color: lipgloss.Color("#0EA5E9"), Description: "Razões, proporções e porcentagens."},
	{ID: 3, Title: "Álgebra Inicial", Lo: 201, Hi: 300, Color: lipgloss.Color("#10B981"), Description: "Equações, variáveis e simbolismo."},
	{ID: 4, Title: "Geometria Plana", Lo: 301, Hi: 400, Color: lipgloss.Color("#F59E0B"), Description: "Formas, ângulos, áreas e perímetros."},
	{ID: 5, Title: "Funções e Logaritmos", Lo: 401, Hi: 500, Color: lipgloss.Color("#F97316"), Description: "Relações, gráficos e crescimento."},
	{ID: 6, Title: "Trigonometria", Lo: 501, Hi: 600, Color: lipgloss.Color("#F43F5E"), Description: "Círculo trigonométrico e identidades."},
}

// Count returns the number of modules on the trail.
func Count() int {
	return len(modules)
}

// All returns the modules in trail order. The returned slice is a copy.
func All() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

// ByID returns the module with the given id, or ErrOutOfRange.
func ByID(id int) (Module, error) {
	if id < 1 || id > len(modules) {
		return Module{}, ErrOutOfRange
	}
	return modules[id-1], nil
}

// ForLevel returns the module whose band contains level. Levels above the
// last band clamp to the last module.
func ForLevel(level int) Module {
	if level < 1 {
		return modules[0]
	}
	for _, m := range modules {
		if m.Contains(level) {
			return m
		}
	}
	return modules[len(modules)-1]
}
