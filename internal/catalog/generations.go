// Path: internal/catalog/generations.go
package catalog

// Range is an inclusive id interval.
type Range struct {
	Min int
	Max int
}

// Contains reports whether id falls inside the range.
func (r Range) Contains(id int) bool {
	return id >= r.Min && id <= r.Max
}

// Generations maps each generation tag to its id range.
var Generations = map[string]Range{
	"1": {1, 151},
	"2": {152, 251},
	"3": {252, 386},
	"4": {387, 493},
	"5": {494, 649},
	"6": {650, 721},
	"7": {722, 809},
	"8": {810, 905},
	"9": {906, 1010},
}

// GenerationTags lists the generation tags in order.
func GenerationTags() []string {
	return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
}

// LookupGeneration returns the range for tag. Unknown tags report ok=false,
// which callers treat as "no generation filter".
func LookupGeneration(tag string) (Range, bool) {
	r, ok := Generations[tag]
	return r, ok
}
