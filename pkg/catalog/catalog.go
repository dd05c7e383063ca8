package catalog

import "fmt"

type ComponentType string

const (
	TypeCase  ComponentType = "case"
	TypeDial  ComponentType = "dial"
	TypeHands ComponentType = "hands"
	TypeBezel ComponentType = "bezel"
)

// ComponentTypes is the closed set of buckets a catalog must fill,
// in the order recommendations and exports present them.
var ComponentTypes = []ComponentType{TypeCase, TypeDial, TypeHands, TypeBezel}

type Component struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          ComponentType `json:"type"`
	Price         float64       `json:"price"`
	Compatibility []string      `json:"compatibility"`
	Material      string        `json:"material,omitempty"`
	Description   string        `json:"description"`
}

// Catalog is an immutable lookup table of components. It is built once at
// startup and shared read-only between the chatbot and the configurator.
type Catalog struct {
	components []Component
	byID       map[string]Component
	byType     map[ComponentType][]Component
}

func New(components []Component) *Catalog {
	c := &Catalog{
		components: make([]Component, len(components)),
		byID:       make(map[string]Component, len(components)),
		byType:     make(map[ComponentType][]Component),
	}

	copy(c.components, components)
	for _, component := range c.components {
		c.byID[component.ID] = component
		c.byType[component.Type] = append(c.byType[component.Type], component)
	}

	return c
}

// Validate reports a configuration error when any of the four component
// types has no entries. Callers are expected to fail startup on this.
func (c *Catalog) Validate() error {
	for _, componentType := range ComponentTypes {
		if len(c.byType[componentType]) == 0 {
			return fmt.Errorf("catalog has no components of type %q", componentType)
		}
	}
	return nil
}

func (c *Catalog) ByID(id string) (Component, bool) {
	component, ok := c.byID[id]
	return component, ok
}

// OfType returns the components of one type in declaration order.
func (c *Catalog) OfType(componentType ComponentType) []Component {
	bucket := c.byType[componentType]
	out := make([]Component, len(bucket))
	copy(out, bucket)
	return out
}

func (c *Catalog) All() []Component {
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

func (c *Catalog) Len() int {
	return len(c.components)
}

// Resolve maps IDs to components, silently dropping IDs the catalog does not
// know and duplicates of IDs already seen. Input order is preserved for the
// survivors. Catalogs and user selections drift independently, so a dangling
// ID is lenient degradation, not an error.
func (c *Catalog) Resolve(ids []string) []Component {
	seen := make(map[string]bool, len(ids))
	resolved := make([]Component, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if component, ok := c.byID[id]; ok {
			resolved = append(resolved, component)
		}
	}

	return resolved
}
