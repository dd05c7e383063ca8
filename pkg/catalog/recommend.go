package catalog

// contextTypes maps a resolved chat category to the component type it is
// about. Categories outside this map fall through to the default spread.
var contextTypes = map[string]ComponentType{
	"cases":  TypeCase,
	"dials":  TypeDial,
	"hands":  TypeHands,
	"bezels": TypeBezel,
}

// Recommend picks components to surface next, biased by the conversation
// context. A component-type category yields the first two entries of that
// type; anything else yields one component per type in case, dial, hands,
// bezel order. An empty bucket is skipped defensively, but Validate treats
// that catalog as misconfigured to begin with.
func Recommend(c *Catalog, context string) []Component {
	if componentType, ok := contextTypes[context]; ok {
		bucket := c.byType[componentType]
		if len(bucket) > 2 {
			bucket = bucket[:2]
		}
		out := make([]Component, len(bucket))
		copy(out, bucket)
		return out
	}

	recommendations := make([]Component, 0, len(ComponentTypes))
	for _, componentType := range ComponentTypes {
		bucket := c.byType[componentType]
		if len(bucket) == 0 {
			continue
		}
		recommendations = append(recommendations, bucket[0])
	}

	return recommendations
}
