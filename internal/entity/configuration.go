package entity

import "time"

// WatchConfiguration is one selected component ID per slot.
type WatchConfiguration struct {
	Case  string `json:"case"`
	Dial  string `json:"dial"`
	Hands string `json:"hands"`
	Bezel string `json:"bezel"`
}

// ComponentIDs flattens the configuration in case, dial, hands, bezel
// order, skipping empty slots.
func (c WatchConfiguration) ComponentIDs() []string {
	ids := make([]string, 0, 4)
	for _, id := range []string{c.Case, c.Dial, c.Hands, c.Bezel} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SharedConfiguration is the payload parked in Redis behind a share code.
// There is no durable configuration store; share codes expire with their TTL.
type SharedConfiguration struct {
	Name     string             `json:"name"`
	Config   WatchConfiguration `json:"config"`
	SharedAt time.Time          `json:"shared_at"`
}
