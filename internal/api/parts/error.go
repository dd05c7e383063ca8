package parts

import "HorologeGolang/pkg/response"

var (
	ErrUnknownComponentType = response.NewError(400, "unknown component type")
)
