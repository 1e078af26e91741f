package types

import "fmt"

var ErrInvalidWidth = fmt.Errorf("integer width must be positive")

var ErrNotPrimitive = fmt.Errorf("kind is not primitive")

var ErrForeignTrait = fmt.Errorf("trait belongs to another lattice")

var ErrCycle = fmt.Errorf("supertrait cycle")

var ErrInvalidConfig = fmt.Errorf("invalid checker config")
