package dietparser

import (
	"github.com/leooon3/mydiet-api/interfaces"
)

// Compile-time check to ensure Parser implements the DietParser interface
var _ interfaces.DietParser = (*Parser)(nil)
