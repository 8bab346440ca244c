package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const slipNumberLength = 12

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewSlipNumber returns a random Luhn-valid reference printed on a betting slip.
func NewSlipNumber() string {
	return goluhn.Generate(slipNumberLength)
}
