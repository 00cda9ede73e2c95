package models

import "fmt"

// Cents is a monetary amount in the minor unit of the configured currency.
// All money in the engine is integer minor units; floats never touch the
// pricing path.
type Cents int64

// Times scales the amount by a whole count (nights, guests).
func (c Cents) Times(n int) Cents {
	return c * Cents(n)
}

// Display formats the amount as a major-unit string, e.g. 312600 -> "3126.00".
func (c Cents) Display() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
