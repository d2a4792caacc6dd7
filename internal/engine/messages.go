package engine

import "fmt"

// ActiveModel's failure message vocabulary. The model renderer and the
// assertion deriver both read from here so the generated specs always
// expect exactly what the generated models produce.
const (
	msgBlank     = "can't be blank"
	msgNotString = "is not a string"
	msgNotNumber = "is not a number"
)

func msgTooLong(max int) string {
	return fmt.Sprintf("is too long (maximum is %d characters)", max)
}

func msgTooBig(upper string) string {
	return fmt.Sprintf("must be less than or equal to %s", upper)
}

func msgTooSmall(lower string) string {
	return fmt.Sprintf("must be greater than or equal to %s", lower)
}
