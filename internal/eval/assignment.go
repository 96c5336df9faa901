package eval

import "fmt"

// MaxVars is the number of distinct propositions: 'A'-'Z' then 'a'-'z'.
const MaxVars = 52

// Assignment maps every proposition letter to a truth value.
type Assignment [MaxVars]bool

// Index maps 'A'-'Z' to 0-25 and 'a'-'z' to 26-51. Anything else lands
// outside [0, MaxVars).
func Index(letter byte) int {
	if letter >= 'A' && letter <= 'Z' {
		return int(letter - 'A')
	}
	return int(letter) - 'a' + 26
}

// Letter is the inverse of Index.
func Letter(idx int) byte {
	if idx < 26 {
		return byte('A' + idx)
	}
	return byte('a' + idx - 26)
}

// IsProposition reports whether letter names a proposition.
func IsProposition(letter byte) bool {
	return (letter >= 'A' && letter <= 'Z') || (letter >= 'a' && letter <= 'z')
}

func (a *Assignment) Set(letter byte, value bool) error {
	if !IsProposition(letter) {
		return fmt.Errorf("invalid proposition %q", letter)
	}
	a[Index(letter)] = value
	return nil
}

func (a *Assignment) Get(letter byte) (bool, error) {
	if !IsProposition(letter) {
		return false, fmt.Errorf("invalid proposition %q", letter)
	}
	return a[Index(letter)], nil
}

// Reset sets every proposition to false.
func (a *Assignment) Reset() {
	*a = Assignment{}
}
