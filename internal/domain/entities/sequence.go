package entities

import "fmt"

// Sequence is a named counter that issues formatted numbers such as
// LAB00042. Last is the most recently issued value; 0 means none yet.
type Sequence struct {
	Name    string `json:"name"`
	Prefix  string `json:"prefix"`
	Padding int    `json:"padding"`
	Last    int64  `json:"last"`
}

func (s Sequence) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Padding, n)
}
