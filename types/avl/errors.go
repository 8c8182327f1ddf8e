package avl

import (
	"errors"
)

var (
	ErrorTreeNodeNotFound = errors.New("tree node is not found")
	ErrorTreeCorrupted    = errors.New("tree is corrupted")
)
