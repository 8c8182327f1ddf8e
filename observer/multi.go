package observer

import (
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

var _ avl.Handler = Multi{}

// Multi fans every notification out to all contained handlers in order.
type Multi []avl.Handler

func (m Multi) OnInsert(key any) {
	for _, h := range m {
		h.OnInsert(key)
	}
}

func (m Multi) OnUpdate(key any) {
	for _, h := range m {
		h.OnUpdate(key)
	}
}

func (m Multi) OnRemove(key any) {
	for _, h := range m {
		h.OnRemove(key)
	}
}

func (m Multi) OnRotate(rotation avl.Rotation, pivot any) {
	for _, h := range m {
		h.OnRotate(rotation, pivot)
	}
}
