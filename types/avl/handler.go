package avl

// Handler is notified synchronously about modifications of a Tree.
// Keys are passed as is (boxed), so one handler may observe trees of different types.
//
//go:generate mockgen -destination=mocks/handler.go -package=mockavl . Handler
type Handler interface {

	// Node handlers
	OnInsert(key any)
	OnUpdate(key any)
	OnRemove(key any)

	// Rebalancing handlers
	// NOTE: Double rotation is reported as two single rotations.
	OnRotate(rotation Rotation, pivot any)
}
