package journal

// Handler receives journal messages in the order they are read.
// Returning an error stops processing.
//
//go:generate mockgen -destination=mocks/handler.go -package=mockjournal . Handler
type Handler interface {
	OnInsertMessage(msg InsertMessage) error
	OnDeleteMessage(msg DeleteMessage) error
	OnFindMessage(msg FindMessage) error
	OnClearMessage(msg ClearMessage) error
	OnUnknownMessage(msg UnknownMessage) error
}
