package model

// ActionObject represents an action of a lightweight resource or provider.
type ActionObject struct {
	object

	Description string
	Default     bool
}

func NewActionObject(namespace Object, name string) *ActionObject {
	return &ActionObject{object: newObject(KindAction, namespace, name)}
}
