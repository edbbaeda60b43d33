package model

// Kind discriminates the objects in a documentation tree. The set of kinds is open: hosts may register additional
// kinds through a Registry.
type Kind string

const (
	// KindChef is the kind of the tree root and of the top-level scope of every cookbook source file.
	KindChef Kind = "chef"
	// KindCookbook is the kind of a cookbook.
	KindCookbook Kind = "cookbook"
	// KindResource is the kind of a lightweight resource.
	KindResource Kind = "resource"
	// KindProvider is the kind of a lightweight provider.
	KindProvider Kind = "provider"
	// KindAttribute is the kind of a resource attribute.
	KindAttribute Kind = "attribute"
	// KindAction is the kind of a resource or provider action.
	KindAction Kind = "action"
)

func (k Kind) String() string {
	return string(k)
}
