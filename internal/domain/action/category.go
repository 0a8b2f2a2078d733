package action

// Category classifies what an action does to the external system it targets.
type Category string

const (
	CategoryRemove Category = "remove"
	CategoryCreate Category = "create"
	CategoryUpdate Category = "update"
)

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRemove, CategoryCreate, CategoryUpdate:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
