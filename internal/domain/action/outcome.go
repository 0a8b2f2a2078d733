package action

// Kind discriminates the two outcome variants.
type Kind string

const (
	KindSuccess Kind = "success"
	KindFailure Kind = "failure"
)

// Outcome is the settled result of an action. It is either a Success[R] or a
// Failure; callers type-switch on the concrete variant:
//
//	switch o := a.Outcome().(type) {
//	case action.Success[string]:
//	    use(o.Value)
//	case action.Failure:
//	    report(o.Err)
//	}
type Outcome interface {
	Kind() Kind
	outcome()
}

// Success carries the value an action (or a whole batch) settled with.
type Success[R any] struct {
	Value R
}

// Kind implements Outcome.
func (Success[R]) Kind() Kind { return KindSuccess }

func (Success[R]) outcome() {}

// Failure carries the error an action settled with.
type Failure struct {
	Err *ActionError
}

// Kind implements Outcome.
func (Failure) Kind() Kind { return KindFailure }

func (Failure) outcome() {}

// Named pairs an action's name with the value it produced.
type Named[R any] struct {
	Name  string
	Value R
}
