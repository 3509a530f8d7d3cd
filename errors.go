package renderstate

import "errors"

var (
	// ErrUnbalancedNesting reports a Pop without a matching Push, or a
	// BeginRender while frames from a previous pass are still pushed.
	ErrUnbalancedNesting = errors.New("renderstate: unbalanced render state push/pop")

	// ErrInvalidScissor reports a scissor region with a negative size.
	ErrInvalidScissor = errors.New("renderstate: negative scissor dimensions")
)

// panicOnFault is the default fault handler.
func panicOnFault(err error) {
	panic(err)
}
