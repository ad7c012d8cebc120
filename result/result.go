// Package result provides tagged reply values for scripting test doubles.
// A Reply pairs a Tag with a payload, mirroring the tag-plus-value protocol
// spoken by handlers and fakes in tests.
//
//nolint:ireturn
package result

import "fmt"

// Tag labels the outcome carried by a Reply.
type Tag string

const (
	TagOK      Tag = "ok"
	TagError   Tag = "error"
	TagNoReply Tag = "noreply"
)

// Reply is a tagged pair of an outcome label and its payload.
type Reply[T any] struct {
	tag   Tag
	value T
}

// OK builds a success reply carrying value.
func OK[T any](value T) Reply[T] {
	return Reply[T]{
		tag:   TagOK,
		value: value,
	}
}

// Error builds a failure reply carrying value.
func Error[T any](value T) Reply[T] {
	return Reply[T]{
		tag:   TagError,
		value: value,
	}
}

// NoReply builds a reply indicating no response is sent, carrying value.
func NoReply[T any](value T) Reply[T] {
	return Reply[T]{
		tag:   TagNoReply,
		value: value,
	}
}

func (r Reply[T]) Tag() Tag {
	return r.tag
}

func (r Reply[T]) Value() T { //nolint:ireturn
	return r.value
}

// Unpack returns the tag and payload as separate values.
func (r Reply[T]) Unpack() (Tag, T) { //nolint:ireturn
	return r.tag, r.value
}

func (r Reply[T]) IsOK() bool {
	return r.tag == TagOK
}

func (r Reply[T]) IsError() bool {
	return r.tag == TagError
}

func (r Reply[T]) IsNoReply() bool {
	return r.tag == TagNoReply
}

// String renders the reply as tag(value), e.g. "ok(1)".
func (r Reply[T]) String() string {
	return fmt.Sprintf("%s(%v)", r.tag, r.value)
}

// Returning evaluates both arguments and returns the second. It sequences a
// side effect with the value an expression should produce:
//
//	return result.Returning(server.Stop(), report)
func Returning[A, B any](first A, second B) B { //nolint:ireturn
	_ = first

	return second
}
