package linkedlist

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/emirpasic/gods/utils"
	uuid "github.com/satori/go.uuid"
)

const nilText = "nil"

// Behavior is the type specific logic bound to a node when it is created.
//
// Print renders data to w. Free releases whatever data owns and must leave
// the slot empty; it is called at most once per node.
type Behavior interface {
	Print(w io.Writer, data interface{})
	Free(data *interface{})
}

// BehaviorFuncs adapts a pair of plain functions to Behavior.
// Calling a method whose function is nil is a caller error and panics.
type BehaviorFuncs struct {
	PrintFunc func(w io.Writer, data interface{})
	FreeFunc  func(data *interface{})
}

func (f BehaviorFuncs) Print(w io.Writer, data interface{}) {
	if f.PrintFunc == nil {
		panic("linkedlist: print behavior is nil")
	}
	f.PrintFunc(w, data)
}

func (f BehaviorFuncs) Free(data *interface{}) {
	if f.FreeFunc == nil {
		panic("linkedlist: free behavior is nil")
	}
	f.FreeFunc(data)
}

// Comparator returns a negative number, zero or a positive number; zero is a match.
type Comparator = utils.Comparator

var (
	StringComparator Comparator = utils.StringComparator
	IntComparator    Comparator = utils.IntComparator
)

// UUIDComparator orders uuid.UUID payloads byte by byte.
func UUIDComparator(a, b interface{}) int {
	ua := a.(uuid.UUID)
	ub := b.(uuid.UUID)
	return bytes.Compare(ua.Bytes(), ub.Bytes())
}

var (
	StringBehavior Behavior = stringBehavior{}
	IntBehavior    Behavior = intBehavior{}
	UUIDBehavior   Behavior = uuidBehavior{}
	// ValueBehavior prints any payload with the %v verb.
	ValueBehavior Behavior = valueBehavior{}
)

func clearSlot(data *interface{}) {
	*data = nil
}

type stringBehavior struct{}

func (stringBehavior) Print(w io.Writer, data interface{}) {
	if data == nil {
		io.WriteString(w, nilText)
		return
	}
	io.WriteString(w, data.(string))
}

func (stringBehavior) Free(data *interface{}) { clearSlot(data) }

type intBehavior struct{}

func (intBehavior) Print(w io.Writer, data interface{}) {
	if data == nil {
		io.WriteString(w, nilText)
		return
	}
	io.WriteString(w, strconv.Itoa(data.(int)))
}

func (intBehavior) Free(data *interface{}) { clearSlot(data) }

type uuidBehavior struct{}

func (uuidBehavior) Print(w io.Writer, data interface{}) {
	if data == nil {
		io.WriteString(w, nilText)
		return
	}
	io.WriteString(w, data.(uuid.UUID).String())
}

func (uuidBehavior) Free(data *interface{}) { clearSlot(data) }

type valueBehavior struct{}

func (valueBehavior) Print(w io.Writer, data interface{}) {
	if data == nil {
		io.WriteString(w, nilText)
		return
	}
	fmt.Fprint(w, data)
}

func (valueBehavior) Free(data *interface{}) { clearSlot(data) }
