package linkedlist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert/check"
)

func TestRemove(t *testing.T) {
	t.Run("FirstOccurrence", func(t *testing.T) {
		l, _ := newTestList("remove-first")
		pushBackStrings(t, l, "a", "b", "c", "b")
		check.True(t, l.RemoveFirst("b", StringComparator))
		check.Equal(t, "a c b", render(l))
	})
	t.Run("FirstOccurrenceIsHead", func(t *testing.T) {
		l, _ := newTestList("remove-first-head")
		pushBackStrings(t, l, "a", "b", "a")
		check.True(t, l.RemoveFirst("a", StringComparator))
		check.Equal(t, "b a", render(l))
	})
	t.Run("LastOccurrence", func(t *testing.T) {
		l, _ := newTestList("remove-last")
		pushBackStrings(t, l, "b", "a", "b", "c")
		check.True(t, l.RemoveLast("b", StringComparator))
		check.Equal(t, "b a c", render(l))
	})
	t.Run("LastOccurrenceIsHead", func(t *testing.T) {
		l, _ := newTestList("remove-last-head")
		pushBackStrings(t, l, "a", "b", "c")
		check.True(t, l.RemoveLast("a", StringComparator))
		check.Equal(t, "b c", render(l))
	})
	t.Run("SoleNode", func(t *testing.T) {
		l, _ := newTestList("remove-sole")
		pushBackStrings(t, l, "a")
		check.True(t, l.RemoveLast("a", StringComparator))
		check.True(t, l.Empty())
		check.Equal(t, int64(0), l.Allocator().Live())
	})
	t.Run("NoMatchIsNoop", func(t *testing.T) {
		l, _ := newTestList("remove-none")
		pushBackStrings(t, l, "a", "b")
		check.True(t, !l.RemoveFirst("z", StringComparator))
		check.True(t, !l.RemoveLast("z", StringComparator))
		check.Equal(t, 2, l.Size())

		empty, _ := newTestList("remove-none-empty")
		check.True(t, !empty.RemoveFirst("z", StringComparator))
		check.True(t, !empty.RemoveLast("z", StringComparator))
	})
	t.Run("FreesPayload", func(t *testing.T) {
		l, _ := newTestList("remove-frees")
		rec := &recorder{}
		for i := 1; i <= 3; i++ {
			check.True(t, l.PushBack(i, rec) == nil)
		}
		check.True(t, l.RemoveFirst(2, IntComparator))
		check.Equal(t, "[2]", fmt.Sprint(rec.freed))
		check.Equal(t, int64(2), l.Allocator().Live())
	})
	t.Run("ComparatorOrder", func(t *testing.T) {
		l, _ := newTestList("remove-cmp-order")
		pushBackStrings(t, l, "payload")
		var gotA, gotB interface{}
		l.RemoveFirst("target", func(a, b interface{}) int {
			gotA, gotB = a, b
			return 1
		})
		check.Equal(t, "payload", gotA.(string))
		check.Equal(t, "target", gotB.(string))
	})
}

func TestRemoveAll(t *testing.T) {
	l, _ := newTestList("remove-all")
	for _, v := range []int{7, 1, 7, 7, 2, 7} {
		check.True(t, l.PushBack(v, IntBehavior) == nil)
	}
	check.Equal(t, 4, l.RemoveAll(7, IntComparator))
	check.True(t, l.FindFirst(7, IntComparator) == nil)
	check.Equal(t, "1 2", render(l))
	check.Equal(t, 0, l.RemoveAll(7, IntComparator))

	check.Equal(t, 1, l.RemoveAll(1, IntComparator))
	check.Equal(t, 1, l.RemoveAll(2, IntComparator))
	check.True(t, l.Empty())
	check.Equal(t, int64(0), l.Allocator().Live())
}

func TestExtract(t *testing.T) {
	t.Run("FirstThenFind", func(t *testing.T) {
		l, _ := newTestList("extract-first")
		pushBackStrings(t, l, "a", "b", "c")
		n := l.ExtractFirst("b", StringComparator)
		check.True(t, n != nil)
		check.Equal(t, "b", n.Value().(string))
		check.True(t, n.Next() == nil)
		check.True(t, l.FindFirst("b", StringComparator) == nil)
		check.Equal(t, "a c", render(l))
		check.Equal(t, int64(3), l.Allocator().Live())
		n.Release()
		check.Equal(t, int64(2), l.Allocator().Live())
	})
	t.Run("LastOccurrence", func(t *testing.T) {
		l, _ := newTestList("extract-last")
		check.True(t, l.PushBack(1, IntBehavior) == nil)
		check.True(t, l.PushBack(2, IntBehavior) == nil)
		check.True(t, l.PushBack(1, IntBehavior) == nil)
		check.True(t, l.PushBack(3, IntBehavior) == nil)
		last := l.FindLast(1, IntComparator)
		n := l.ExtractLast(1, IntComparator)
		check.True(t, n == last)
		check.Equal(t, "1 2 3", render(l))
	})
	t.Run("Head", func(t *testing.T) {
		l, _ := newTestList("extract-head")
		pushBackStrings(t, l, "a", "b")
		head := l.Front()
		n := l.ExtractFirst("a", StringComparator)
		check.True(t, n == head)
		check.True(t, n.Next() == nil)
		check.Equal(t, "b", render(l))
	})
	t.Run("SoleNode", func(t *testing.T) {
		l, _ := newTestList("extract-sole")
		pushBackStrings(t, l, "a")
		check.True(t, l.ExtractLast("a", StringComparator) != nil)
		check.True(t, l.Empty())
	})
	t.Run("NoMatch", func(t *testing.T) {
		l, _ := newTestList("extract-none")
		check.True(t, l.ExtractFirst("a", StringComparator) == nil)
		check.True(t, l.ExtractLast("a", StringComparator) == nil)
		pushBackStrings(t, l, "a", "b")
		check.True(t, l.ExtractFirst("z", StringComparator) == nil)
		check.True(t, l.ExtractLast("z", StringComparator) == nil)
		check.Equal(t, 2, l.Size())
	})
	t.Run("PayloadNotFreed", func(t *testing.T) {
		l, _ := newTestList("extract-keeps")
		rec := &recorder{}
		check.True(t, l.PushBack("keep", rec) == nil)
		n := l.ExtractFirst("keep", StringComparator)
		check.Equal(t, 0, len(rec.freed))
		check.Equal(t, "keep", n.Value().(string))
		check.True(t, n.Behavior() == Behavior(rec))
	})
}

func TestFind(t *testing.T) {
	l, _ := newTestList("find")
	pushBackStrings(t, l, "This", "is", "a", "list", "for", "list", "linked")

	first := l.FindFirst("list", StringComparator)
	last := l.FindLast("list", StringComparator)
	check.True(t, first != nil)
	check.True(t, last != nil)
	check.True(t, first != last)
	check.Equal(t, "for", first.Next().Value().(string))
	check.Equal(t, "linked", last.Next().Value().(string))

	check.True(t, l.FindFirst("absent", StringComparator) == nil)
	check.True(t, l.FindLast("absent", StringComparator) == nil)
	check.Equal(t, 7, l.Size())

	single := l.FindFirst("This", StringComparator)
	check.True(t, single == l.FindLast("This", StringComparator))
	check.True(t, single == l.Front())
}

func TestMissingTargetIsLogged(t *testing.T) {
	l, logs := newTestList("remove-missing-log")
	pushBackStrings(t, l, "a")

	check.True(t, !l.RemoveFirst("zz", StringComparator))
	check.True(t, strings.Contains(logs.String(), "remove_first: zz not found"))
	check.True(t, !l.RemoveLast("yy", StringComparator))
	check.True(t, strings.Contains(logs.String(), "remove_last: yy not found"))
	check.Equal(t, 0, l.RemoveAll("xx", StringComparator))
	check.True(t, strings.Contains(logs.String(), "remove_all: xx not found"))
	check.True(t, l.ExtractFirst("ww", StringComparator) == nil)
	check.True(t, strings.Contains(logs.String(), "extract_first: ww not found"))
	check.True(t, l.ExtractLast("vv", StringComparator) == nil)
	check.True(t, strings.Contains(logs.String(), "extract_last: vv not found"))
	check.Equal(t, "a", render(l))
}
