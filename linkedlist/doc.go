/*
Package linkedlist implements a singly linked list whose nodes carry, next to
their payload, the Behavior used to print and release that payload. A single
list can therefore hold strings, ints, UUIDs or any caller defined kind side
by side.

Matching is done with a Comparator supplied on every call. Insertions can be
placed relative to the first or last occurrence of a reference value,
removals free the matched node and extractions hand it back to the caller.

Concat splices the other list's nodes into the receiver without copying them
and invalidates the other list, so the shared nodes are owned and torn down
through exactly one List.

A List is not safe for concurrent use.
*/
package linkedlist
