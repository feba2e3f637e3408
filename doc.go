// Package sll defines the shared pieces of the singly linked list library: the coded
// Error type and its sentinels, logging setup, and the UUID element type.
// The algorithms themselves live in the list subpackage, which works on chains of
// Node values identified only by their head. Expression based comparers and
// predicates for map shaped values live in the cel subpackage.
//
// See `list.package` for the node type and every list operation.
package sll

// Head threading
//
// Every list operation takes a head and returns the head the caller must keep using.
// After a mutating call the old head may be a middle node, or no node at all:
//
//	head = list.InsertBegin(head, 4)
//	head = list.RemoveAt(head, 2)
//
// Nothing is shared between calls and nothing is locked. A chain must not be
// mutated from more than one goroutine at a time.
