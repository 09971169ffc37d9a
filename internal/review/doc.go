// Package review drives the operator review loop over the pending store.
//
// A Session walks pending events one at a time in the Reviewing state and
// applies approve, edit, reject, or skip per item. Batch selection is a
// separate state with its own command set; an applied batch action runs
// uniformly over the selection with removals in descending index order so
// earlier indices stay valid. Quit unwinds without reverting transitions
// already committed, so partial progress is durable.
package review
