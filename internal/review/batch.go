package review

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// runBatch drives the selection substate. Indices shown to the operator are
// 1-based; the selection set holds 0-based pending indices.
func (s *Session) runBatch() error {
	fmt.Fprintf(s.out, "batch mode: indices, range N-M, pattern W, all, none, show, approve, reject, back\n")
	for s.state == StateBatchSelecting {
		line, ok := s.promptRaw(fmt.Sprintf("batch (%d selected)> ", len(s.selection)))
		if !ok {
			return s.leaveBatch(StateDone)
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch strings.ToLower(cmd) {
		case "all":
			for i := 0; i < s.stores.Pending.Len(); i++ {
				s.selection[i] = struct{}{}
			}
		case "none":
			clear(s.selection)
		case "show":
			s.showSelection()
		case "range":
			if err := s.selectRange(arg); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
			}
		case "pattern":
			s.selectPattern(arg)
		case "approve":
			s.applySelected(s.Approve, "approve")
			return s.leaveBatch(StateReviewing)
		case "reject":
			s.applySelected(s.Reject, "reject")
			return s.leaveBatch(StateReviewing)
		case "back":
			return s.leaveBatch(StateReviewing)
		case "quit", "q":
			return s.leaveBatch(StateDone)
		default:
			if err := s.toggleIndices(cmd); err != nil {
				fmt.Fprintf(s.out, "%v\n", err)
			}
		}
	}
	return nil
}

func (s *Session) leaveBatch(to State) error {
	clear(s.selection)
	return s.transition(to)
}

// toggleIndices flips selection for a single index or a comma list like
// "1,3,5".
func (s *Session) toggleIndices(arg string) error {
	if arg == "" {
		return fmt.Errorf("empty batch command")
	}
	n := s.stores.Pending.Len()
	for _, part := range strings.Split(arg, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("unknown batch command %q", arg)
		}
		if idx < 1 || idx > n {
			return fmt.Errorf("index %d out of range 1-%d", idx, n)
		}
		zero := idx - 1
		if _, ok := s.selection[zero]; ok {
			delete(s.selection, zero)
		} else {
			s.selection[zero] = struct{}{}
		}
	}
	return nil
}

func (s *Session) selectRange(arg string) error {
	lo, hi, ok := strings.Cut(strings.TrimSpace(arg), "-")
	if !ok {
		return fmt.Errorf("range wants N-M, got %q", arg)
	}
	start, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return fmt.Errorf("range wants N-M, got %q", arg)
	}
	end, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return fmt.Errorf("range wants N-M, got %q", arg)
	}
	n := s.stores.Pending.Len()
	if start < 1 || end > n || start > end {
		return fmt.Errorf("range %d-%d out of range 1-%d", start, end, n)
	}
	for i := start; i <= end; i++ {
		s.selection[i-1] = struct{}{}
	}
	return nil
}

// selectPattern adds every pending event whose title contains the given
// substring, case-insensitive.
func (s *Session) selectPattern(arg string) {
	needle := strings.ToLower(strings.TrimSpace(arg))
	if needle == "" {
		fmt.Fprintf(s.out, "pattern wants a word\n")
		return
	}
	matched := 0
	for i := 0; i < s.stores.Pending.Len(); i++ {
		if strings.Contains(strings.ToLower(s.stores.Pending.At(i).Title), needle) {
			s.selection[i] = struct{}{}
			matched++
		}
	}
	fmt.Fprintf(s.out, "%d matched\n", matched)
}

func (s *Session) showSelection() {
	if len(s.selection) == 0 {
		fmt.Fprintf(s.out, "nothing selected\n")
		return
	}
	for _, i := range s.selectedIndices(false) {
		fmt.Fprintf(s.out, "  [%d] %s\n", i+1, s.stores.Pending.At(i).Title)
	}
}

// selectedIndices returns the selection sorted ascending, or descending when
// the caller is about to remove items so earlier indices stay valid.
func (s *Session) selectedIndices(descending bool) []int {
	indices := make([]int, 0, len(s.selection))
	for i := range s.selection {
		indices = append(indices, i)
	}
	if descending {
		sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	} else {
		sort.Ints(indices)
	}
	return indices
}

// applySelected runs one action uniformly over the selection in a single
// pass, highest index first. A failed item stays pending and is reported;
// the rest of the batch proceeds.
func (s *Session) applySelected(action func(int) error, name string) {
	for _, i := range s.selectedIndices(true) {
		title := s.stores.Pending.At(i).Title
		if err := action(i); err != nil {
			fmt.Fprintf(s.out, "cannot %s [%d] %s: %v\n", name, i+1, title, err)
		}
	}
}
