package truntime

import (
	"sort"

	"github.com/davrell/tinybasic/ast"
)

// store is the program store: line number -> statement, iterated in
// ascending numeric order. It is pure data; execution lives in vm.go.
type store struct {
	stmts  map[int]ast.Statement
	order  []int
	sorted bool
}

func newStore() *store {
	return &store{stmts: map[int]ast.Statement{}}
}

func (s *store) set(n int, stmt ast.Statement) {
	if _, ok := s.stmts[n]; !ok {
		s.order = append(s.order, n)
		s.sorted = false
	}
	s.stmts[n] = stmt
}

func (s *store) remove(n int) {
	if _, ok := s.stmts[n]; !ok {
		return
	}
	delete(s.stmts, n)
	for i, m := range s.order {
		if m == n {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *store) clear() {
	s.stmts = map[int]ast.Statement{}
	s.order = s.order[:0]
	s.sorted = true
}

func (s *store) len() int {
	return len(s.stmts)
}

func (s *store) at(n int) (ast.Statement, bool) {
	stmt, ok := s.stmts[n]
	return stmt, ok
}

func (s *store) has(n int) bool {
	_, ok := s.stmts[n]
	return ok
}

func (s *store) numbers() []int {
	if !s.sorted {
		sort.Ints(s.order)
		s.sorted = true
	}
	return s.order
}

func (s *store) first() (int, bool) {
	nums := s.numbers()
	if len(nums) == 0 {
		return 0, false
	}
	return nums[0], true
}

// nextAfter returns the lowest stored line number strictly greater
// than n.
func (s *store) nextAfter(n int) (int, bool) {
	nums := s.numbers()
	i := sort.SearchInts(nums, n+1)
	if i >= len(nums) {
		return 0, false
	}
	return nums[i], true
}
