package truntime

// A letter's slot is uninitialized, a scalar or an array, never more
// than one of those at a time within a run. Reading an uninitialized
// letter as a scalar yields 0; using it as an array requires DIM
// first.
type slotKind int

const (
	slotUnset slotKind = iota
	slotScalar
	slotArray
)

type slot struct {
	kind  slotKind
	value int64
	array []int64
}

// State holds the 26 variable slots of one run.
type State struct {
	slots [26]slot
}

func slotIndex(name byte) int {
	return int(name - 'A')
}

// Reset returns every letter to uninitialized, clearing scalars and
// dropping array declarations. Run calls this so that repeated runs
// are deterministic.
func (st *State) Reset() {
	for i := range st.slots {
		st.slots[i] = slot{}
	}
}

func (st *State) Scalar(name byte) (int64, error) {
	s := &st.slots[slotIndex(name)]
	if s.kind == slotArray {
		return 0, runtimeErr(TypeMismatch, "%c is an array, not a scalar", name)
	}
	return s.value, nil
}

func (st *State) SetScalar(name byte, v int64) error {
	s := &st.slots[slotIndex(name)]
	if s.kind == slotArray {
		return runtimeErr(TypeMismatch, "%c is an array, not a scalar", name)
	}
	s.kind = slotScalar
	s.value = v
	return nil
}

func (st *State) Element(name byte, index int64) (int64, error) {
	s := &st.slots[slotIndex(name)]
	if s.kind != slotArray {
		if s.kind == slotScalar {
			return 0, runtimeErr(TypeMismatch, "%c is a scalar, not an array", name)
		}
		return 0, runtimeErr(TypeMismatch, "array %c not dimensioned", name)
	}
	if index < 0 || index >= int64(len(s.array)) {
		return 0, runtimeErr(IndexOutOfBounds, "index %d out of bounds for %c (size %d)", index, name, len(s.array))
	}
	return s.array[index], nil
}

func (st *State) SetElement(name byte, index, v int64) error {
	s := &st.slots[slotIndex(name)]
	if s.kind != slotArray {
		if s.kind == slotScalar {
			return runtimeErr(TypeMismatch, "%c is a scalar, not an array", name)
		}
		return runtimeErr(TypeMismatch, "array %c not dimensioned", name)
	}
	if index < 0 || index >= int64(len(s.array)) {
		return runtimeErr(IndexOutOfBounds, "index %d out of bounds for %c (size %d)", index, name, len(s.array))
	}
	s.array[index] = v
	return nil
}

// Dim declares name as an array of size zeroed elements, replacing any
// prior scalar value or declaration for that letter.
func (st *State) Dim(name byte, size int) {
	st.slots[slotIndex(name)] = slot{kind: slotArray, array: make([]int64, size)}
}
