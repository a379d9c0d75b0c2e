package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = NewIndex(size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// NewCountRange is the zero based range [0, N)
func NewCountRange(N int) (r Index) {
	return NewRange(0, N-1)
}
