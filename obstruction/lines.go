package obstruction

import "slices"

// below returns the largest value in the ascending line that is < v.
func below(line []int, v int) (int, bool) {
	i, _ := slices.BinarySearch(line, v)
	if i == 0 {
		return 0, false
	}
	return line[i-1], true
}

// above returns the smallest value in the ascending line that is > v.
func above(line []int, v int) (int, bool) {
	i, found := slices.BinarySearch(line, v)
	if found {
		i++
	}
	if i >= len(line) {
		return 0, false
	}
	return line[i], true
}

// insert adds v to the ascending line, keeping it sorted.
func insert(line []int, v int) []int {
	i, found := slices.BinarySearch(line, v)
	if found {
		return line
	}
	return slices.Insert(line, i, v)
}

// remove deletes v from lines[k] and returns the shortened line.
func remove(lines map[int][]int, k, v int) []int {
	line := lines[k]
	i, found := slices.BinarySearch(line, v)
	if !found {
		return line
	}
	return slices.Delete(line, i, i+1)
}

func linesEqual(a, b map[int][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, la := range a {
		lb, ok := b[k]
		if !ok || !slices.Equal(la, lb) {
			return false
		}
	}
	return true
}
