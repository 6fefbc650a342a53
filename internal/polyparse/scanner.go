package polyparse

// Scanner is a function which accepts a prefix of the given items, returning
// how many items it consumed. Zero means no match.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds
// if any of them succeeds. Scanners are tried left to right.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts exactly the given item.
func Unit[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		if len(items) > 0 && items[0] == item {
			return 1
		}
		// fail
		return 0
	}
}

// NoneOf accepts a single item which is not one of the given items.
func NoneOf[T comparable](excluded ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 0
		}
		for _, e := range excluded {
			if items[0] == e {
				return 0
			}
		}
		return 1
	}
}

// Many matches zero or more of a given item.
func Many[T any](acceptor Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}
