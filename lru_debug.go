//go:build lrutime_debug

package lrutime

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
