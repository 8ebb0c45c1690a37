//go:build !lrutime_debug

package lrutime

const debugging = false

func assert(bool, string) {}
