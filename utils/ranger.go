package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange selects a window of [0, max) from a loop style phrase
func ParseRange(dim string, max int) (I Index, err error) {
	/*
		Converts phrases including:
			""    = full range, from 0 to max
			":"   = full range, from 0 to max
			"end" = last index, max-1
			"N"   = single index N
			"2:N" = range, from 2 to N-1
			":N"  = range, from 0 to N-1
			"N:"  = range, from N to max-1
	*/
	var i1, i2 int
	switch strings.TrimSpace(dim) {
	case "", ":":
		i1, i2 = 0, max
	case "end":
		i1, i2 = max-1, max
	default:
		if i1, i2, err = parseRange(strings.TrimSpace(dim), max); err != nil {
			return
		}
	}
	if i1 < 0 || i2 > max || i1 >= i2 {
		err = fmt.Errorf("range %q is outside [0, %d)", dim, max)
		return
	}
	I = NewRange(i1, i2-1)
	return
}

func parseRange(dim string, max int) (i1, i2 int, err error) {
	splits := strings.Split(dim, ":")
	if len(splits) > 2 {
		err = fmt.Errorf("range %q has more than one colon", dim)
		return
	}
	if len(splits[0]) != 0 {
		if i1, err = strconv.Atoi(splits[0]); err != nil {
			return
		}
	}
	if len(splits) == 1 {
		i2 = i1 + 1
		return
	}
	i2 = max
	if len(splits[1]) != 0 {
		if i2, err = strconv.Atoi(splits[1]); err != nil {
			return
		}
	}
	return
}
