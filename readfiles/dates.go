package readfiles

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrMalformedDate = errors.New("malformed date")

/*
FormatDate turns a mm/dd/yyyy date into the integer yyyymmdd, so "03/05/1999" becomes 19990305.
Month and day may be written with one digit. Dates that do not exist on the calendar are rejected.
*/
func FormatDate(date string) (formatted int, err error) {
	var (
		month, day, yr int
	)
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		err = fmt.Errorf("%w: %q is not mm/dd/yyyy", ErrMalformedDate, date)
		return
	}
	fields := []*int{&month, &day, &yr}
	for i, part := range parts {
		if len(part) == 0 || strings.ContainsAny(part, "+-") {
			err = fmt.Errorf("%w: %q is not mm/dd/yyyy", ErrMalformedDate, date)
			return
		}
		if *fields[i], err = strconv.Atoi(part); err != nil {
			err = fmt.Errorf("%w: %q: %v", ErrMalformedDate, date, err)
			return
		}
	}
	if len(parts[2]) != 4 {
		err = fmt.Errorf("%w: %q needs a four digit year", ErrMalformedDate, date)
		return
	}
	t := time.Date(yr, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != yr || int(t.Month()) != month || t.Day() != day {
		err = fmt.Errorf("%w: %q is not a calendar date", ErrMalformedDate, date)
		return
	}
	formatted = yr*10000 + month*100 + day
	return
}
