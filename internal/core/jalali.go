// Package core holds the pure domain logic of the ledger: expense and
// category types, amount parsing, calendar conversion and the filter/total
// queries. Nothing in this package performs I/O.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// NormalizeDigits replaces Persian-script digits with their Western
// equivalents and leaves every other rune untouched. Idempotent.
func NormalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		for i, p := range persianDigits {
			if r == p {
				return rune('0' + i)
			}
		}
		return r
	}, s)
}

// Cumulative days before each Gregorian month in a non-leap year.
var gregorianDayOfYear = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// JalaliMonths are the month names in calendar order, Farvardin first.
var JalaliMonths = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// GregorianToJalali converts a Gregorian date string (YYYY/MM/DD or
// YYYY-MM-DD, Persian digits accepted) to its Jalali equivalent, formatted
// jYYYY/MM/DD with zero-padded month and day.
//
// The conversion counts days since the Jalali epoch and walks the 33-year
// intercalation cycle: 12053-day cycles, 1461-day sub-cycles, then a
// remainder correction. The first six Jalali months have 31 days, the rest
// 30, with the boundary at day 186. Gregorian years at or before 1600 use
// era offset 621, later years 1600; this dual-epoch branch is intentional
// and must not be collapsed.
func GregorianToJalali(date string) (string, error) {
	gy, gm, gd, err := splitDate(date)
	if err != nil {
		return "", err
	}
	if gm < 1 || gm > 12 || gd < 1 || gd > 31 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	jy := 979
	if gy <= 1600 {
		jy = 0
		gy -= 621
	} else {
		gy -= 1600
	}
	gy2 := gy
	if gm > 2 {
		gy2 = gy + 1
	}

	days := 365*gy + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 - 80 + gd + gregorianDayOfYear[gm-1]

	jy += 33 * (days / 12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	var jm, jd int
	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}

	return fmt.Sprintf("%d/%02d/%02d", jy, jm, jd), nil
}

// JalaliMonthName returns the display name for a Jalali month (1..12), or an
// empty string out of range.
func JalaliMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return JalaliMonths[month-1]
}

// JalaliYearMonth returns just the Jalali year and month of a Gregorian date.
func JalaliYearMonth(date string) (year, month int, err error) {
	j, err := GregorianToJalali(date)
	if err != nil {
		return 0, 0, err
	}
	parts := strings.SplitN(j, "/", 3)
	year, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	return year, month, nil
}

func splitDate(date string) (y, m, d int, err error) {
	s := NormalizeDigits(strings.TrimSpace(date))
	s = strings.ReplaceAll(s, "-", "/")
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
