// Package timeutil parses wall-clock times such as "9:30pm" or "21:30" and
// answers whether a time of day falls inside an hourly span.
//
// # Formats
//
// [ParseClock] accepts 24-hour times ("7:05", "07:05", "23:59") and 12-hour
// times ("7:05am", "12:00PM"). With allowSpaces set, single spaces are also
// accepted around the colon and before the meridiem ("7 : 05 am").
//
// # Spans
//
// An [HourSpan] runs from a start to an end time, both inclusive. A span
// whose end is before its start wraps past midnight:
//
//	night, _ := timeutil.NewHourSpan("22:00", "6:00", false)
//	night.Contains(time.Date(2024, 1, 1, 23, 15, 0, 0, time.UTC)) // true
package timeutil
