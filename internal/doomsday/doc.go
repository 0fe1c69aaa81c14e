// Package doomsday computes the day of the week of a Gregorian date with
// John Conway's Doomsday rule and exposes each intermediate step.
//
// The computation chains four lookups: the century anchor, the year
// doomsday derived with the odd+11 method, the month doomsday date, and
// the shift from that date to the target day. Weekday indices run from
// 0 (Sunday) to 6 (Saturday).
//
// The package holds no mutable state; every function is safe for
// concurrent use.
package doomsday
