// "generator" is an internal package that produces the legal integer
// values of a single cron field.
//
// Each field expression maps to a FieldValueGenerator that enumerates
// candidates within an inclusive scope, reports membership, and finds
// the nearest legal value in either direction. Scalar fields (second,
// minute, hour, month, year) use a generator built once from the
// expression and the field constraints (factory.go). Day fields depend
// on the calendar: the same expression denotes different days in
// different months, so day generators are built per year and month
// (day_of_month.go, day_of_week.go).
package generator
