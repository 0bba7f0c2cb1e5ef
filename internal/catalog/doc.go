// Package catalog turns a parsed catalog table into courses and provides
// the operations the CLI runs over them: mapping with the prerequisite
// rule, insertion sort by course number, linear search, display
// formatting, and export.
//
// Session holds the working set for one CLI process. It replaces the
// collection wholesale on every successful load and keeps the previous
// one when a load fails.
package catalog
