// Package table implements the delimited-text table used by courseplanner
// to read and write the course catalog file.
//
// Format rules:
//
//   - One record per non-empty line. Blank lines are dropped.
//   - Fields are split on a single configurable separator rune (default ',').
//   - A double quote toggles a "quoted" state in which the separator does not
//     split. Quote characters are kept in the field value verbatim; there is
//     no unescaping and no re-quoting on output.
//   - The file has no header row. The table carries a fixed-width Header whose
//     names may be empty placeholders; every data row is padded to the header
//     width, and a row wider than the header is a FormatError.
//
// A Table is fully buffered in memory and is not safe for concurrent use.
package table
