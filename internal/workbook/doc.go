// Package workbook reads score workbooks and writes the merged fusion sheet.
//
// The expected layout follows the historical merge tool: the first sheet
// carries the canonical roster in column A (or columns A and B when B1 holds
// a non-numeric name part), every later sheet carries one source of records
// with names in the same layout followed by score columns. Name reading stops
// at the first blank cell in column A; score columns stop at the first fully
// empty column.
//
// Write appends a "Fusion" sheet: the sorted roster in column A, one block of
// columns per source with the matched source name and its scores, matches at
// or above the review tier filled red, and a red block of orphan records under
// the roster when any source left records unconsumed.
package workbook
