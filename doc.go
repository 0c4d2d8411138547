// Package sheetgrid filters spreadsheet workbooks down to the cells
// a user can actually see before they are converted into tables.
//
// Hidden sheets, rows and columns are excluded depending on an explicit
// Options bit set, rows and columns can additionally be restricted
// with a Filter, and the surviving rows and columns are renumbered
// densely starting at 1 in their original order.
// Empty cells and cells holding spreadsheet errors are never returned.
//
// Workbooks are loaded by the packages xlsxsource, xlsbsource and
// csvsource. The converted tables are described in package table.
package sheetgrid
