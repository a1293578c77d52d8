// Package render turns a query result into display models: the map view,
// the weather view and the parsed advice blocks.
//
// Everything here is a pure function of its input. Nothing fails: missing
// or non-numeric values become "N/A". Styling is applied by package ui.
package render
