// Package svgturtle draws the shapes of SVG documents with a pen,
// the way a turtle graphics program would.
//
// The work is split in several packages:
//   - svgpath parses path data and flattens curves into points
//   - svgicon extracts the paths, polygons and lines of a document
//   - svgdraw converts each shape into pen commands and replays them
//   - svgraster and svgpdf provide pens drawing to PNG images and PDF pages
//
// This package ties them together with a file based configuration.
package svgturtle
