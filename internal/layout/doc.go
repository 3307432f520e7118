// Package layout loads a boarding-pass layout from an HCL file.
//
// A layout file may declare a `row` and a `column` block, each with optional
// `symbols`, `lower` and `upper` attributes:
//
//	row {
//	  symbols = 7
//	  lower   = "F"
//	  upper   = "B"
//	}
//
//	column {
//	  symbols = 3
//	  lower   = "L"
//	  upper   = "R"
//	}
//
// Anything left out keeps the value of boardingpass.DefaultLayout.
package layout
