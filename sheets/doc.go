// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheets turns uploaded spreadsheets into import rows.

Files are read by extension: .csv through encoding/csv, .xlsx and .xlsm
through github.com/xuri/excelize/v2 (first worksheet only). Sheets have no
header row. Columns are:

	rubric:     set name | item name | description | max score
	contestant: name     | info

Cells are trimmed and fully blank rows are dropped. A max score that is not
a number reads as 0 so the importer can skip the row. Anything that cannot
be read at all fails with ErrParse.
*/
package sheets
