// Package dataprocessing turns the central bank's irregular bulletin
// sheets into typed, walkable data.
//
// # Architecture
//
// The package is organized into four small components:
//
// 1. Loader: opens a workbook sheet with excelize and exposes it as a Grid
// 2. Month resolver: maps the bulletin's multi-language month tokens to 1-12
// 3. Region scanner: finds the contiguous data-row span between title and
// footnote rows
// 4. Row walker: iterates the region carrying the year forward across rows
// that omit it
//
// # Usage
//
//	grid, err := dataprocessing.LoadSheet(path, "Weighted IR on loans-New Bus.")
//	if err != nil {
//	    return err
//	}
//	region, err := dataprocessing.DetectRegion(grid, 1)
//	if err != nil {
//	    return err
//	}
//	walker := dataprocessing.NewRowWalker(grid, region, 0, 1)
//	for {
//	    row, ok, err := walker.Next()
//	    if !ok {
//	        break
//	    }
//	    // err is a per-row problem; skip the row and keep walking
//	}
package dataprocessing
