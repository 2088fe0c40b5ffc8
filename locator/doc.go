// Package locator implements the feed-to-geospatial transformation
// pipeline.
//
// It covers:
//   - Parsing and validating the requested vehicle identifier set
//   - Projecting decoded feed entities onto the stable 13-field row schema
//   - Enriching rows with point geometry and a timezone-localized timestamp
//   - Computing the display centroid and building renderer markers/tables
//
// A Snapshot is the unit handed to the presentation layer: the full
// enriched row set for one poll cycle, superseded wholesale by the next.
package locator
