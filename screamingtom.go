// Package screamingtom sizes websites ahead of a migration. It crawls a
// site with a headless browser, counts reachable pages and linked files,
// and maps the total onto a recommended migration package that can be
// written back to the CRM deal the site belongs to.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, hubspot/, sqlite/).
package screamingtom
