// Package session holds the selection state of one dashboard session.
//
// A Session owns the selected tenant, the view mode and the tuning
// parameters. It is created per dashboard run and injected into the TUI;
// there is no process-wide instance.
//
// # View modes
//
//	AgencyOverview --SelectClientFromOverview(id)--> AgencyDetail(id)
//	AgencyDetail   --BackToOverview()-------------> AgencyOverview
//	Agency*        --ToggleBrandMode()------------> BrandDetail
//	BrandDetail    --ToggleBrandMode()------------> AgencyOverview
//
// Leaving brand mode always lands on the overview; the previous detail
// selection is not restored.
//
// # Bounds
//
// Numeric parameters are clamped on every write, so a Session never holds
// an out-of-range value. A Session is not safe for concurrent use.
package session
