package screamingtom

// Recommended migration packages, ordered by site size.
const (
	PackageCore     = "Core Setup"
	PackageClassic  = "Classic Setup"
	PackageComplete = "Complete+ Setup"
)

// MinConclusiveCount is the smallest combined page and file count that
// supports a package recommendation. Totals below it usually mean the site
// was unreachable or the crawl was cut short, so the deal is flagged for
// manual verification instead of being classified.
const MinConclusiveCount = 5

// RecommendPackage maps a combined page and file count to a migration
// package tier.
func RecommendPackage(total int) string {
	switch {
	case total < 50:
		return PackageCore
	case total < 200:
		return PackageClassic
	default:
		return PackageComplete
	}
}
