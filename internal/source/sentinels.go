package source

// Sentinel values written in place of missing attributes so dimension
// columns are never null, and the marker that tags placeholder postings
// synthesized for orphaned competency references.
const (
	SentinelUnspecified  = "UNSPECIFIED"
	SentinelUnclassified = "UNCLASSIFIED"
	OrphanMarker         = "ORPHANED_RECORD_PRESERVED"
	PlaceholderGeocode   = "000000"
)
