package domain

// AllBuckets is the bucket sentinel meaning "no bucket constraint"
const AllBuckets = ""

// App represents a package known to the scoop root, installed or not
type App struct {
	Name        string
	Version     string
	Description string
	Homepage    string
	Bucket      string // bucket the manifest came from ("" if unknown)
	Installed   bool
	Path        string // manifest path on disk
}

// Bucket represents a named source of package manifests
type Bucket struct {
	Name      string
	Path      string
	Manifests int
}

// FilterQuery is a single filter request built from the search panel
type FilterQuery struct {
	Text   string
	Bucket string // AllBuckets for every bucket
}

// IsAll reports whether the query spans every bucket
func (q FilterQuery) IsAll() bool {
	return q.Bucket == AllBuckets
}
