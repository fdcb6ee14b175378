package api

import "time"

// DefaultRequestTimeout is the default timeout for API requests
const DefaultRequestTimeout = 10 * time.Second

// DefaultPageTimeout bounds rendering of HTML pages
const DefaultPageTimeout = 30 * time.Second

// maxMultipartMemory is how much of an upload is kept in memory before
// spilling to temporary files. It is not an upload size limit.
const maxMultipartMemory = 32 << 20

// Form field names shared by the catalog page and the submit handler.
const (
	fieldTitle     = "title"
	fieldIssue     = "issue"
	fieldPublisher = "publisher"
	fieldImage     = "image"
)
