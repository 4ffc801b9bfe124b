package metrics

// Attribute keys shared across instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrAdapter  = "adapter"
	AttrResource = "resource"
)
