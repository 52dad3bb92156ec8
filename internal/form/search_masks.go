package form

// SearchMasks represents search form fields for listing mask records.
type SearchMasks struct {
	Kind    string `form:"kind"`
	Path    string `form:"path"`
	Review  bool   `form:"review"`
	Invalid bool   `form:"invalid"`
	Count   int    `form:"count" binding:"required" serialize:"-"`
	Offset  int    `form:"offset" serialize:"-"`
}
