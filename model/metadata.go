package model

// RunMetadata describes one generation run, stored so a song can be
// rebuilt bit-identically from its seed later.
type RunMetadata struct {
	RunId       string
	Seed        int64
	Paradigm    string
	Bars        uint32
	NumNotes    uint
	NumWarnings uint
}
