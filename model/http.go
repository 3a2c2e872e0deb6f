package model

type GenerateRequestBody struct {
	Seed     int64  `json:"seed"`
	Paradigm string `json:"paradigm"`
	Bars     uint32 `json:"bars"`
	Format   string `json:"format"`
}

type GenerateResult struct {
	RunId      string   `json:"run_id"`
	Seed       int64    `json:"seed"`
	Paradigm   string   `json:"paradigm"`
	Bars       uint32   `json:"bars"`
	NumNotes   int      `json:"num_notes"`
	Warnings   []string `json:"warnings"`
	NumClashes int      `json:"num_clashes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
