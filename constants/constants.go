package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMetadataTable() string {
	return os.Getenv("CANTUS_DDB_TABLE")
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("CANTUS_DDB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const TicksPerQuarter = 480
const TicksPerBar = 1920
const TicksPerEighth = 240
const TicksPerSixteenth = 120

// Below this pitch the stricter bass proximity rule applies (middle C).
const LowRegisterThreshold = 60

// Raw semitone distance against the bass considered muddy in the low
// register, unless the caller overrides it.
const DefaultBassInterval = 3

// Candidates gathered by the outward walk before scoring stops looking.
const MaxPitchCandidates = 8

// Candidate scoring weights. Harmonic stability dominates intent
// proximity, which dominates the melodic-shape dimensions.
const (
	WeightContinuity float64 = 1.0
	WeightHarmonic   float64 = 6.0
	WeightContour    float64 = 2.0
	WeightTessitura  float64 = 0.5
	WeightIntent     float64 = 3.0
)
