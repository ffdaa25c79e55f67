package common

const (
	SrcFileExtension = ".ampl"
	ConfigFileName   = "amplc.toml"
	AmplcVersion     = "0.1.0"
)

// DefaultLoadFactor is the maximum load factor of every scope table unless the
// configuration says otherwise.
const DefaultLoadFactor = 0.75
