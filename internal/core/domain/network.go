package domain

// Network is the entity data structure for a chain configuration, either
// shipped as a preset or added by the user.
type Network struct {
	ID                  string `badgerhold:"key"`
	Name                string
	Impl                string
	Symbol              string
	LogoURI             string
	FeeSymbol           string
	Decimals            int
	FeeDecimals         int
	Balance2FeeDecimals int
	RPCURL              string
	Enabled             bool
	Preset              bool
	Position            int
}
