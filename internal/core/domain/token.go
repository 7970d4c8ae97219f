package domain

// Token is the entity data structure for a token listed on some network.
// NetworkID references a Network by id but is not enforced by the storage
// layer, the association is the caller's responsibility.
type Token struct {
	ID               string `badgerhold:"key"`
	Name             string `badgerholdIndex:"Name"`
	NetworkID        string `badgerholdIndex:"NetworkID"`
	TokenIDOnNetwork string
	Symbol           string
	Decimals         int
	LogoURI          string
}
