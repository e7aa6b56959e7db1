package service

// UnknownAddress is returned for assets with no directory entry. It is a
// sentinel, not an error: the directory never fails.
const UnknownAddress = "Address not available"

// defaultAddresses maps asset ids to demo receiving addresses.
var defaultAddresses = map[string]string{
	"bitcoin":  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	"ethereum": "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
	"solana":   "5DvTCFuRwp1y3m3sXaxjf2SC1vasUuCh4vnwRZnMqmEG",
	"cardano":  "addr1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	"ripple":   "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
}

// StaticAddressDirectory implements ports.AddressDirectory with a fixed
// 1:1 mapping. Entries from configuration override the built-in set.
type StaticAddressDirectory struct {
	addresses map[string]string
}

// NewAddressDirectory creates a directory from the defaults merged with
// overrides (which may be nil).
func NewAddressDirectory(overrides map[string]string) *StaticAddressDirectory {
	addresses := make(map[string]string, len(defaultAddresses)+len(overrides))
	for id, addr := range defaultAddresses {
		addresses[id] = addr
	}
	for id, addr := range overrides {
		addresses[id] = addr
	}
	return &StaticAddressDirectory{addresses: addresses}
}

// AddressFor returns the receiving address for an asset, or the
// UnknownAddress sentinel for unmapped ids.
func (d *StaticAddressDirectory) AddressFor(assetID string) string {
	if addr, ok := d.addresses[assetID]; ok {
		return addr
	}
	return UnknownAddress
}
