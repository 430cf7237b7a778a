package types

// ChainSnapshot is the consistent chain-state view resolved by the fetch
// layer before any status or amount derivation runs. CurrentEpoch is nil when
// neither the RPC nor the latest-share-price fallback could resolve it;
// status derivation then falls back to its conservative rules.
type ChainSnapshot struct {
	DomainId     string
	CurrentEpoch *uint64
	CurrentBlock *uint64
	// EpochToSharePrice maps epoch index to the fixed-point price string for
	// that epoch. Entries missing here surface as unresolved amounts.
	EpochToSharePrice map[uint64]string
}

// SharePriceAt returns the recorded price for an epoch, if any.
func (s *ChainSnapshot) SharePriceAt(epoch uint64) (string, bool) {
	if s == nil || s.EpochToSharePrice == nil {
		return "", false
	}
	price, ok := s.EpochToSharePrice[epoch]
	return price, ok
}
