// internal/application/usecase/gem_usecase.go
package usecase

import "math"

// GemPackage is one purchasable bundle in the gem store.
type GemPackage struct {
	ID          int     `json:"id"`
	Gems        int     `json:"gems"`
	Gala        float64 `json:"gala"`
	Description string  `json:"description,omitempty"`
}

// GemUsecase is the pure gem-store catalog and conversion service.
// The exchange rate (gems per GALA) comes from configuration.
type GemUsecase struct {
	ExchangeRate float64
}

func NewGemUsecase(exchangeRate float64) *GemUsecase {
	if exchangeRate <= 0 {
		exchangeRate = 10
	}
	return &GemUsecase{ExchangeRate: exchangeRate}
}

// Packages returns the static catalog.
func (uc *GemUsecase) Packages() []GemPackage {
	return []GemPackage{
		{ID: 1, Gems: 10, Gala: 1, Description: "Starter Pack"},
		{ID: 2, Gems: 50, Gala: 5, Description: "Value Pack"},
		{ID: 3, Gems: 100, Gala: 10, Description: "Popular Pack"},
		{ID: 4, Gems: 500, Gala: 50, Description: "Premium Pack"},
	}
}

// GemsFromGala converts a GALA amount into gems, rounding down.
func (uc *GemUsecase) GemsFromGala(galaAmount float64) int {
	return int(math.Floor(galaAmount * uc.ExchangeRate))
}

// GalaFromGems converts a gem amount into GALA, rounding up.
func (uc *GemUsecase) GalaFromGems(gemAmount int) float64 {
	return math.Ceil(float64(gemAmount) / uc.ExchangeRate)
}

// ValidatePackage checks a purchase request against the catalog.
func (uc *GemUsecase) ValidatePackage(packageID int, galaAmount float64, gemAmount int) bool {
	for _, p := range uc.Packages() {
		if p.ID == packageID {
			return p.Gala == galaAmount && p.Gems == gemAmount
		}
	}
	return false
}
