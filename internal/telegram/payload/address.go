package payload

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var errNotAnAddress error = errors.New("not a valid ethereum address")

// AddressInput is a wallet address received as free text.
type AddressInput struct {
	Address string
}

func (a AddressInput) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.By(checkHexAddress)),
	)
}

func checkHexAddress(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return errNotAnAddress
	}
	return nil
}

// LooksLikeAddress reports whether free text should be treated as a wallet
// address attempt rather than a date or anything else.
func LooksLikeAddress(text string) bool {
	return strings.HasPrefix(text, "0x")
}
