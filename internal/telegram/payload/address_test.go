package payload_test

import (
	"github.com/Cracket007/etherscan/internal/telegram/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AddressInput", func() {
	It("accepts a well-formed address", func() {
		input := payload.AddressInput{Address: "0xdAC17F958D2ee523a2206206994597C13D831ec7"}
		Expect(input.Validate()).To(Succeed())
	})

	It("rejects an empty address", func() {
		Expect(payload.AddressInput{}.Validate()).NotTo(Succeed())
	})

	It("rejects an address without the 0x prefix", func() {
		input := payload.AddressInput{Address: "dAC17F958D2ee523a2206206994597C13D831ec7"}
		Expect(input.Validate()).NotTo(Succeed())
	})

	It("rejects an address of the wrong length", func() {
		input := payload.AddressInput{Address: "0xdAC17F958D2ee523a22062069945"}
		Expect(input.Validate()).NotTo(Succeed())
	})

	It("rejects non-hex characters", func() {
		input := payload.AddressInput{Address: "0xZZC17F958D2ee523a2206206994597C13D831ec7"}
		Expect(input.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("LooksLikeAddress", func() {
	It("treats 0x-prefixed text as an address attempt", func() {
		Expect(payload.LooksLikeAddress("0xwhatever")).To(BeTrue())
	})

	It("treats anything else as not an address", func() {
		Expect(payload.LooksLikeAddress("01.02.2023")).To(BeFalse())
	})
})
