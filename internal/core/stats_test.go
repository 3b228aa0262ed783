package core_test

import (
	"github.com/Cracket007/etherscan/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Aggregate", func() {
	var (
		txs    []core.Transaction
		window core.Window

		stats core.Stats
	)

	BeforeEach(func() {
		window = core.Window{}
		txs = []core.Transaction{
			{Timestamp: 100, Direction: core.Outgoing, Value: 2, Fee: 0.1},
			{Timestamp: 200, Direction: core.Incoming, Value: 5},
			{Timestamp: 300, Direction: core.Outgoing, Value: 1, Fee: 0.2},
			{Timestamp: 400, Direction: core.Incoming, Value: 3},
		}
	})

	JustBeforeEach(func() {
		stats = core.Aggregate(txs, window)
	})

	When("the window is open on both sides", func() {
		It("sums every transaction", func() {
			Expect(stats.TotalOut).To(BeNumerically("~", 3, 1e-9))
			Expect(stats.TotalIn).To(BeNumerically("~", 8, 1e-9))
			Expect(stats.TotalFee).To(BeNumerically("~", 0.3, 1e-9))
			Expect(stats.CountOut).To(Equal(2))
			Expect(stats.CountIn).To(Equal(2))
		})
	})

	When("the window bounds the range", func() {
		BeforeEach(func() {
			window = core.Window{Start: 200, End: 300}
		})

		It("includes only transactions inside the bounds, inclusively", func() {
			Expect(stats.CountIn).To(Equal(1))
			Expect(stats.CountOut).To(Equal(1))
			Expect(stats.TotalIn).To(BeNumerically("~", 5, 1e-9))
			Expect(stats.TotalOut).To(BeNumerically("~", 1, 1e-9))
			Expect(stats.TotalFee).To(BeNumerically("~", 0.2, 1e-9))
		})
	})

	When("only one side of the window is set", func() {
		BeforeEach(func() {
			window = core.Window{Start: 300}
		})

		It("leaves the other side open", func() {
			Expect(stats.CountOut).To(Equal(1))
			Expect(stats.CountIn).To(Equal(1))
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			txs = nil
		})

		It("returns zero stats", func() {
			Expect(stats).To(Equal(core.Stats{}))
		})
	})

	When("a transaction set is split into disjoint halves", func() {
		var first, second []core.Transaction

		BeforeEach(func() {
			first = txs[:2]
			second = txs[2:]
		})

		It("aggregates to the sum of the halves", func() {
			a := core.Aggregate(first, window)
			b := core.Aggregate(second, window)

			Expect(stats.TotalIn).To(BeNumerically("~", a.TotalIn+b.TotalIn, 1e-9))
			Expect(stats.TotalOut).To(BeNumerically("~", a.TotalOut+b.TotalOut, 1e-9))
			Expect(stats.TotalFee).To(BeNumerically("~", a.TotalFee+b.TotalFee, 1e-9))
			Expect(stats.CountIn).To(Equal(a.CountIn + b.CountIn))
			Expect(stats.CountOut).To(Equal(a.CountOut + b.CountOut))
		})
	})

	When("fees ride on incoming transactions", func() {
		BeforeEach(func() {
			txs = []core.Transaction{
				{Timestamp: 100, Direction: core.Incoming, Value: 5, Fee: 0.5},
			}
		})

		It("does not count them toward the fee total", func() {
			Expect(stats.TotalFee).To(BeZero())
		})
	})
})

var _ = Describe("Window", func() {
	It("filters nothing when fully open", func() {
		txs := []core.Transaction{{Timestamp: 1}, {Timestamp: 2}}
		Expect(core.Window{}.Filter(txs)).To(HaveLen(2))
	})

	It("keeps only in-range transactions", func() {
		txs := []core.Transaction{{Timestamp: 1}, {Timestamp: 5}, {Timestamp: 9}}
		filtered := core.Window{Start: 2, End: 8}.Filter(txs)
		Expect(filtered).To(HaveLen(1))
		Expect(filtered[0].Timestamp).To(Equal(int64(5)))
	})
})
