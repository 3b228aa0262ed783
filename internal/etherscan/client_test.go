package etherscan_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/Cracket007/etherscan/internal/etherscan"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server  *httptest.Server
		client  *etherscan.Client
		ctx     context.Context
		address string

		handler    http.HandlerFunc
		lastQuery  map[string]string
		statusCode int
		body       string
	)

	BeforeEach(func() {
		ctx = context.Background()
		address = "0xabc0000000000000000000000000000000000001"
		statusCode = http.StatusOK
		lastQuery = nil

		handler = func(w http.ResponseWriter, r *http.Request) {
			lastQuery = map[string]string{}
			for key, values := range r.URL.Query() {
				lastQuery[key] = values[0]
			}
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(body))
		}
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))
		client = etherscan.NewClient(server.URL, "test-key", server.Client())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("EthBalance", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":"2000000000000000000"}`
		})

		It("returns the raw wei string and sends the right query", func() {
			balance, err := client.EthBalance(ctx, address)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("2000000000000000000"))

			Expect(lastQuery["module"]).To(Equal("account"))
			Expect(lastQuery["action"]).To(Equal("balance"))
			Expect(lastQuery["address"]).To(Equal(address))
			Expect(lastQuery["tag"]).To(Equal("latest"))
			Expect(lastQuery["apikey"]).To(Equal("test-key"))
		})
	})

	Describe("TokenBalance", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":"7500000"}`
		})

		It("passes the contract address along", func() {
			balance, err := client.TokenBalance(ctx, "0xcontract", address)
			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal("7500000"))

			Expect(lastQuery["action"]).To(Equal("tokenbalance"))
			Expect(lastQuery["contractaddress"]).To(Equal("0xcontract"))
		})
	})

	Describe("NormalTransactions", func() {
		When("the address has history", func() {
			BeforeEach(func() {
				body = `{"status":"1","message":"OK","result":[
					{"hash":"0x1","timeStamp":"1700000000","from":"0xa","to":"0xb","value":"1","gasPrice":"2","gasUsed":"3"},
					{"hash":"0x2","timeStamp":"1700000100","from":"0xb","to":"0xa","value":"4"}
				]}`
			})

			It("decodes the record list", func() {
				records, err := client.NormalTransactions(ctx, address)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Hash).To(Equal("0x1"))
				Expect(records[0].TimeStamp).To(Equal("1700000000"))
				Expect(records[0].GasPrice).To(Equal("2"))
				Expect(records[1].Value).To(Equal("4"))

				Expect(lastQuery["action"]).To(Equal("txlist"))
				Expect(lastQuery["sort"]).To(Equal("asc"))
				Expect(lastQuery["startblock"]).To(Equal("0"))
			})
		})

		When("the address has no history", func() {
			BeforeEach(func() {
				body = `{"status":"0","message":"No transactions found","result":[]}`
			})

			It("returns an empty result without error", func() {
				records, err := client.NormalTransactions(ctx, address)
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("the API reports a failure", func() {
			BeforeEach(func() {
				body = `{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`
			})

			It("surfaces an api failure error", func() {
				_, err := client.NormalTransactions(ctx, address)
				Expect(err).To(MatchError(etherscan.ErrAPIFailure))
			})
		})

		When("the server answers with a non-200 status", func() {
			BeforeEach(func() {
				statusCode = http.StatusBadGateway
				body = "bad gateway"
			})

			It("surfaces an api failure error", func() {
				_, err := client.NormalTransactions(ctx, address)
				Expect(err).To(MatchError(etherscan.ErrAPIFailure))
			})
		})

		When("the body is not valid JSON", func() {
			BeforeEach(func() {
				body = "<html>maintenance</html>"
			})

			It("returns a decode error", func() {
				_, err := client.NormalTransactions(ctx, address)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("TokenTransfers", func() {
		BeforeEach(func() {
			body = `{"status":"1","message":"OK","result":[
				{"hash":"0x9","timeStamp":"1700000000","from":"0xa","to":"0xb","value":"1000000","tokenSymbol":"USDT","tokenDecimal":"6"}
			]}`
		})

		It("decodes transfer events with token metadata", func() {
			records, err := client.TokenTransfers(ctx, "0xcontract", address)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].TokenSymbol).To(Equal("USDT"))
			Expect(records[0].TokenDecimal).To(Equal("6"))

			Expect(lastQuery["action"]).To(Equal("tokentx"))
			Expect(lastQuery["contractaddress"]).To(Equal("0xcontract"))
		})
	})
})
