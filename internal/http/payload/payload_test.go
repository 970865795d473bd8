package payload_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"carecoin/internal/core"
	"carecoin/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func int64Ptr(i int64) *int64 {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

var _ = Describe("Payload", func() {
	var dv payload.DecodeValidator

	Describe("DecodeAndValidateJSONPayload", func() {
		It("should decode and validate a user request", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"walletAddress":"0xABC"}`), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.WalletAddress).To(Equal("0xABC"))
		})

		It("should ignore unknown fields", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"walletAddress":"0xABC","nickname":"bob"}`), &req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject malformed json", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"walletAddress":`), &req)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("should reject data after the json object", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"walletAddress":"0xABC"}{garbage`), &req)
			Expect(err).To(MatchError(payload.ErrTrailingData))
		})

		It("should reject a second json object", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"walletAddress":"0xABC"} {"walletAddress":"0xDEF"}`), &req)
			Expect(err).To(MatchError(payload.ErrTrailingData))
		})

		It("should accept trailing whitespace", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest("{\"walletAddress\":\"0xABC\"}\n  "), &req)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an empty body", func() {
			var req payload.UserRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(``), &req)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a fractional network id", func() {
			var req payload.SimulateDeployRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"networkId":1.5}`), &req)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})

		It("should reject a network id sent as a string", func() {
			var req payload.SimulateDeployRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"networkId":"31"}`), &req)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing network id", func() {
			var req payload.SimulateDeployRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{}`), &req)
			Expect(err).To(MatchError(ContainSubstring("validating payload")))
		})

		It("should accept a zero network id", func() {
			var req payload.SimulateDeployRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"networkId":0}`), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(*req.NetworkID).To(BeZero())
		})
	})

	Describe("UserRequest", func() {
		It("should require a wallet address", func() {
			Expect(payload.UserRequest{}.Validate()).To(HaveOccurred())
		})
	})

	Describe("DeployContractsRequest", func() {
		var req payload.DeployContractsRequest

		BeforeEach(func() {
			req = payload.DeployContractsRequest{
				NetworkID:          int64Ptr(31),
				CareTokenAddress:   "0xtoken",
				CareReceiptAddress: "0xreceipt",
			}
		})

		It("should accept a complete request", func() {
			Expect(req.Validate()).To(Succeed())
			Expect(req.ToMessage()).To(Equal(core.DeployMessage{
				NetworkID:          31,
				CareTokenAddress:   "0xtoken",
				CareReceiptAddress: "0xreceipt",
			}))
		})

		It("should require the network id", func() {
			req.NetworkID = nil
			Expect(req.Validate()).To(MatchError(ContainSubstring("networkId")))
		})

		It("should require both addresses", func() {
			req.CareReceiptAddress = ""
			Expect(req.Validate()).To(MatchError(ContainSubstring("careReceiptAddress")))
		})
	})

	Describe("CareTokenRequest", func() {
		var req payload.CareTokenRequest

		BeforeEach(func() {
			req = payload.CareTokenRequest{
				TokenID:         int64Ptr(1),
				SenderAddress:   "0xABC",
				Message:         "hi",
				TransactionHash: stringPtr("0x1"),
				NetworkID:       int64Ptr(1),
			}
		})

		DescribeTable("message length",
			func(message string, valid bool) {
				req.Message = message
				if valid {
					Expect(req.Validate()).To(Succeed())
				} else {
					Expect(req.Validate()).To(MatchError(ContainSubstring("message")))
				}
			},
			Entry("empty", "", false),
			Entry("one character", "a", true),
			Entry("140 characters", strings.Repeat("a", 140), true),
			Entry("141 characters", strings.Repeat("a", 141), false),
			Entry("140 two-byte characters", strings.Repeat("é", 140), true),
			Entry("70 surrogate pairs", strings.Repeat("💝", 70), true),
			Entry("71 surrogate pairs", strings.Repeat("💝", 71), false),
			Entry("140 surrogate pairs", strings.Repeat("💝", 140), false),
		)

		It("should require the token id", func() {
			req.TokenID = nil
			Expect(req.Validate()).To(MatchError(ContainSubstring("tokenId")))
		})

		It("should require the transaction hash", func() {
			req.TransactionHash = nil
			Expect(req.Validate()).To(MatchError(ContainSubstring("transactionHash")))
		})

		It("should accept an empty transaction hash", func() {
			req.TransactionHash = stringPtr("")
			Expect(req.Validate()).To(Succeed())
			Expect(req.ToMessage().TransactionHash).To(BeEmpty())
		})

		It("should keep the sender address as sent", func() {
			msg := req.ToMessage()
			Expect(msg.SenderAddress).To(Equal("0xABC"))
			Expect(msg.TokenID).To(Equal(int64(1)))
		})
	})

	Describe("CareReceiptRequest", func() {
		var req payload.CareReceiptRequest

		BeforeEach(func() {
			req = payload.CareReceiptRequest{
				TokenID:               int64Ptr(2),
				ReceiverAddress:       "0xDEF",
				OriginalSenderAddress: "0xABC",
				AcknowledgmentMessage: "thanks",
				TransactionHash:       stringPtr("0x2"),
				NetworkID:             int64Ptr(1),
			}
		})

		It("should accept a complete request", func() {
			Expect(req.Validate()).To(Succeed())
			Expect(req.ToMessage()).To(Equal(core.CareReceiptMessage{
				TokenID:               2,
				ReceiverAddress:       "0xDEF",
				OriginalSenderAddress: "0xABC",
				AcknowledgmentMessage: "thanks",
				TransactionHash:       "0x2",
				NetworkID:             1,
			}))
		})

		It("should reject a 141 character acknowledgment", func() {
			req.AcknowledgmentMessage = strings.Repeat("a", 141)
			Expect(req.Validate()).To(MatchError(ContainSubstring("acknowledgmentMessage")))
		})

		It("should accept an empty transaction hash", func() {
			var decoded payload.CareReceiptRequest
			err := dv.DecodeAndValidateJSONPayload(newRequest(`{"tokenId":2,"receiverAddress":"0xDEF","originalSenderAddress":"0xABC","acknowledgmentMessage":"thanks","transactionHash":"","networkId":1}`), &decoded)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.ToMessage().TransactionHash).To(BeEmpty())
		})

		It("should require the transaction hash", func() {
			req.TransactionHash = nil
			Expect(req.Validate()).To(MatchError(ContainSubstring("transactionHash")))
		})

		It("should require the original sender", func() {
			req.OriginalSenderAddress = ""
			Expect(req.Validate()).To(MatchError(ContainSubstring("originalSenderAddress")))
		})
	})
})
