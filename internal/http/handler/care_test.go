package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"carecoin/internal/core"
	"carecoin/internal/http/handler"
	"carecoin/internal/http/handler/fake"
	"carecoin/internal/http/handler/middleware"
	"carecoin/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func decodeError(w *httptest.ResponseRecorder) handler.Response {
	var resp handler.Response
	Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
	return resp
}

var _ = Describe("CareHandler", func() {
	var (
		ch            *handler.CareHandler
		fakeService   *fake.CareService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		createdAt     time.Time
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.CareService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeAndValidateJSONPayloadStub = payload.DecodeValidator{}.DecodeAndValidateJSONPayload
		createdAt = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

		w = httptest.NewRecorder()
		ch = handler.NewCareHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleRegisterUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"walletAddress":"0xABC"}`))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-1"))
		})

		JustBeforeEach(func() {
			ch.HandleRegisterUser(w, req)
		})

		When("the user is registered", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(core.User{ID: 1, WalletAddress: "0xabc", CreatedAt: createdAt}, nil)
			})

			It("should return the bare user record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(w.Body.String()).To(MatchJSON(`{"id":1,"walletAddress":"0xabc","createdAt":"2025-07-01T12:00:00Z"}`))

				Expect(fakeValidator.DecodeAndValidateJSONPayloadCallCount()).To(Equal(1))
				argReq, _ := fakeValidator.DecodeAndValidateJSONPayloadArgsForCall(0)
				Expect(argReq).To(Equal(req))

				_, address := fakeService.RegisterUserArgsForCall(0)
				Expect(address).To(Equal("0xABC"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{}`))
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				resp := decodeError(w)
				Expect(resp.Message).To(Equal("Invalid user data"))
				Expect(resp.Error).To(ContainSubstring("walletAddress"))
				Expect(fakeService.RegisterUserCallCount()).To(BeZero())
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.RegisterUserReturns(core.User{}, fakeErr)
			})

			It("should hide the error behind status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				resp := decodeError(w)
				Expect(resp.Error).To(Equal("unexpected error occurred"))
				Expect(resp.Error).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/users/0xABC", nil)
			req.SetPathValue("walletAddress", "0xABC")
		})

		JustBeforeEach(func() {
			ch.HandleGetUser(w, req)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.User{ID: 1, WalletAddress: "0xabc"}, nil)
			})

			It("should return it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var user core.User
				Expect(json.NewDecoder(w.Body).Decode(&user)).To(Succeed())
				Expect(user.WalletAddress).To(Equal("0xabc"))

				_, address := fakeService.GetUserArgsForCall(0)
				Expect(address).To(Equal("0xABC"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.User{}, core.ErrUserNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeError(w).Error).To(Equal("user not found"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetUserReturns(core.User{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetContracts", func() {
		JustBeforeEach(func() {
			ch.HandleGetContracts(w, req)
		})

		When("the network id is not an integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/contracts/abc", nil)
				req.SetPathValue("networkId", "abc")
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.GetContractsCallCount()).To(BeZero())
			})
		})

		When("contracts are deployed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/contracts/31", nil)
				req.SetPathValue("networkId", "31")
				token := "0xtoken"
				fakeService.GetContractsReturns(core.Contracts{ID: 1, NetworkID: 31, CareTokenAddress: &token, DeployedAt: createdAt}, nil)
			})

			It("should return them with null for missing addresses", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{
					"id": 1,
					"networkId": 31,
					"careTokenAddress": "0xtoken",
					"careReceiptAddress": null,
					"deployedAt": "2025-07-01T12:00:00Z"
				}`))

				_, networkID := fakeService.GetContractsArgsForCall(0)
				Expect(networkID).To(Equal(int64(31)))
			})
		})

		When("contracts are not deployed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest(http.MethodGet, "/api/contracts/30", nil)
				req.SetPathValue("networkId", "30")
				fakeService.GetContractsReturns(core.Contracts{}, core.ErrContractsNotFound)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(decodeError(w).Error).To(Equal("contracts not deployed for this network"))
			})
		})
	})

	Describe("HandleDeployContracts", func() {
		var body string

		BeforeEach(func() {
			body = `{"networkId":31,"careTokenAddress":"0xtoken","careReceiptAddress":"0xreceipt"}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/contracts/deploy", strings.NewReader(body))
			ch.HandleDeployContracts(w, req)
		})

		When("the network has no contracts", func() {
			BeforeEach(func() {
				fakeService.DeployContractsReturns(core.Contracts{ID: 1, NetworkID: 31}, nil)
			})

			It("should deploy them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, msg := fakeService.DeployContractsArgsForCall(0)
				Expect(msg).To(Equal(core.DeployMessage{
					NetworkID:          31,
					CareTokenAddress:   "0xtoken",
					CareReceiptAddress: "0xreceipt",
				}))
			})
		})

		When("the network already has contracts", func() {
			BeforeEach(func() {
				fakeService.DeployContractsReturns(core.Contracts{}, core.ErrContractsAlreadyDeployed)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeError(w).Error).To(Equal("contracts already deployed for this network"))
			})
		})

		When("the network id is missing", func() {
			BeforeEach(func() {
				body = `{"careTokenAddress":"0xtoken","careReceiptAddress":"0xreceipt"}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.DeployContractsCallCount()).To(BeZero())
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.DeployContractsReturns(core.Contracts{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleSimulateDeployment", func() {
		var body string

		BeforeEach(func() {
			body = `{"networkId":31}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/contracts/simulate", strings.NewReader(body))
			ch.HandleSimulateDeployment(w, req)
		})

		It("should simulate the deployment", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, networkID := fakeService.SimulateDeploymentArgsForCall(0)
			Expect(networkID).To(Equal(int64(31)))
		})

		When("the network id is not an integer", func() {
			BeforeEach(func() {
				body = `{"networkId":31.5}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SimulateDeploymentCallCount()).To(BeZero())
			})
		})

		When("the network already has contracts", func() {
			BeforeEach(func() {
				fakeService.SimulateDeploymentReturns(core.Contracts{}, core.ErrContractsAlreadyDeployed)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleSubmitCare", func() {
		var body string

		BeforeEach(func() {
			body = `{"tokenId":1,"senderAddress":"0xABC","message":"hi","transactionHash":"0x1","networkId":1}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/care-tokens", strings.NewReader(body))
			ch.HandleSubmitCare(w, req)
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeService.SubmitCareReturns(core.CareToken{
					ID:              1,
					TokenID:         1,
					SenderAddress:   "0xabc",
					Message:         "hi",
					TransactionHash: "0x1",
					NetworkID:       1,
					CreatedAt:       createdAt,
				}, nil)
			})

			It("should return the created token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{
					"id": 1,
					"tokenId": 1,
					"senderAddress": "0xabc",
					"message": "hi",
					"transactionHash": "0x1",
					"networkId": 1,
					"createdAt": "2025-07-01T12:00:00Z"
				}`))
			})
		})

		When("the message is too long", func() {
			BeforeEach(func() {
				body = `{"tokenId":1,"senderAddress":"0xABC","message":"` + strings.Repeat("a", 141) + `","transactionHash":"0x1","networkId":1}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeError(w).Error).To(ContainSubstring("message"))
				Expect(fakeService.SubmitCareCallCount()).To(BeZero())
			})
		})

		When("the message is empty", func() {
			BeforeEach(func() {
				body = `{"tokenId":1,"senderAddress":"0xABC","message":"","transactionHash":"0x1","networkId":1}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the body carries data after the token", func() {
			BeforeEach(func() {
				body += `{garbage`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SubmitCareCallCount()).To(BeZero())
			})
		})

		When("the transaction hash is empty", func() {
			BeforeEach(func() {
				body = `{"tokenId":1,"senderAddress":"0xABC","message":"hi","transactionHash":"","networkId":1}`
			})

			It("should pass it to the service", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, msg := fakeService.SubmitCareArgsForCall(0)
				Expect(msg.TransactionHash).To(BeEmpty())
			})
		})

		When("the transaction hash is missing", func() {
			BeforeEach(func() {
				body = `{"tokenId":1,"senderAddress":"0xABC","message":"hi","networkId":1}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SubmitCareCallCount()).To(BeZero())
			})
		})
	})

	Describe("HandleAcknowledgeCare", func() {
		var body string

		BeforeEach(func() {
			body = `{"tokenId":2,"receiverAddress":"0xDEF","originalSenderAddress":"0xABC","acknowledgmentMessage":"thanks","transactionHash":"0x2","networkId":1}`
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/care-receipts", strings.NewReader(body))
			ch.HandleAcknowledgeCare(w, req)
		})

		It("should pass the receipt to the service", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, msg := fakeService.AcknowledgeCareArgsForCall(0)
			Expect(msg.OriginalSenderAddress).To(Equal("0xABC"))
			Expect(msg.AcknowledgmentMessage).To(Equal("thanks"))
		})

		When("the token id is a string", func() {
			BeforeEach(func() {
				body = `{"tokenId":"2","receiverAddress":"0xDEF","originalSenderAddress":"0xABC","acknowledgmentMessage":"thanks","transactionHash":"0x2","networkId":1}`
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.AcknowledgeCareCallCount()).To(BeZero())
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.AcknowledgeCareReturns(core.CareReceipt{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListCareTokens", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/care-tokens/0xnobody", nil)
			req.SetPathValue("address", "0xnobody")
		})

		JustBeforeEach(func() {
			ch.HandleListCareTokens(w, req)
		})

		When("the address has no tokens", func() {
			BeforeEach(func() {
				fakeService.ListCareTokensReturns([]core.CareToken{}, nil)
			})

			It("should return an empty list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`[]`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListCareTokensReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleListCareReceipts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/care-receipts/0xdef", nil)
			req.SetPathValue("address", "0xdef")
		})

		JustBeforeEach(func() {
			ch.HandleListCareReceipts(w, req)
		})

		When("the address has receipts", func() {
			BeforeEach(func() {
				fakeService.ListCareReceiptsReturns([]core.CareReceipt{{ID: 2}, {ID: 1}}, nil)
			})

			It("should return them in order", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var receipts []core.CareReceipt
				Expect(json.NewDecoder(w.Body).Decode(&receipts)).To(Succeed())
				Expect(receipts).To(HaveLen(2))
				Expect(receipts[0].ID).To(Equal(int64(2)))

				_, address := fakeService.ListCareReceiptsArgsForCall(0)
				Expect(address).To(Equal("0xdef"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ListCareReceiptsReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest(http.MethodGet, "/api/stats/0xabc", nil)
			req.SetPathValue("address", "0xabc")
		})

		JustBeforeEach(func() {
			ch.HandleGetStats(w, req)
		})

		When("stats are computed", func() {
			BeforeEach(func() {
				fakeService.GetStatsReturns(core.Stats{
					TotalSent:      2,
					TotalReceived:  1,
					KindnessScore:  35,
					RecentActivity: 3,
					Level:          "Kind Soul",
					Badge:          "🌱",
				}, nil)
			})

			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(MatchJSON(`{
					"totalSent": 2,
					"totalReceived": 1,
					"kindnessScore": 35,
					"recentActivity": 3,
					"level": "Kind Soul",
					"badge": "🌱"
				}`))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.GetStatsReturns(core.Stats{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
