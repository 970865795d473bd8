package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carecoin/internal/core"
	"carecoin/internal/http/handler/middleware"
	"carecoin/internal/http/payload"

	"go.uber.org/zap"
)

var (
	RegisterUser       = "POST /api/users"
	GetUser            = "GET /api/users/{walletAddress}"
	GetContracts       = "GET /api/contracts/{networkId}"
	DeployContracts    = "POST /api/contracts/deploy"
	SimulateDeployment = "POST /api/contracts/simulate"
	SubmitCare         = "POST /api/care-tokens"
	ListCareTokens     = "GET /api/care-tokens/{address}"
	AcknowledgeCare    = "POST /api/care-receipts"
	ListCareReceipts   = "GET /api/care-receipts/{address}"
	GetStats           = "GET /api/stats/{address}"
)

type CareHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	care             CareService
}

func NewCareHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, careService CareService) *CareHandler {
	return &CareHandler{
		logs:             logger,
		requestValidator: requestValidator,
		care:             careService,
	}
}

func (h *CareHandler) HandleRegisterUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.UserRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.fail(w, "Invalid user data", fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, RegisterUser, requestId)
		return
	}

	user, err := h.care.RegisterUser(r.Context(), req.WalletAddress)
	if err != nil {
		h.fail(w, "Failed to register user", err, http.StatusInternalServerError, RegisterUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *CareHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	user, err := h.care.GetUser(r.Context(), r.PathValue("walletAddress"))
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) {
			code = http.StatusNotFound
		}
		h.fail(w, "Failed to get user", err, code, GetUser, requestId)
		return
	}

	h.respond(w, user, http.StatusOK, requestId)
}

func (h *CareHandler) HandleGetContracts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	networkID, err := strconv.ParseInt(r.PathValue("networkId"), 10, 64)
	if err != nil {
		h.fail(w, "Invalid network id", fmt.Errorf("parse network id: %w", err), http.StatusBadRequest, GetContracts, requestId)
		return
	}

	contracts, err := h.care.GetContracts(r.Context(), networkID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, core.ErrContractsNotFound) {
			code = http.StatusNotFound
		}
		h.fail(w, "Failed to get contract addresses", err, code, GetContracts, requestId)
		return
	}

	h.respond(w, contracts, http.StatusOK, requestId)
}

func (h *CareHandler) HandleDeployContracts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.DeployContractsRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.fail(w, "Invalid contract data", fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, DeployContracts, requestId)
		return
	}

	contracts, err := h.care.DeployContracts(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Failed to deploy contracts", err, deployStatus(err), DeployContracts, requestId)
		return
	}

	h.respond(w, contracts, http.StatusOK, requestId)
}

func (h *CareHandler) HandleSimulateDeployment(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.SimulateDeployRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.fail(w, "Invalid contract data", fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, SimulateDeployment, requestId)
		return
	}

	contracts, err := h.care.SimulateDeployment(r.Context(), *req.NetworkID)
	if err != nil {
		h.fail(w, "Failed to deploy contracts", err, deployStatus(err), SimulateDeployment, requestId)
		return
	}

	h.respond(w, contracts, http.StatusOK, requestId)
}

func (h *CareHandler) HandleSubmitCare(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CareTokenRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.fail(w, "Invalid care token data", fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, SubmitCare, requestId)
		return
	}

	token, err := h.care.SubmitCare(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Failed to submit care token", err, http.StatusInternalServerError, SubmitCare, requestId)
		return
	}

	h.respond(w, token, http.StatusOK, requestId)
}

func (h *CareHandler) HandleListCareTokens(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	tokens, err := h.care.ListCareTokens(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Failed to get care tokens", err, http.StatusInternalServerError, ListCareTokens, requestId)
		return
	}

	h.respond(w, tokens, http.StatusOK, requestId)
}

func (h *CareHandler) HandleAcknowledgeCare(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.CareReceiptRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.fail(w, "Invalid care receipt data", fmt.Errorf("invalid request payload: %w", err), http.StatusBadRequest, AcknowledgeCare, requestId)
		return
	}

	receipt, err := h.care.AcknowledgeCare(r.Context(), req.ToMessage())
	if err != nil {
		h.fail(w, "Failed to acknowledge care", err, http.StatusInternalServerError, AcknowledgeCare, requestId)
		return
	}

	h.respond(w, receipt, http.StatusOK, requestId)
}

func (h *CareHandler) HandleListCareReceipts(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	receipts, err := h.care.ListCareReceipts(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Failed to get care receipts", err, http.StatusInternalServerError, ListCareReceipts, requestId)
		return
	}

	h.respond(w, receipts, http.StatusOK, requestId)
}

func (h *CareHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	stats, err := h.care.GetStats(r.Context(), r.PathValue("address"))
	if err != nil {
		h.fail(w, "Failed to get stats", err, http.StatusInternalServerError, GetStats, requestId)
		return
	}

	h.respond(w, stats, http.StatusOK, requestId)
}

func deployStatus(err error) int {
	if errors.Is(err, core.ErrContractsAlreadyDeployed) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail logs err and writes the error body. Details of internal errors stay
// in the logs.
func (h *CareHandler) fail(w http.ResponseWriter, message string, err error, code int, handler, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}
	if code == http.StatusInternalServerError {
		resp.Error = unexpectedErr
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func (h *CareHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
