package api

import (
	"encoding/json"
	"log"
	"net/http"

	"parkgate/internal/entities"
	"parkgate/internal/service"
)

type GateHandler struct {
	Service *service.GateService
}

func NewGateHandler(svc *service.GateService) *GateHandler {
	return &GateHandler{Service: svc}
}

// CheckPlate receives a detection event from the camera and answers whether
// the gate should open. Denials are normal outcomes and return 200; only
// malformed requests and store failures are HTTP errors.
func (h *GateHandler) CheckPlate(w http.ResponseWriter, r *http.Request) {
	var req entities.GateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	decision, err := h.Service.Authorize(req)
	if err != nil {
		respondError(w, err)
		return
	}
	if decision.Granted {
		log.Printf("Gate: opening for plate %q, spot %s", req.DetectedText, decision.SpotID)
	} else {
		log.Printf("Gate: refused plate %q (%s)", req.DetectedText, decision.Reason)
	}
	respondJSON(w, http.StatusOK, decision)
}
