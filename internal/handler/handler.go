// Package handler exposes the simulation engine over HTTP. It is a thin
// collaborator: decode the scenario, run, encode the results.
package handler

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	json "github.com/goccy/go-json"

	"workforce-engine/internal/engine"
	"workforce-engine/internal/model"
)

type Handler struct {
	engine *engine.Engine
	log    *logrus.Logger
}

func New(eng *engine.Engine, log *logrus.Logger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{engine: eng, log: log}
}

// Handle routes POST /simulate. Everything else is a JSON error.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Path()) != "/simulate" {
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
		return
	}
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var scenario model.ScenarioRequest
	if err := json.Unmarshal(ctx.PostBody(), &scenario); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results, err := h.engine.Run(ctx, &scenario)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidScenario) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}
		h.log.WithError(err).Error("simulation failed")
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	ctx.SetContentType("application/json")
	body, err := json.Marshal(results)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding results failed: "+err.Error())
		return
	}
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
