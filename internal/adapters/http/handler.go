package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/pfaas-go/internal/app"
	"github.com/randomtoy/pfaas-go/internal/domain"
	"github.com/randomtoy/pfaas-go/internal/fair"
)

type Handler struct {
	svc *app.FairService
}

func NewHandler(svc *app.FairService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/dice", h.Dice)
	e.GET("/v1/mines", h.Mines)
	e.GET("/v1/shoe", h.Shoe)
	e.GET("/v1/boxing", h.Boxing)
	e.GET("/v1/flowers", h.Flowers)
	e.POST("/v1/seeds", h.Seeds)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Dice(c echo.Context) error {
	nonce, ok := int64Param(c, "nonce", 0)
	if !ok {
		return badRequest(c, "nonce must be a non-negative integer")
	}

	resp, err := h.svc.RollDice(c.Request().Context(), app.DiceRequest{
		ClientSeed: c.QueryParam("client"),
		ServerSeed: c.QueryParam("server"),
		Nonce:      nonce,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, DiceResponse{
		Roll:   resp.Roll,
		Scaled: resp.Scaled,
		Meta:   meta(c),
	})
}

func (h *Handler) Mines(c echo.Context) error {
	nonce, ok := int64Param(c, "nonce", 0)
	if !ok {
		return badRequest(c, "nonce must be a non-negative integer")
	}
	mines, ok := intParam(c, "mines", 3)
	if !ok {
		return badRequest(c, "mines must be an integer")
	}

	resp, err := h.svc.MineLayout(c.Request().Context(), app.MinesRequest{
		ClientSeed: c.QueryParam("client"),
		ServerSeed: c.QueryParam("server"),
		Nonce:      nonce,
		Mines:      mines,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, MinesResponse{
		Slots:     resp.Slots,
		Positions: resp.Positions,
		Meta:      meta(c),
	})
}

func (h *Handler) Shoe(c echo.Context) error {
	nonce, ok := int64Param(c, "nonce", 0)
	if !ok {
		return badRequest(c, "nonce must be a non-negative integer")
	}
	decks, ok := intParam(c, "decks", domain.ShoeDecks)
	if !ok {
		return badRequest(c, "decks must be an integer")
	}

	deckID := c.QueryParam("deck")
	if deckID == "" {
		deckID = "standard_52"
	}

	resp, err := h.svc.ShuffledShoe(c.Request().Context(), app.ShoeRequest{
		DeckID:     deckID,
		Decks:      decks,
		ClientSeed: c.QueryParam("client"),
		ServerSeed: c.QueryParam("server"),
		Nonce:      nonce,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, ShoeResponse{
		Deck:  resp.DeckID,
		Cards: resp.Cards,
		Meta:  meta(c),
	})
}

func (h *Handler) Boxing(c echo.Context) error {
	rounds, ok := intParam(c, "rounds", 1)
	if !ok {
		return badRequest(c, "rounds must be an integer")
	}

	resp, err := h.svc.BoxingHits(c.Request().Context(), app.BoxingRequest{
		Player1Seed: c.QueryParam("p1"),
		Player2Seed: c.QueryParam("p2"),
		ServerSeed:  c.QueryParam("server"),
		Rounds:      rounds,
	})
	if err != nil {
		return mapError(c, err)
	}

	rows := make([]HitRoundResp, len(resp.Rounds))
	for i, r := range resp.Rounds {
		rows[i] = HitRoundResp{Turn: r.Turn, Player1: r.Player1, Player2: r.Player2}
	}
	return c.JSON(http.StatusOK, BoxingResponse{Rounds: rows, Meta: meta(c)})
}

func (h *Handler) Flowers(c echo.Context) error {
	n, ok := intParam(c, "n", 3)
	if !ok {
		return badRequest(c, "n must be an integer")
	}

	resp, err := h.svc.FlowerHands(c.Request().Context(), app.FlowersRequest{
		Player1Seed: c.QueryParam("p1"),
		Player2Seed: c.QueryParam("p2"),
		ServerSeed:  c.QueryParam("server"),
		N:           n,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, FlowersResponse{
		Player1: resp.Player1,
		Player2: resp.Player2,
		Meta:    meta(c),
	})
}

func (h *Handler) Seeds(c echo.Context) error {
	commit := h.svc.CommitSeed(c.Request().Context())
	return c.JSON(http.StatusCreated, SeedResponse{
		Seed: commit.Seed,
		Hash: commit.Hash,
		Meta: meta(c),
	})
}

func int64Param(c echo.Context, name string, fallback int64) (int64, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func intParam(c echo.Context, name string, fallback int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func meta(c echo.Context) MetaResp {
	requestID, _ := c.Get("request_id").(string)
	return MetaResp{RequestID: requestID}
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrDeckNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fair.ErrInvalidSeed),
		errors.Is(err, fair.ErrInvalidMineCount),
		errors.Is(err, fair.ErrInvalidCount),
		errors.Is(err, fair.ErrInvalidPlayer),
		errors.Is(err, fair.ErrNegativeIndex),
		errors.Is(err, domain.ErrInvalidDeckCount),
		errors.Is(err, app.ErrShoeTooLarge),
		errors.Is(err, app.ErrStreamTooLong):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		requestID, _ := c.Get("request_id").(string)
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
