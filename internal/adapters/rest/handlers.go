package rest

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
	"github.com/nguyenvandai202/sodoku-solver/internal/solver"
	"github.com/nguyenvandai202/sodoku-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts all endpoints under /api/v1.
func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").
		Group("/v1")

	v1.POST("/solve", h.solve)
	v1.POST("/generate", h.generate)
	v1.POST("/validate", h.validate)
	v1.POST("/hint", h.hint)
	v1.POST("/puzzles", h.save)
	v1.GET("/puzzles", h.list)
	v1.GET("/puzzles/:id", h.load)
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}

type solveResp struct {
	Board       [9][9]uint8 `json:"board"`
	DurationMs  int64       `json:"durationMs"`
	Nodes       int         `json:"nodes"`
	Assignments int         `json:"assignments,omitempty"`
	Backtracks  int         `json:"backtracks,omitempty"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrNoSolution) {
			status = http.StatusUnprocessableEntity
		} else {
			log.Err(err).Msg("solve board")
		}
		c.JSON(status, gin.H{"error": err.Error(), "nodes": st.Nodes, "backtracks": st.Backtracks})
		return
	}
	c.JSON(http.StatusOK, solveResp{
		Board:       out.Values,
		DurationMs:  st.Duration.Milliseconds(),
		Nodes:       st.Nodes,
		Assignments: st.Assignments,
		Backtracks:  st.Backtracks,
	})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board"`
	Seed       int64        `json:"seed"`
	Difficulty string       `json:"difficulty"`
	DurationMs int64        `json:"durationMs"`
	Nodes      int          `json:"nodes"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	// an empty body is fine: defaults apply
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		log.Err(err).Int64("seed", seed).Msg("generate puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Board:      p.Board,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		log.Err(err).Msg("validate board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req hintReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, ok, err := h.UC.Hint(c.Request.Context(), b, domain.ParseTier(req.MaxTier))
	if err != nil {
		log.Err(err).Msg("hint board")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON", "message": err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		log.Err(err).Str("id", p.ID).Msg("save puzzle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	id := c.Param("id")
	p, err := h.UC.Load(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		log.Err(err).Msg("list puzzles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
