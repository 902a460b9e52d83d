package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nguyenvandai202/sodoku-solver/internal/generator"
	"github.com/nguyenvandai202/sodoku-solver/internal/hint"
	"github.com/nguyenvandai202/sodoku-solver/internal/solver"
	"github.com/nguyenvandai202/sodoku-solver/internal/usecase"
	"github.com/nguyenvandai202/sodoku-solver/internal/validator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := solver.NewConstraintSolver()
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.NewSingles(), nil)
	e := gin.New()
	New(uc).Register(e)
	return e
}

func TestSolveEndpoint(t *testing.T) {
	e := newTestRouter()

	board := [9][9]uint8{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
	body, _ := json.Marshal(map[string]any{"board": board})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if resp.Board[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
			if v := board[r][c]; v != 0 && resp.Board[r][c] != v {
				t.Fatalf("clue changed at r=%d c=%d", r, c)
			}
		}
	}
	if resp.Assignments == 0 {
		t.Fatal("missing assignment metric")
	}
}

func TestSolveEndpointNoSolution(t *testing.T) {
	e := newTestRouter()

	var board [9][9]uint8
	board[0][0] = 5
	board[0][1] = 5
	body, _ := json.Marshal(map[string]any{"board": board})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", bytes.NewReader(body))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422: %s", w.Code, w.Body.String())
	}
}

func TestSolveEndpointBadJSON(t *testing.T) {
	e := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/solve", strings.NewReader("{nope"))
	e.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	e := newTestRouter()

	var board [9][9]uint8
	board[2][2] = 4
	board[2][7] = 4
	body, _ := json.Marshal(map[string]any{"board": board})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", bytes.NewReader(body))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Conflicts) == 0 {
		t.Fatalf("row conflict not reported: %+v", resp)
	}
}
