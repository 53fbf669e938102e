package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/GongXiangbo/Knight/board"
	"github.com/GongXiangbo/Knight/knightpath"
	"github.com/GongXiangbo/Knight/notation"
)

// PathsRequest is the query body. BoardSize defaults to 8 when omitted.
type PathsRequest struct {
	BoardSize int    `json:"boardSize"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
}

// PathsResponse carries the full enumeration result. Paths holds every
// shortest path as a sequence of algebraic squares, in canonical order.
type PathsResponse struct {
	Distance        int        `json:"distance"`
	Count           int        `json:"count"`
	Paths           [][]string `json:"paths"`
	ExecutionTimeMs float64    `json:"executionTimeMs"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthHandler answers liveness probes.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PathsHandler runs one enumeration query per request.
func PathsHandler(c *gin.Context) {
	reqID := uuid.NewString()
	c.Header("X-Request-Id", reqID)
	logger := logx.WithContext(c.Request.Context())

	var req PathsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.BoardSize == 0 {
		req.BoardSize = 8
	}

	start, err := notation.Parse(req.Start, req.BoardSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	end, err := notation.Parse(req.End, req.BoardSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Infof("[%s] enumerating %s -> %s on %d×%d board",
		reqID, req.Start, req.End, req.BoardSize, req.BoardSize)

	began := time.Now()
	res, err := knightpath.FindAllShortestPaths(start, end, req.BoardSize,
		knightpath.WithContext(c.Request.Context()))
	elapsed := time.Since(began)

	switch {
	case errors.Is(err, knightpath.ErrUnreachable):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, knightpath.ErrInvalidSquare), errors.Is(err, board.ErrBoardSize):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		logger.Errorf("[%s] enumeration failed: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Infof("[%s] found %d paths of %d moves in %s", reqID, len(res.Paths), res.Distance, elapsed)

	paths := make([][]string, len(res.Paths))
	for i, p := range res.Paths {
		squares := make([]string, len(p))
		for j, sq := range p {
			squares[j] = notation.Format(sq)
		}
		paths[i] = squares
	}

	c.JSON(http.StatusOK, PathsResponse{
		Distance:        res.Distance,
		Count:           len(res.Paths),
		Paths:           paths,
		ExecutionTimeMs: float64(elapsed) / float64(time.Millisecond),
	})
}
