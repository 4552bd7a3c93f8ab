// Package rest wires the HTTP API: routing, middleware, and handlers.
package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/podiumd/podium/internal/database"
	"github.com/podiumd/podium/internal/rest/handler"
	"github.com/podiumd/podium/internal/rest/middleware/auth"
	"github.com/podiumd/podium/internal/rest/middleware/ratelimit"
	"github.com/podiumd/podium/internal/setup/config"
	"github.com/redis/rueidis"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	questionHandler *handler.QuestionHandler
	voteHandler     *handler.VoteHandler
	accountHandler  *handler.AccountHandler
	activityHandler *handler.ActivityHandler
}

// NewServer creates a new REST API server.
func NewServer(
	db database.Client, limiterClient rueidis.Client, logger *zap.Logger, config *config.APIConfig,
) http.Handler {
	server := &Server{
		questionHandler: handler.NewQuestionHandler(db, logger),
		voteHandler:     handler.NewVoteHandler(db, logger),
		accountHandler:  handler.NewAccountHandler(db, logger),
		activityHandler: handler.NewActivityHandler(db, logger),
	}

	authMiddleware := auth.New(&config.Auth, logger)
	rateLimiter := ratelimit.New(&config.RateLimit, limiterClient, logger)

	router := bunrouter.New()

	router.Use(
		authMiddleware.AsRESTMiddleware,
		rateLimiter.AsRESTMiddleware,
	).WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/questions", server.questionHandler.SubmitQuestion)
		g.GET("/questions", server.questionHandler.ListQuestions)
		g.GET("/questions/:id", server.questionHandler.GetQuestion)
		g.GET("/questions/:id/duplicates", server.questionHandler.GetDuplicates)
		g.POST("/questions/:id/approve", server.questionHandler.ApproveQuestion)
		g.POST("/questions/:id/reject", server.questionHandler.RejectQuestion)
		g.POST("/questions/:id/merge", server.questionHandler.MergeQuestion)
		g.POST("/questions/bulk/approve", server.questionHandler.BulkApprove)
		g.POST("/questions/bulk/reject", server.questionHandler.BulkReject)

		g.PUT("/questions/:id/vote", server.voteHandler.CastVote)
		g.DELETE("/questions/:id/vote", server.voteHandler.RetractVote)

		g.GET("/accounts", server.accountHandler.ListAccounts)
		g.GET("/accounts/:id", server.accountHandler.GetAccount)
		g.POST("/accounts/:id/warn", server.accountHandler.WarnAccount)
		g.POST("/accounts/:id/suspend", server.accountHandler.SuspendAccount)
		g.POST("/accounts/:id/ban", server.accountHandler.BanAccount)
		g.POST("/accounts/:id/restore", server.accountHandler.RestoreAccount)

		g.GET("/audit", server.activityHandler.ListActivity)
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
