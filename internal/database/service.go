package database

import (
	"github.com/podiumd/podium/internal/database/service"
	"github.com/podiumd/podium/internal/dedup"
	"github.com/podiumd/podium/internal/ranking"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	question *service.QuestionService
	vote     *service.VoteService
	account  *service.AccountService
	bulk     *service.BulkService
}

// NewService creates a new service instance with all services.
func NewService(
	db *bun.DB,
	repository *Repository,
	calc *ranking.Calculator,
	detector *dedup.Detector,
	bulkConcurrency int,
	logger *zap.Logger,
) *Service {
	questionModel := repository.Question()
	voteModel := repository.Vote()
	accountModel := repository.Account()
	activityModel := repository.Activity()

	return &Service{
		question: service.NewQuestion(db, questionModel, activityModel, detector, logger),
		vote:     service.NewVote(db, voteModel, questionModel, calc, logger),
		account:  service.NewAccount(db, accountModel, activityModel, logger),
		bulk:     service.NewBulk(bulkConcurrency, logger),
	}
}

// Question returns the question service.
func (s *Service) Question() *service.QuestionService {
	return s.question
}

// Vote returns the vote service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Account returns the account moderation service.
func (s *Service) Account() *service.AccountService {
	return s.account
}

// Bulk returns the bulk action coordinator.
func (s *Service) Bulk() *service.BulkService {
	return s.bulk
}
