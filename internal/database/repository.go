package database

import (
	"github.com/podiumd/podium/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	question *models.QuestionModel
	vote     *models.VoteModel
	account  *models.AccountModel
	activity *models.ActivityModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		question: models.NewQuestion(db, logger),
		vote:     models.NewVote(db, logger),
		account:  models.NewAccount(db, logger),
		activity: models.NewActivity(db, logger),
	}
}

// Question returns the question model repository.
func (r *Repository) Question() *models.QuestionModel {
	return r.question
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Account returns the account moderation model repository.
func (r *Repository) Account() *models.AccountModel {
	return r.account
}

// Activity returns the audit log model repository.
func (r *Repository) Activity() *models.ActivityModel {
	return r.activity
}
