package gemini

import (
	"log"

	"youedu/backend/cache"
)

// Service runs the content-generation pipelines (challenges, checkpoints,
// quizzes) on top of the fallback client, memoizing successful results.
type Service struct {
	client *Client
	cache  cache.Cache
	logger *log.Logger
}

func NewService(client *Client, c cache.Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, cache: c, logger: logger}
}

func (s *Service) Client() *Client {
	return s.client
}
