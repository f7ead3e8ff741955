package hibp

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Checker is the breach-lookup contract consumed by the HTTP layer.
type Checker interface {
	CheckPassword(ctx context.Context, password string) (Result, error)
}

// Service combines the range API client with a result cache.
type Service struct {
	client *Client
	cache  *Cache
	logger *logrus.Logger
}

// NewService creates a breach-check service.
func NewService(logger *logrus.Logger, baseURL string, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		client: NewClient(logger, baseURL, timeout),
		cache:  NewCache(logger, cacheTTL),
		logger: logger,
	}
}

// CheckPassword checks a password against the breach corpus, using the cache
// when possible. The empty-password short circuit happens before hashing.
func (s *Service) CheckPassword(ctx context.Context, password string) (Result, error) {
	if password == "" {
		return Result{}, ErrEmptyPassword
	}

	return s.CheckHash(ctx, HashPassword(password))
}

// CheckHash checks a SHA-1 digest against the breach corpus, using the cache
// when possible.
func (s *Service) CheckHash(ctx context.Context, passwordHash string) (Result, error) {
	if result, found := s.cache.Get(passwordHash); found {
		return result, nil
	}

	s.logger.WithField("prefix", passwordHash[:prefixLength]).Debug("cache miss, querying range API")

	result, err := s.client.CheckHash(ctx, passwordHash)
	if err != nil {
		return Result{}, err
	}

	s.cache.Set(passwordHash, result)

	return result, nil
}

// CacheStats returns statistics of the underlying result cache.
func (s *Service) CacheStats() map[string]interface{} {
	return s.cache.Stats()
}
