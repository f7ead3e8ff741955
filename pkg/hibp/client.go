package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://api.pwnedpasswords.com/range/"
	UserAgent      = "passgauge-breach-checker"

	prefixLength = 5
	hashLength   = 40
)

// ErrEmptyPassword is returned before any hashing happens when the password
// is empty. It marks user-correctable input, not a lookup failure.
var ErrEmptyPassword = errors.New("empty password")

// Result is the outcome of a completed breach lookup. Found distinguishes a
// matched range record from the not-found default, so a malformed record
// with count 0 is still reported as a match.
type Result struct {
	Found bool
	Count int
}

// Client talks to a Pwned Passwords compatible range API. Only the first
// five characters of the password's SHA-1 digest ever leave the process.
type Client struct {
	httpClient *http.Client
	logger     *logrus.Logger
	baseURL    string
	userAgent  string
}

// NewClient creates a range API client. An empty baseURL selects the public
// Pwned Passwords endpoint.
func NewClient(logger *logrus.Logger, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:    logger,
		baseURL:   baseURL,
		userAgent: UserAgent,
	}
}

// HashPassword returns the uppercase hex SHA-1 digest of the password bytes.
func HashPassword(password string) string {
	hash := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// CheckPassword looks the password up in the breach corpus and returns how
// many times it has been seen.
func (c *Client) CheckPassword(ctx context.Context, password string) (Result, error) {
	if password == "" {
		return Result{}, ErrEmptyPassword
	}

	return c.CheckHash(ctx, HashPassword(password))
}

// CheckHash looks up a SHA-1 digest in uppercase hex format.
func (c *Client) CheckHash(ctx context.Context, hashStr string) (Result, error) {
	if len(hashStr) != hashLength {
		return Result{}, fmt.Errorf("invalid hash length: expected %d characters, got %d", hashLength, len(hashStr))
	}

	hashStr = strings.ToUpper(hashStr)
	prefix := hashStr[:prefixLength]
	suffix := hashStr[prefixLength:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+prefix, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	c.logger.WithField("prefix", prefix).Debug("checking hash prefix against range API")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("range API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("range API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	result, err := matchSuffix(string(body), suffix)
	if err != nil {
		return Result{}, err
	}

	if result.Found {
		c.logger.WithFields(logrus.Fields{
			"prefix": prefix,
			"count":  result.Count,
		}).Debug("password found in breach corpus")
	} else {
		c.logger.WithField("prefix", prefix).Debug("password not found in breach corpus")
	}

	return result, nil
}

// matchSuffix scans a range response body for the given uppercase hex suffix.
// The first matching record is authoritative, even with a count of zero.
func matchSuffix(body, suffix string) (Result, error) {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}

		if strings.ToUpper(strings.TrimSpace(parts[0])) != suffix {
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return Result{}, fmt.Errorf("failed to parse breach count: %w", err)
		}

		return Result{Found: true, Count: count}, nil
	}

	return Result{}, nil
}
