package openrouter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
	"github.com/rios0rios0/commitforge/internal/domain/repositories"
)

const (
	defaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	userAgent       = "commitforge"
	referer         = "https://github.com/rios0rios0/commitforge"

	requestTimeout = 60 * time.Second

	minConcurrency = 1
	maxConcurrency = 10
)

// ErrMissingAPIKey is returned by every call when no key is configured.
var ErrMissingAPIKey = errors.New("OpenRouter API key not configured")

var invalidBranchChars = regexp.MustCompile(`[^a-z0-9./_-]+`)

// ModelRepository calls OpenRouter's chat-completions endpoint. A
// weighted semaphore caps the number of in-flight requests.
type ModelRepository struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
	limiter    *semaphore.Weighted
}

// NewModelRepository creates a client for the given key and model. The
// concurrency width is clamped to 1..10.
func NewModelRepository(apiKey, model string, concurrency int) repositories.ModelRepository {
	if concurrency < minConcurrency {
		concurrency = minConcurrency
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	return &ModelRepository{
		apiKey:     apiKey,
		model:      model,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    semaphore.NewWeighted(int64(concurrency)),
	}
}

// GenerateCommitMessage asks the model for one conventional-commit line.
// Replies that do not match the expected shape fall back to a generic
// message instead of failing.
func (it *ModelRepository) GenerateCommitMessage(
	ctx context.Context,
	change entities.FileChange,
	diff string,
) (entities.CommitMessage, error) {
	reply, err := it.complete(ctx, buildCommitMessagePrompt(change, diff))
	if err != nil {
		return entities.CommitMessage{}, err
	}

	message, ok := entities.ParseCommitMessage(reply)
	if !ok {
		logger.Debugf("model reply for %q did not match the conventional shape, using fallback", change.Path)
		message = entities.FallbackCommitMessage(reply)
	}
	return message, nil
}

// GenerateCommitMessages fans out one call per change. Results are
// returned in input order; the first failure cancels the rest.
func (it *ModelRepository) GenerateCommitMessages(
	ctx context.Context,
	changes []entities.FileChange,
	diffs []string,
) ([]entities.CommitMessage, error) {
	if len(changes) != len(diffs) {
		return nil, fmt.Errorf("changes and diffs differ in length: %d vs %d", len(changes), len(diffs))
	}

	messages := make([]entities.CommitMessage, len(changes))
	group, groupCtx := errgroup.WithContext(ctx)

	for index, change := range changes {
		group.Go(func() error {
			message, err := it.GenerateCommitMessage(groupCtx, change, diffs[index])
			if err != nil {
				return fmt.Errorf("failed to generate message for %q: %w", change.Path, err)
			}
			messages[index] = message
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return messages, nil
}

// GenerateBranchName summarizes the commit messages into a kebab-case
// branch name. The length cap is left to the model.
func (it *ModelRepository) GenerateBranchName(
	ctx context.Context,
	messages []entities.CommitMessage,
) (string, error) {
	reply, err := it.complete(ctx, buildBranchNamePrompt(messages))
	if err != nil {
		return "", err
	}

	name := sanitizeBranchName(reply)
	if name == "" {
		return "", fmt.Errorf("model returned an unusable branch name: %q", reply)
	}
	return name, nil
}

// GeneratePRDescription turns the commit list into a markdown PR body.
func (it *ModelRepository) GeneratePRDescription(
	ctx context.Context,
	branch string,
	commits []entities.CommitRecord,
) (string, error) {
	reply, err := it.complete(ctx, buildPRDescriptionPrompt(branch, commits))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete sends one chat completion inside the concurrency limiter and
// returns the first choice's content.
func (it *ModelRepository) complete(ctx context.Context, prompt string) (string, error) {
	if it.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	if err := it.limiter.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to acquire request slot: %w", err)
	}
	defer it.limiter.Release(1)

	payload, err := json.Marshal(chatRequest{
		Model: it.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, it.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+it.apiKey)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("HTTP-Referer", referer)
	request.Header.Set("X-Title", userAgent)

	logger.Debugf("calling model %q (%d prompt bytes)", it.model, len(prompt))

	response, err := it.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenRouter: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(response.Body)
		return "", fmt.Errorf(
			"OpenRouter responded with status %s: %s",
			response.Status, strings.TrimSpace(string(body)),
		)
	}

	var parsed chatResponse
	if decodeErr := json.NewDecoder(response.Body).Decode(&parsed); decodeErr != nil {
		return "", fmt.Errorf("failed to decode OpenRouter response: %w", decodeErr)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("OpenRouter returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// sanitizeBranchName normalizes a model reply into something git accepts.
func sanitizeBranchName(reply string) string {
	name := firstLine(reply)
	name = strings.Trim(name, "`\"' ")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = invalidBranchChars.ReplaceAllString(name, "")
	return strings.Trim(name, "-/.")
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return strings.TrimSpace(line)
}
