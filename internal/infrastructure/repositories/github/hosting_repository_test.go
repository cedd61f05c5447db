//go:build unit

package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	json "github.com/goccy/go-json"
	gh "github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/commitforge/internal/domain/entities"
)

func newTestRepository(t *testing.T, handler http.Handler) *HostingRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return newWithClient(client, "acme", "widgets")
}

func TestCreatePullRequest(t *testing.T) {
	t.Parallel()

	t.Run("should post the branch pair and map the response", func(t *testing.T) {
		t.Parallel()

		// given
		var posted gh.NewPullRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /repos/acme/widgets/pulls", func(writer http.ResponseWriter, request *http.Request) {
			require.NoError(t, json.NewDecoder(request.Body).Decode(&posted))
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{
				"number": 42,
				"title": "feat: add pagination",
				"html_url": "https://github.com/acme/widgets/pull/42",
				"state": "open"
			}`))
		})
		repository := newTestRepository(t, mux)

		// when
		created, err := repository.CreatePullRequest(context.Background(), entities.PullRequestInput{
			SourceBranch: "refs/heads/feat/pagination",
			TargetBranch: "main",
			Title:        "feat: add pagination",
			Description:  "body",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 42, created.ID)
		assert.Equal(t, "feat: add pagination", created.Title)
		assert.Equal(t, "https://github.com/acme/widgets/pull/42", created.URL)
		assert.Equal(t, "open", created.Status)
		assert.Equal(t, "feat/pagination", posted.GetHead())
		assert.Equal(t, "main", posted.GetBase())
	})

	t.Run("should surface API failures", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("POST /repos/acme/widgets/pulls", func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, `{"message":"Validation Failed"}`, http.StatusUnprocessableEntity)
		})
		repository := newTestRepository(t, mux)

		// when
		_, err := repository.CreatePullRequest(context.Background(), entities.PullRequestInput{
			SourceBranch: "feat/pagination",
			TargetBranch: "main",
		})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create pull request")
	})
}

func TestUpdatePullRequest(t *testing.T) {
	t.Parallel()

	t.Run("should patch the numbered pull request", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("PATCH /repos/acme/widgets/pulls/7", func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"number": 7, "title": "fix: typo", "state": "open"}`))
		})
		repository := newTestRepository(t, mux)

		// when
		updated, err := repository.UpdatePullRequest(context.Background(), 7, entities.PullRequestInput{
			Title:       "fix: typo",
			Description: "body",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 7, updated.ID)
		assert.Equal(t, "fix: typo", updated.Title)
	})
}

func TestFindPullRequest(t *testing.T) {
	t.Parallel()

	t.Run("should return the first open pull request for the head", func(t *testing.T) {
		t.Parallel()

		// given
		var head string
		mux := http.NewServeMux()
		mux.HandleFunc("GET /repos/acme/widgets/pulls", func(writer http.ResponseWriter, request *http.Request) {
			head = request.URL.Query().Get("head")
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`[{"number": 3, "title": "feat: first", "state": "open"}]`))
		})
		repository := newTestRepository(t, mux)

		// when
		found, err := repository.FindPullRequest(context.Background(), "refs/heads/feat/pagination")

		// then
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, 3, found.ID)
		assert.Equal(t, "acme:feat/pagination", head)
	})

	t.Run("should report no match for an empty listing", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /repos/acme/widgets/pulls", func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`[]`))
		})
		repository := newTestRepository(t, mux)

		// when
		found, err := repository.FindPullRequest(context.Background(), "feat/pagination")

		// then
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("should degrade lookup failures to no match", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /repos/acme/widgets/pulls", func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, `{"message":"boom"}`, http.StatusInternalServerError)
		})
		repository := newTestRepository(t, mux)

		// when
		found, err := repository.FindPullRequest(context.Background(), "feat/pagination")

		// then
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTestToken(t *testing.T) {
	t.Parallel()

	t.Run("should accept a token the API accepts", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /user", func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"login": "octocat"}`))
		})
		repository := newTestRepository(t, mux)

		// when
		err := repository.TestToken(context.Background())

		// then
		require.NoError(t, err)
	})

	t.Run("should reject a token the API rejects", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /user", func(writer http.ResponseWriter, _ *http.Request) {
			http.Error(writer, `{"message":"Bad credentials"}`, http.StatusUnauthorized)
		})
		repository := newTestRepository(t, mux)

		// when
		err := repository.TestToken(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token validation failed")
	})
}

func TestGetRepository(t *testing.T) {
	t.Parallel()

	t.Run("should map the repository metadata", func(t *testing.T) {
		t.Parallel()

		// given
		mux := http.NewServeMux()
		mux.HandleFunc("GET /repos/acme/widgets", func(writer http.ResponseWriter, _ *http.Request) {
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{
				"name": "widgets",
				"default_branch": "main",
				"clone_url": "https://github.com/acme/widgets.git",
				"ssh_url": "git@github.com:acme/widgets.git"
			}`))
		})
		repository := newTestRepository(t, mux)

		// when
		repo, err := repository.GetRepository(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "widgets", repo.Name)
		assert.Equal(t, "acme", repo.Organization)
		assert.Equal(t, "main", repo.DefaultBranch)
		assert.Equal(t, "git@github.com:acme/widgets.git", repo.SSHURL)
		assert.Equal(t, "github", repo.ProviderName)
	})
}
