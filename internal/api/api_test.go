package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/workout-generator-web/internal/api"
	"github.com/workout-generator-web/internal/config"
	"github.com/workout-generator-web/internal/mocks"
	"github.com/workout-generator-web/internal/models"
	"github.com/workout-generator-web/internal/repository"
	"github.com/workout-generator-web/internal/service"
)

func testRepo() *mocks.MockPostRepository {
	return mocks.NewMockPostRepository(
		models.Post{
			ID: "1", Slug: "a", Title: "Post A", Excerpt: "Excerpt A",
			Content: "# Post A\n\nBody text here.", Date: "2025-01-15",
			Author: "Fitness Team", Category: "Training", Tags: []string{"x"},
		},
		models.Post{
			ID: "2", Slug: "b", Title: "Post B", Excerpt: "Excerpt B",
			Content: "Body B", Date: "2025-01-14",
			Author: "Fitness Team", Category: "Training", Tags: []string{},
		},
		models.Post{
			ID: "3", Slug: "c", Title: "Post C", Excerpt: "Excerpt C",
			Content: "Body C", Date: "2025-01-13",
			Author: "Fitness Team", Category: "Training", Tags: []string{},
		},
	)
}

func setupTestRouter(repo *mocks.MockPostRepository, chatKit config.ChatKitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Site: config.SiteConfig{
			BaseURL:  "https://workoutgenerator.com",
			SiteName: "Workout Generator",
		},
		Content: config.ContentConfig{Source: config.SourceStatic},
		ChatKit: chatKit,
	}

	repos := &repository.Repositories{Post: repo}
	services := service.NewServices(repos, cfg, zerolog.Nop())

	return api.NewRouter(services, cfg, zerolog.Nop())
}

func defaultChatKit(sessionURL, apiKey string) config.ChatKitConfig {
	return config.ChatKitConfig{
		APIKey:     apiKey,
		SessionURL: sessionURL,
		Timeout:    2 * time.Second,
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "workout-generator-web" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestBlogFeed_Success(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/api/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	// Round-trip: parsing the response yields the same structurally-equal
	// collection the repository serves.
	var posts []models.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("Response is not a post array: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if posts[i].Slug != want {
			t.Errorf("Position %d: expected slug %s, got %s", i, want, posts[i].Slug)
		}
	}
	if posts[0].Title != "Post A" || posts[0].Date != "2025-01-15" {
		t.Errorf("Post fields did not survive the round-trip: %+v", posts[0])
	}
	if len(posts[0].Tags) != 1 || posts[0].Tags[0] != "x" {
		t.Errorf("Tags did not survive the round-trip: %v", posts[0].Tags)
	}
}

func TestBlogFeed_RepositoryFailure(t *testing.T) {
	repo := testRepo()
	repo.ListError = io.ErrUnexpectedEOF
	router := setupTestRouter(repo, defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/api/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Failed to fetch blog posts" {
		t.Errorf("Expected fixed error body, got %v", response["error"])
	}
}

func TestChatSession_MissingWorkflowID(t *testing.T) {
	upstreamCalls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	}))
	defer upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(upstream.URL, "key"))

	req := httptest.NewRequest("POST", "/api/chatkit-session", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "workflowId is required" {
		t.Errorf("Expected field-specific error, got %v", response["error"])
	}
	if upstreamCalls != 0 {
		t.Errorf("Expected no outbound call, got %d", upstreamCalls)
	}
}

func TestChatSession_MissingCredential(t *testing.T) {
	upstreamCalls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
	}))
	defer upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(upstream.URL, ""))

	body := bytes.NewBufferString(`{"workflowId": "wf_123"}`)
	req := httptest.NewRequest("POST", "/api/chatkit-session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Server configuration error" {
		t.Errorf("Expected configuration error, got %v", response["error"])
	}
	if upstreamCalls != 0 {
		t.Errorf("Credential absence must not reach upstream, got %d calls", upstreamCalls)
	}
}

func TestChatSession_UpstreamFailureRelayed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(upstream.URL, "bad-key"))

	body := bytes.NewBufferString(`{"workflowId": "wf_123"}`)
	req := httptest.NewRequest("POST", "/api/chatkit-session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected upstream status 401 relayed, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Failed to create ChatKit session" {
		t.Errorf("Expected session failure error, got %v", response["error"])
	}
	if response["status"].(float64) != 401 {
		t.Errorf("Expected status field 401, got %v", response["status"])
	}
	if !strings.Contains(response["details"].(string), "invalid api key") {
		t.Errorf("Expected upstream details relayed, got %v", response["details"])
	}
}

func TestChatSession_Success(t *testing.T) {
	var upstreamBody map[string]interface{}
	var gotAuth, gotBeta string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotBeta = r.Header.Get("OpenAI-Beta")
		json.NewDecoder(r.Body).Decode(&upstreamBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"client_secret": "cs_test_abc"}`))
	}))
	defer upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(upstream.URL, "sk-test"))

	// userId omitted: the outbound user field defaults to "anonymous".
	body := bytes.NewBufferString(`{"workflowId": "wf_123"}`)
	req := httptest.NewRequest("POST", "/api/chatkit-session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["client_secret"] != "cs_test_abc" {
		t.Errorf("Expected relayed client secret, got %v", response["client_secret"])
	}

	if gotAuth != "Bearer sk-test" {
		t.Errorf("Expected bearer credential, got %q", gotAuth)
	}
	if gotBeta != "chatkit_beta=v1" {
		t.Errorf("Expected beta header, got %q", gotBeta)
	}
	workflow := upstreamBody["workflow"].(map[string]interface{})
	if workflow["id"] != "wf_123" {
		t.Errorf("Expected workflow id forwarded, got %v", workflow["id"])
	}
	if upstreamBody["user"] != "anonymous" {
		t.Errorf("Expected anonymous user default, got %v", upstreamBody["user"])
	}
}

func TestChatSession_UserIDForwarded(t *testing.T) {
	var upstreamBody map[string]interface{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&upstreamBody)
		w.Write([]byte(`{"client_secret": "cs_test_abc"}`))
	}))
	defer upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(upstream.URL, "sk-test"))

	body := bytes.NewBufferString(`{"workflowId": "wf_123", "userId": "user-42"}`)
	req := httptest.NewRequest("POST", "/api/chatkit-session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if upstreamBody["user"] != "user-42" {
		t.Errorf("Expected user-42 forwarded, got %v", upstreamBody["user"])
	}
}

func TestChatSession_TransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	router := setupTestRouter(testRepo(), defaultChatKit(url, "sk-test"))

	body := bytes.NewBufferString(`{"workflowId": "wf_123"}`)
	req := httptest.NewRequest("POST", "/api/chatkit-session", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["error"] != "Internal server error" {
		t.Errorf("Transport failures must collapse to a generic error, got %v", response["error"])
	}
}

func TestSitemapEndpoint(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/sitemap.xml", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Errorf("Expected XML content type, got %s", ct)
	}

	xml := w.Body.String()
	for _, want := range []string{
		"<loc>https://workoutgenerator.com</loc>",
		"<loc>https://workoutgenerator.com/blog</loc>",
		"<loc>https://workoutgenerator.com/blog/a</loc>",
		"<loc>https://workoutgenerator.com/blog/c</loc>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("Sitemap missing %q", want)
		}
	}
}

func TestRobotsEndpoint(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/robots.txt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "User-agent: *") {
		t.Errorf("robots.txt missing user-agent rule:\n%s", body)
	}
	if !strings.Contains(body, "Sitemap: https://workoutgenerator.com/sitemap.xml") {
		t.Errorf("robots.txt missing sitemap pointer:\n%s", body)
	}
}

func TestHomePage(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	html := w.Body.String()
	if !strings.Contains(html, "Workout Generator") {
		t.Error("Homepage missing site name")
	}
	// Latest-posts preview links the newest post.
	if !strings.Contains(html, "/blog/a") {
		t.Error("Homepage missing blog preview link")
	}
	if !strings.Contains(html, "Pricing") {
		t.Error("Homepage missing pricing section")
	}
}

func TestBlogListingPage(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/blog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	html := w.Body.String()
	for _, want := range []string{"Post A", "Post B", "Post C", "application/ld+json", `"@type":"Blog"`} {
		if !strings.Contains(html, want) {
			t.Errorf("Listing page missing %q", want)
		}
	}
}

func TestBlogDetailPage(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/blog/a", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	html := w.Body.String()
	for _, want := range []string{
		"Post A",
		"min read",
		`"@type":"Article"`,
		`"@type":"BreadcrumbList"`,
		"<h1", // rendered markdown heading
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Detail page missing %q", want)
		}
	}
}

func TestBlogDetailPage_NotFound(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/blog/__does_not_exist__", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Page Not Found") {
		t.Error("Expected the 404 page body")
	}
}

func TestUnknownRoute(t *testing.T) {
	router := setupTestRouter(testRepo(), defaultChatKit("http://unused", "key"))

	req := httptest.NewRequest("GET", "/nope/nothing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
