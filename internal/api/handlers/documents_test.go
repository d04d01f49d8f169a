package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pratyay/profile-service/internal/api/dto"
	"github.com/pratyay/profile-service/internal/api/handlers"
	"github.com/pratyay/profile-service/internal/api/middleware"
	"github.com/pratyay/profile-service/internal/api/routes"
	"github.com/pratyay/profile-service/internal/core/docdb"
	"github.com/pratyay/profile-service/internal/core/vault"
	"github.com/pratyay/profile-service/internal/services/access"
	"github.com/pratyay/profile-service/internal/services/documents"
	"github.com/pratyay/profile-service/internal/testutil"
	"github.com/pratyay/profile-service/internal/testutil/memdocdb"
	"github.com/pratyay/profile-service/internal/testutil/mocks"
)

type testServer struct {
	router *gin.Engine
	store  *memdocdb.Client
}

// newTestServer wires the full router over an in-memory store. An empty
// secret means no admin password is configured.
func newTestServer(t *testing.T, secret string) *testServer {
	t.Helper()

	vaultClient := mocks.NewMockVaultClient()
	if secret == "" {
		vaultClient.On("GetSecret", mock.Anything, access.DefaultSecretURI, true).
			Return("", fmt.Errorf("%w: ADMIN_PASS", vault.ErrSecretNotFound))
	} else {
		vaultClient.On("GetSecret", mock.Anything, access.DefaultSecretURI, true).Return(secret, nil)
	}

	store := memdocdb.New()
	return &testServer{
		router: newRouter(store, documentsHandlerFor(store, vaultClient), &mocks.MockBlogClient{}),
		store:  store,
	}
}

func documentsHandlerFor(client docdb.Client, vaultClient vault.Client) *handlers.DocumentsHandler {
	repo := documents.NewRepository(client)
	gate := access.NewGate(&access.GateConfig{Vault: vaultClient})
	return handlers.NewDocumentsHandler(repo, gate)
}

func newRouter(client docdb.Client, documentsHandler *handlers.DocumentsHandler, blogClient *mocks.MockBlogClient) *gin.Engine {
	router := testutil.SetupTestRouter()
	routes.SetupWithMiddleware(router, &routes.Config{
		HealthHandler:    handlers.NewHealthHandler(nil, client),
		DocumentsHandler: documentsHandler,
		BlogsHandler:     handlers.NewBlogsHandler(blogClient),
	}, middleware.NewLoggingMiddleware(), middleware.NewErrorMiddleware(), middleware.DefaultCORSConfig())
	return router
}

func adminHeaders(extra map[string]string) map[string]string {
	headers := map[string]string{dto.HeaderPassword: testutil.TestAdminPassword}
	for k, v := range extra {
		headers[k] = v
	}
	return headers
}

func targetHeaders(database, collection, id string) map[string]string {
	headers := map[string]string{
		dto.HeaderDatabase:   database,
		dto.HeaderCollection: collection,
	}
	if id != "" {
		headers[dto.HeaderID] = id
	}
	return headers
}

func (s *testServer) insert(t *testing.T, body string) string {
	t.Helper()
	w := testutil.PerformRequest(s.router, http.MethodPost, "/message?database=test&collection=users", body, adminHeaders(nil))
	testutil.AssertStatusCode(t, http.StatusCreated, w)

	var resp dto.InsertResponse
	testutil.ParseJSONResponse(t, w, &resp)
	return resp.InsertedID
}

func TestDocuments_HeaderInsertThenFetch(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	w := testutil.PerformRequest(s.router, http.MethodPost, "/data/headers", `{"name":"Alice"}`,
		adminHeaders(targetHeaders("test", "users", "")))
	testutil.AssertStatusCode(t, http.StatusCreated, w)

	var inserted dto.InsertResponse
	testutil.ParseJSONResponse(t, w, &inserted)
	assert.Regexp(t, `^[0-9a-f]{24}$`, inserted.InsertedID)

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data/headers/document", nil,
		targetHeaders("test", "users", inserted.InsertedID))
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"_id":"`+inserted.InsertedID+`","name":"Alice"}`, w.Body.String())
}

func TestDocuments_PathInsertThenFetchPreservesFields(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	id := s.insert(t, `{"name":"Bob","age":42,"tags":["a","b"],"address":{"city":"Pune"}}`)

	w := testutil.PerformRequest(s.router, http.MethodGet, "/data/test/users/"+id, nil, nil)
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t,
		`{"_id":"`+id+`","name":"Bob","age":42,"tags":["a","b"],"address":{"city":"Pune"}}`,
		w.Body.String())
}

func TestDocuments_PathAndHeaderRoutesAgree(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	id := s.insert(t, `{"name":"Alice","age":30}`)
	s.insert(t, `{"name":"Bob","age":40}`)
	s.insert(t, `{"name":"Carol","age":50}`)

	filter := `{"age":{"$gte":40}}`
	missing := primitive.NewObjectID().Hex()

	reads := []struct {
		name   string
		path   string
		header map[string]string
	}{
		{
			"find all",
			"/data?database=test&collection=users",
			targetHeaders("test", "users", ""),
		},
		{
			"find filtered",
			"/data?" + url.Values{"database": {"test"}, "collection": {"users"}, "q": {filter}}.Encode(),
			merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderQuery: filter}),
		},
		{
			"find limited",
			"/data?database=test&collection=users&limit=2",
			merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderLimit: "2"}),
		},
		{
			"get by id",
			"/data/test/users/" + id,
			targetHeaders("test", "users", id),
		},
		{
			"get missing",
			"/data/test/users/" + missing,
			targetHeaders("test", "users", missing),
		},
	}

	for _, tt := range reads {
		t.Run(tt.name, func(t *testing.T) {
			byPath := testutil.PerformRequest(s.router, http.MethodGet, tt.path, nil, nil)

			headerPath := "/data/headers"
			if tt.header[dto.HeaderID] != "" {
				headerPath = "/data/headers/document"
			}
			byHeader := testutil.PerformRequest(s.router, http.MethodGet, headerPath, nil, tt.header)

			assert.Equal(t, byPath.Code, byHeader.Code)
			assert.JSONEq(t, byPath.Body.String(), byHeader.Body.String())
		})
	}

	byPath := testutil.PerformRequest(s.router, http.MethodPut, "/data/test/users/"+missing, `{"age":1}`, adminHeaders(nil))
	byHeader := testutil.PerformRequest(s.router, http.MethodPut, "/data/headers/document", `{"age":1}`,
		adminHeaders(targetHeaders("test", "users", missing)))
	assert.Equal(t, http.StatusOK, byPath.Code)
	assert.Equal(t, byPath.Code, byHeader.Code)
	assert.JSONEq(t, byPath.Body.String(), byHeader.Body.String())

	byPath = testutil.PerformRequest(s.router, http.MethodDelete, "/data/test/users/"+missing, nil, adminHeaders(nil))
	byHeader = testutil.PerformRequest(s.router, http.MethodDelete, "/data/headers/document", nil,
		adminHeaders(targetHeaders("test", "users", missing)))
	assert.Equal(t, http.StatusOK, byPath.Code)
	assert.JSONEq(t, byPath.Body.String(), byHeader.Body.String())
}

func merge(a, b map[string]string) map[string]string {
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func TestDocuments_FindFiltersAndLimits(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	s.insert(t, `{"name":"Alice","age":30}`)
	s.insert(t, `{"name":"Bob","age":40}`)
	s.insert(t, `{"name":"Carol","age":50}`)

	var docs []map[string]interface{}

	w := testutil.PerformRequest(s.router, http.MethodGet,
		"/data?"+url.Values{"database": {"test"}, "collection": {"users"}, "q": {`{"name":"Bob"}`}}.Encode(), nil, nil)
	testutil.AssertStatusCode(t, http.StatusOK, w)
	testutil.ParseJSONResponse(t, w, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, "Bob", docs[0]["name"])
	assert.Regexp(t, `^[0-9a-f]{24}$`, docs[0]["_id"])

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data?database=test&collection=users&limit=2", nil, nil)
	testutil.AssertStatusCode(t, http.StatusOK, w)
	testutil.ParseJSONResponse(t, w, &docs)
	assert.Len(t, docs, 2)

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data?database=test&collection=empty", nil, nil)
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDocuments_UpdateAndDeleteLifecycle(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	id := s.insert(t, `{"name":"Alice","age":30}`)

	w := testutil.PerformRequest(s.router, http.MethodPut, "/data/test/users/"+id, `{"age":31,"city":"Pune"}`, adminHeaders(nil))
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"matched_count":1,"modified_count":1}`, w.Body.String())

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data/test/users/"+id, nil, nil)
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"_id":"`+id+`","name":"Alice","age":31,"city":"Pune"}`, w.Body.String())

	w = testutil.PerformRequest(s.router, http.MethodDelete, "/data/headers/document", nil,
		adminHeaders(targetHeaders("test", "users", id)))
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"deleted_count":1}`, w.Body.String())
	assert.Equal(t, 0, s.store.Count("test", "users"))

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data/test/users/"+id, nil, nil)
	testutil.AssertStatusCode(t, http.StatusNotFound, w)

	w = testutil.PerformRequest(s.router, http.MethodDelete, "/data/test/users/"+id, nil, adminHeaders(nil))
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `{"deleted_count":0}`, w.Body.String())
}

func TestDocuments_MutationsRequireSecret(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	requests := []struct {
		name    string
		method  string
		path    string
		body    interface{}
		headers map[string]string
	}{
		{"path insert", http.MethodPost, "/message?database=test&collection=users", `{"name":"x"}`, nil},
		{"path insert invalid body", http.MethodPost, "/message?database=test&collection=users", `[1,2]`, nil},
		{"path update", http.MethodPut, "/data/test/users/" + id, `{"name":"x"}`, nil},
		{"path update invalid body", http.MethodPut, "/data/test/users/" + id, `not json`, nil},
		{"path delete", http.MethodDelete, "/data/test/users/" + id, nil, nil},
		{"header insert", http.MethodPost, "/data/headers", `{"name":"x"}`, targetHeaders("test", "users", "")},
		{"header update", http.MethodPut, "/data/headers/document", `{"name":"x"}`, targetHeaders("test", "users", id)},
		{"header delete", http.MethodDelete, "/data/headers/document", nil, targetHeaders("test", "users", id)},
	}

	servers := []struct {
		name     string
		secret   string
		password string
	}{
		{"missing password", testutil.TestAdminPassword, ""},
		{"wrong password", testutil.TestAdminPassword, "guess"},
		{"no secret configured", "", ""},
		{"no secret configured with password", "", "anything"},
	}

	for _, srv := range servers {
		s := newTestServer(t, srv.secret)
		for _, tt := range requests {
			t.Run(srv.name+"/"+tt.name, func(t *testing.T) {
				headers := merge(tt.headers, nil)
				if srv.password != "" {
					headers[dto.HeaderPassword] = srv.password
				}

				w := testutil.PerformRequest(s.router, tt.method, tt.path, tt.body, headers)
				testutil.AssertStatusCode(t, http.StatusForbidden, w)

				var resp dto.ErrorResponse
				testutil.ParseJSONResponse(t, w, &resp)
				assert.Equal(t, "FORBIDDEN", resp.Code)
			})
		}
		assert.Equal(t, 0, s.store.Count("test", "users"))
	}
}

func TestDocuments_ClientErrors(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	tests := []struct {
		name    string
		method  string
		path    string
		body    interface{}
		headers map[string]string
	}{
		{"malformed path id", http.MethodGet, "/data/test/users/not-an-id", nil, nil},
		{"short path id", http.MethodGet, "/data/test/users/507f1f77bcf86cd79943901", nil, nil},
		{"malformed header id", http.MethodGet, "/data/headers/document", nil, targetHeaders("test", "users", "xyz")},
		{"missing header id", http.MethodGet, "/data/headers/document", nil, targetHeaders("test", "users", "")},
		{"missing header database", http.MethodGet, "/data/headers", nil, targetHeaders("", "users", "")},
		{"missing query database", http.MethodGet, "/data?collection=users", nil, nil},
		{"array query", http.MethodGet, "/data?database=test&collection=users&q=%5B1%2C2%5D", nil, nil},
		{"number query", http.MethodGet, "/data?database=test&collection=users&q=42", nil, nil},
		{"malformed query", http.MethodGet, "/data?database=test&collection=users&q=%7B", nil, nil},
		{"array header query", http.MethodGet, "/data/headers", nil,
			merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderQuery: `[1,2]`})},
		{"zero limit", http.MethodGet, "/data?database=test&collection=users&limit=0", nil, nil},
		{"text limit", http.MethodGet, "/data/headers", nil,
			merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderLimit: "ten"})},
		{"invalid database name", http.MethodGet, "/data?database=bad.name&collection=users", nil, nil},
		{"system collection", http.MethodGet, "/data?database=test&collection=system.users", nil, nil},
		{"insert array body", http.MethodPost, "/message?database=test&collection=users", `[{"a":1}]`, adminHeaders(nil)},
		{"insert malformed body", http.MethodPost, "/data/headers", `{"a":`, adminHeaders(targetHeaders("test", "users", ""))},
		{"insert empty body", http.MethodPost, "/message?database=test&collection=users", nil, adminHeaders(nil)},
		{"update empty fields", http.MethodPut, "/data/test/users/" + primitive.NewObjectID().Hex(), `{}`, adminHeaders(nil)},
		{"update malformed id", http.MethodPut, "/data/test/users/nope", `{"a":1}`, adminHeaders(nil)},
		{"delete malformed id", http.MethodDelete, "/data/headers/document", nil, adminHeaders(targetHeaders("test", "users", "nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformRequest(s.router, tt.method, tt.path, tt.body, tt.headers)
			testutil.AssertStatusCode(t, http.StatusBadRequest, w)

			var resp dto.ErrorResponse
			testutil.ParseJSONResponse(t, w, &resp)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestDocuments_QueryRejectionMessage(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	w := testutil.PerformRequest(s.router, http.MethodGet, "/data?database=test&collection=users&q=%5B1%5D", nil, nil)
	testutil.AssertStatusCode(t, http.StatusBadRequest, w)

	var resp dto.ErrorResponse
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "query must be a JSON object", resp.Message)
}

func TestDocuments_BlankQueryIsRejected(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	s.insert(t, `{"name":"Alice"}`)

	w := testutil.PerformRequest(s.router, http.MethodGet, "/data?database=test&collection=users&q=%20%20", nil, nil)
	testutil.AssertStatusCode(t, http.StatusBadRequest, w)

	var resp dto.ErrorResponse
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "invalid JSON for query", resp.Message)

	w = testutil.PerformRequest(s.router, http.MethodGet, "/data/headers", nil, merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderQuery: " "}))
	testutil.AssertStatusCode(t, http.StatusBadRequest, w)
}

func TestDocuments_OversizedBodyIsRejected(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	id := s.insert(t, `{"name":"Alice"}`)

	body := `{"blob":"` + strings.Repeat("a", handlers.MaxBodyBytes) + `"}`

	w := testutil.PerformRequest(s.router, http.MethodPost, "/message?database=test&collection=users", body, adminHeaders(nil))
	testutil.AssertStatusCode(t, http.StatusBadRequest, w)
	var resp dto.ErrorResponse
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "request body too large", resp.Message)

	w = testutil.PerformRequest(s.router, http.MethodPut, "/data/test/users/"+id, body, adminHeaders(nil))
	testutil.AssertStatusCode(t, http.StatusBadRequest, w)

	assert.Equal(t, 1, s.store.Count("test", "users"))
}

func TestDocuments_InvalidIDNeverReachesStore(t *testing.T) {
	repo := &mocks.MockDocumentRepository{}
	vaultClient := mocks.NewMockVaultClient()
	vaultClient.On("GetSecret", mock.Anything, mock.Anything, true).Return(testutil.TestAdminPassword, nil)

	handler := handlers.NewDocumentsHandler(repo, access.NewGate(&access.GateConfig{Vault: vaultClient}))
	router := newRouter(memdocdb.New(), handler, &mocks.MockBlogClient{})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := testutil.PerformRequest(router, method, "/data/test/users/zzzzzzzzzzzzzzzzzzzzzzzz", `{"a":1}`, adminHeaders(nil))
		testutil.AssertStatusCode(t, http.StatusBadRequest, w)
	}

	repo.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDocuments_StoreFailureIs500WithMessage(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	s.store.FailWith(errors.New("server selection error: connection refused"))

	requests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/message?database=test&collection=users", `{"a":1}`},
		{http.MethodGet, "/data?database=test&collection=users", nil},
		{http.MethodGet, "/data/test/users/" + primitive.NewObjectID().Hex(), nil},
		{http.MethodPut, "/data/test/users/" + primitive.NewObjectID().Hex(), `{"a":1}`},
		{http.MethodDelete, "/data/test/users/" + primitive.NewObjectID().Hex(), nil},
	}

	for _, tt := range requests {
		w := testutil.PerformRequest(s.router, tt.method, tt.path, tt.body, adminHeaders(nil))
		testutil.AssertStatusCode(t, http.StatusInternalServerError, w)

		var resp dto.ErrorResponse
		testutil.ParseJSONResponse(t, w, &resp)
		assert.Equal(t, "INTERNAL_ERROR", resp.Code)
		assert.Contains(t, resp.Details, "connection refused")
	}
}

func TestDocuments_MissingConnectionStringIsConfigurationError(t *testing.T) {
	repo := &mocks.MockDocumentRepository{}
	repo.On("FindMany", mock.Anything, "test", "users", mock.Anything, int64(0)).Return(nil, docdb.ErrNotConfigured)

	handler := handlers.NewDocumentsHandler(repo, access.NewGate(nil))
	router := newRouter(memdocdb.New(), handler, &mocks.MockBlogClient{})

	w := testutil.PerformRequest(router, http.MethodGet, "/data?database=test&collection=users", nil, nil)
	testutil.AssertStatusCode(t, http.StatusInternalServerError, w)

	var resp dto.ErrorResponse
	testutil.ParseJSONResponse(t, w, &resp)
	assert.Equal(t, "CONFIGURATION_ERROR", resp.Code)
	assert.Contains(t, resp.Message, "MONGODB_URI")
}

func TestDocuments_ExtendedJSONQuery(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)
	id := s.insert(t, `{"name":"Alice"}`)
	s.insert(t, `{"name":"Bob"}`)

	q := `{"_id":{"$oid":"` + id + `"}}`
	w := testutil.PerformRequest(s.router, http.MethodGet, "/data/headers", nil,
		merge(targetHeaders("test", "users", ""), map[string]string{dto.HeaderQuery: q}))
	testutil.AssertStatusCode(t, http.StatusOK, w)
	assert.JSONEq(t, `[{"_id":"`+id+`","name":"Alice"}]`, w.Body.String())
}

func TestRouter_RequestIDAndCORS(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	w := testutil.PerformRequest(s.router, http.MethodGet, "/health", nil, nil)
	assert.Regexp(t, `^[0-9a-f-]{36}$`, w.Header().Get(middleware.RequestIDHeader))

	inbound := "6f1c2a8e-3d4b-4c5a-9e7f-0a1b2c3d4e5f"
	w = testutil.PerformRequest(s.router, http.MethodGet, "/health", nil, map[string]string{middleware.RequestIDHeader: inbound})
	assert.Equal(t, inbound, w.Header().Get(middleware.RequestIDHeader))

	w = testutil.PerformRequest(s.router, http.MethodOptions, "/data/headers/document", nil, map[string]string{
		"Origin":                        "https://profile.example",
		"Access-Control-Request-Method": http.MethodPut,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://profile.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), dto.HeaderPassword)
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), dto.HeaderID)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	s := newTestServer(t, testutil.TestAdminPassword)

	w := testutil.PerformRequest(s.router, http.MethodGet, "/nope", nil, nil)
	testutil.AssertStatusCode(t, http.StatusNotFound, w)

	w = testutil.PerformRequest(s.router, http.MethodPatch, "/data/test/users/"+primitive.NewObjectID().Hex(), nil, nil)
	testutil.AssertStatusCode(t, http.StatusMethodNotAllowed, w)
}
