package trello

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what a service sent so tests can assert on the
// request shape rather than on round-tripped values.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	response string
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   body,
		})
		f.mu.Unlock()
		_, _ = w.Write([]byte(f.response))
	})
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request recorded")
	return f.requests[len(f.requests)-1]
}

func newTestServices(t *testing.T, response string) (*Services, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{response: response}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	client, err := NewClient("k", "t", &ClientOptions{BaseURL: srv.URL, Logger: testLogger()})
	require.NoError(t, err)
	return NewServices(client), api
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m))
	return m
}

func TestBoardServiceListDefaultsToOpen(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `[]`)
	_, err := services.Boards.List(context.Background(), "")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/members/me/boards", req.Path)
	assert.Equal(t, "open", req.Query.Get("filter"))
}

func TestBoardServiceActionsDefaults(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `[]`)
	_, err := services.Boards.Actions(context.Background(), "b1", "", 0)
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, "/boards/b1/actions", req.Path)
	assert.Equal(t, "all", req.Query.Get("filter"))
	assert.Equal(t, "50", req.Query.Get("limit"))
}

func TestBoardServiceCreateOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"id":"b1"}`)
	_, err := services.Boards.Create(context.Background(), CreateBoardRequest{Name: "Roadmap"})
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	body := decodeBody(t, req.Body)
	assert.Equal(t, "Roadmap", body["name"])
	assert.NotContains(t, body, "desc")
	assert.NotContains(t, body, "idOrganization")
}

func TestListServiceArchiveUsesClosedEndpoint(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"id":"l1","closed":true}`)
	list, err := services.Lists.Archive(context.Background(), "l1")
	require.NoError(t, err)
	assert.True(t, list.Closed)

	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/lists/l1/closed", req.Path)
	assert.Equal(t, map[string]any{"value": "true"}, decodeBody(t, req.Body))
}

func TestCardServiceCopyDefaultsKeepFromSource(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"id":"c2"}`)
	_, err := services.Cards.Copy(context.Background(), CopyCardRequest{
		IDCardSource: "c1",
		IDList:       "l1",
	})
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/cards", req.Path)
	body := decodeBody(t, req.Body)
	assert.Equal(t, "c1", body["idCardSource"])
	assert.Equal(t, "all", body["keepFromSource"])
}

func TestCardServiceCommentsFilterCommentCard(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `[]`)
	_, err := services.Cards.Comments(context.Background(), "c1")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, "/cards/c1/actions", req.Path)
	assert.Equal(t, "commentCard", req.Query.Get("filter"))
}

func TestCardServiceMemberEndpoints(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `[]`)
	_, err := services.Cards.AddMember(context.Background(), "c1", "m1")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/cards/c1/idMembers", req.Path)
	assert.Equal(t, map[string]any{"value": "m1"}, decodeBody(t, req.Body))

	require.NoError(t, services.Cards.RemoveMember(context.Background(), "c1", "m1"))
	req = api.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/cards/c1/idMembers/m1", req.Path)
}

func TestChecklistServiceItemRouting(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"id":"i1"}`)
	_, err := services.Checklists.AddItem(context.Background(), "cl1", AddCheckItemRequest{Name: "step"})
	require.NoError(t, err)
	assert.Equal(t, "/checklists/cl1/checkItems", api.last(t).Path)

	// Item updates route through the owning card.
	_, err = services.Checklists.UpdateItem(context.Background(), "c1", "i1", UpdateCheckItemRequest{State: "complete"})
	require.NoError(t, err)
	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/cards/c1/checkItem/i1", req.Path)
	assert.Equal(t, "complete", decodeBody(t, req.Body)["state"])

	require.NoError(t, services.Checklists.DeleteItem(context.Background(), "cl1", "i1"))
	assert.Equal(t, "/checklists/cl1/checkItems/i1", api.last(t).Path)
}

func TestAttachmentServiceAddOptionalName(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"id":"a1"}`)
	_, err := services.Attachments.Add(context.Background(), "c1", "https://example.com/doc", "")
	require.NoError(t, err)

	body := decodeBody(t, api.last(t).Body)
	assert.Equal(t, "https://example.com/doc", body["url"])
	assert.NotContains(t, body, "name")

	_, err = services.Attachments.Add(context.Background(), "c1", "https://example.com/doc", "Doc")
	require.NoError(t, err)
	assert.Equal(t, "Doc", decodeBody(t, api.last(t).Body)["name"])
}

func TestCustomFieldServiceWrapsValue(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{}`)
	err := services.CustomFields.UpdateValue(context.Background(), "c1", "cf1",
		map[string]any{"text": "hello"})
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, "/cards/c1/customField/cf1/item", req.Path)
	assert.Equal(t, map[string]any{"value": map[string]any{"text": "hello"}}, decodeBody(t, req.Body))

	// Pre-wrapped payloads are forwarded untouched.
	err = services.CustomFields.UpdateValue(context.Background(), "c1", "cf1",
		map[string]any{"value": map[string]any{"number": "42"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": map[string]any{"number": "42"}}, decodeBody(t, api.last(t).Body))
}

func TestSearchServiceQueryShape(t *testing.T) {
	t.Parallel()

	services, api := newTestServices(t, `{"cards":[],"boards":[]}`)
	_, err := services.Search.Search(context.Background(), "release notes")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, "/search", req.Path)
	assert.Equal(t, "release notes", req.Query.Get("query"))
	assert.Equal(t, "cards,boards", req.Query.Get("modelTypes"))
	assert.Equal(t, "true", req.Query.Get("partial"))
	assert.Equal(t, "20", req.Query.Get("cards_limit"))
	assert.Equal(t, "20", req.Query.Get("boards_limit"))
}
