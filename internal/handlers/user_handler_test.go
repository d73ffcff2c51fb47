package handlers_test

import (
	"bytes"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var accessKeyRe = regexp.MustCompile(`^[A-Za-z0-9]{64}$`)

func TestUser_Register(t *testing.T) {
	router, _, _ := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		body := bytes.NewBufferString(`{"username":"john","key":"test-invite"}`)
		rr := doRequest(t, router, http.MethodPost, "/user/register", "", body, "application/json")
		assert.Equal(t, http.StatusOK, rr.Code)

		key := decodeMsg(t, rr)
		assert.Regexp(t, accessKeyRe, key)

		// свежий ключ сразу работает как bearer-токен
		rr = doRequest(t, router, http.MethodGet, "/admin/users", key, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "you must be an admin to use this endpoint.", decodeMsg(t, rr))
	})

	t.Run("invalid invite key", func(t *testing.T) {
		body := bytes.NewBufferString(`{"username":"jane","key":"wrong"}`)
		rr := doRequest(t, router, http.MethodPost, "/user/register", "", body, "application/json")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invite key was invalid.", decodeMsg(t, rr))
	})

	t.Run("duplicate username", func(t *testing.T) {
		body := bytes.NewBufferString(`{"username":"john","key":"test-invite"}`)
		rr := doRequest(t, router, http.MethodPost, "/user/register", "", body, "application/json")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "username is already taken.", decodeMsg(t, rr))
	})

	t.Run("malformed body", func(t *testing.T) {
		body := bytes.NewBufferString(`{"username":`)
		rr := doRequest(t, router, http.MethodPost, "/user/register", "", body, "application/json")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUser_DeleteSelf(t *testing.T) {
	router, db, _ := newTestServer(t)
	seedUser(t, db, "alice", "key-alice", false)

	// файлы пользователя должны исчезнуть вместе с ним
	name := uploadPNG(t, router, "key-alice")

	rr := doRequest(t, router, http.MethodDelete, "/user/delete/", "key-alice", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user deleted.", decodeMsg(t, rr))

	rr = doRequest(t, router, http.MethodGet, "/media/"+name, "", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// ключ больше не работает
	rr = doRequest(t, router, http.MethodDelete, "/user/delete/", "key-alice", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "authorization key is invalid.", decodeMsg(t, rr))
}

func TestUser_DeleteSelf_RequiresAuth(t *testing.T) {
	router, _, _ := newTestServer(t)

	rr := doRequest(t, router, http.MethodDelete, "/user/delete/", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUser_DeleteByID(t *testing.T) {
	router, db, _ := newTestServer(t)
	alice := seedUser(t, db, "alice", "key-alice", false)
	seedUser(t, db, "bob", "key-bob", false)
	root := seedUser(t, db, "root", "key-root", true)
	seedUser(t, db, "root2", "key-root2", true)

	t.Run("caller must be admin", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/user/delete/"+alice.ID, "key-bob", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, decodeMsg(t, rr), "you must be an admin")
	})

	t.Run("admins cannot be deleted through the API", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/user/delete/"+root.ID, "key-root2", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, decodeMsg(t, rr), "cannot delete another admin")
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/user/delete/7c9e6679-7425-40de-944b-e07fc1f90ae7", "key-root", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := doRequest(t, router, http.MethodDelete, "/user/delete/not-a-uuid", "key-root", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("ok, media cascades", func(t *testing.T) {
		name := uploadPNG(t, router, "key-alice")

		rr := doRequest(t, router, http.MethodDelete, "/user/delete/"+alice.ID, "key-root", nil, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user deleted.", decodeMsg(t, rr))

		rr = doRequest(t, router, http.MethodGet, "/media/"+name, "", nil, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
