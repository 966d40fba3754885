package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zarjin/FaceBook-Clone/auth"
	"github.com/zarjin/FaceBook-Clone/controllers"
	"github.com/zarjin/FaceBook-Clone/media"
	"github.com/zarjin/FaceBook-Clone/middlewares"
	"github.com/zarjin/FaceBook-Clone/routes"
	"github.com/zarjin/FaceBook-Clone/services"
	"github.com/zarjin/FaceBook-Clone/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryIdentityStore()
	posts := store.NewMemoryContentStore()
	files := media.NewMemoryStorage("http://localhost:8000")

	codec := auth.NewPasswordCodec()
	tokens := auth.NewTokenService([]byte("test-secret"))
	requireAuth := middlewares.RequireAuth(tokens)

	authService := services.NewAuthService(users, codec, tokens)
	postService := services.NewPostService(posts, users)

	router := gin.New()
	routes.AuthRouter(router, controllers.NewAuthController(authService), requireAuth)
	routes.UserRouter(router, controllers.NewUserController(users, files), requireAuth)
	routes.PostRouter(router, controllers.NewPostController(postService, files), requireAuth)
	routes.MediaRouter(router, controllers.NewMediaController(files))
	return router
}

func doJSON(router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func register(t *testing.T, router *gin.Engine, name, email, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/auth/register",
		gin.H{"name": name, "email": email, "password": password}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}

func TestRegisterLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/auth/register",
		gin.H{"name": "Ann", "email": "ann@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionCookie(t, rec)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Ann", body["name"])
	assert.Equal(t, "ann@x.com", body["email"])
	assert.NotContains(t, body, "password")

	// Duplicate email.
	rec = doJSON(router, http.MethodPost, "/auth/register",
		gin.H{"name": "Impostor", "email": "ann@x.com", "password": "secret2"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")

	// Missing fields.
	rec = doJSON(router, http.MethodPost, "/auth/register",
		gin.H{"name": "NoEmail", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Wrong password.
	rec = doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "ann@x.com", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	// Unknown email fails the same way.
	rec = doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "nobody@x.com", "password": "secret1"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")

	// Successful login issues a fresh cookie.
	rec = doJSON(router, http.MethodPost, "/auth/login",
		gin.H{"email": "ann@x.com", "password": "secret1"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessionCookie(t, rec)
}

func TestCheckSessionAndLogout(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/auth/check-session", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodGet, "/auth/check-session", nil,
		&http.Cookie{Name: "token", Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cookie := register(t, router, "Ann", "ann@x.com", "secret1")

	rec = doJSON(router, http.MethodGet, "/auth/check-session", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authorized": true}`, rec.Body.String())

	// Logout clears the cookie at the client.
	rec = doJSON(router, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the token cookie")

	// The token itself stays valid until expiry.
	rec = doJSON(router, http.MethodGet, "/auth/check-session", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func createPost(t *testing.T, router *gin.Engine, cookie *http.Cookie, text string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("text", text))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/post", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var post map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return post
}

func TestPostLifecycle(t *testing.T) {
	router := newTestRouter(t)
	annCookie := register(t, router, "Ann", "ann@x.com", "secret1")
	bobCookie := register(t, router, "Bob", "bob@x.com", "secret2")

	post := createPost(t, router, annCookie, "hi")
	postID := post["_id"].(string)
	assert.Equal(t, "hi", post["text"])
	assert.Empty(t, post["likes"])
	assert.Empty(t, post["comments"])

	// Bob likes, then unlikes.
	rec := doJSON(router, http.MethodPut, "/post/"+postID+"/like", nil, bobCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"Liked"`, rec.Body.String())

	rec = doJSON(router, http.MethodGet, "/post/"+postID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Len(t, fetched["likes"], 1)

	rec = doJSON(router, http.MethodPut, "/post/"+postID+"/like", nil, bobCookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"Unliked"`, rec.Body.String())

	// Comments append in order.
	for _, comment := range []string{"a", "b", "c"} {
		rec = doJSON(router, http.MethodPut, "/post/"+postID+"/comment",
			gin.H{"comment": comment}, bobCookie)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec = doJSON(router, http.MethodPut, "/post/"+postID+"/comment",
		gin.H{"comment": ""}, bobCookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodGet, "/post/"+postID, nil, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, []any{"a", "b", "c"}, fetched["comments"])

	// The feed expands the author and never leaks password hashes.
	rec = doJSON(router, http.MethodGet, "/post", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	author := feed[0]["user"].(map[string]any)
	assert.Equal(t, "Ann", author["name"])
	assert.NotContains(t, author, "password")

	// Unknown post.
	rec = doJSON(router, http.MethodGet, "/post/aaaaaaaaaaaaaaaaaaaaaaaa", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/post", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPut, "/post/aaaaaaaaaaaaaaaaaaaaaaaa/like", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileUpdateAndAvatar(t *testing.T) {
	router := newTestRouter(t)
	cookie := register(t, router, "Ann", "ann@x.com", "secret1")

	rec := doJSON(router, http.MethodPut, "/user/self",
		gin.H{"bio": "hello", "work": "gopher"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var user map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "hello", user["bio"])
	assert.Equal(t, "gopher", user["work"])

	// Avatar upload stores the file and records its URL.
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/user/self/avatar", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	avatarURL, _ := user["avatar"].(string)
	require.Contains(t, avatarURL, "/media/")

	// The stored file streams back from the media route.
	fileID := avatarURL[strings.LastIndex(avatarURL, "/")+1:]
	rec = doJSON(router, http.MethodGet, "/media/"+fileID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	// Public profile fetch by id works without a session.
	userID := user["_id"].(string)
	rec = doJSON(router, http.MethodGet, "/user/"+userID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "Ann", user["name"])
	assert.NotContains(t, user, "password")

	// Self fetch requires a session.
	rec = doJSON(router, http.MethodGet, "/user/self", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doJSON(router, http.MethodGet, "/user/self", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
}
