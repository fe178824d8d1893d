package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"aliccedress/repositories"
	"aliccedress/services"
	"aliccedress/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUploader struct {
	url     string
	deleted []string
}

func (u *recordingUploader) Upload(context.Context, *multipart.FileHeader) (string, error) {
	return u.url, nil
}

func (u *recordingUploader) Delete(_ context.Context, url string) error {
	u.deleted = append(u.deleted, url)
	return nil
}

func newNavigator(t *testing.T) *services.Navigator {
	t.Helper()
	ctx := context.Background()
	storage := repositories.NewMemoryStorage()
	cart, err := services.NewCartStore(ctx, repositories.NewCartRepository(storage))
	require.NoError(t, err)
	profile, err := services.NewProfileStore(ctx, repositories.NewUserRepository(storage), utils.PlainScheme{}, &services.SeedAccount{
		Name: "Тест", Email: "test@example.com", Phone: "1", Password: "password123",
	})
	require.NoError(t, err)
	return services.NewNavigator(services.NewCatalogService(repositories.NewProductRepository()), cart, profile)
}

func postAvatar(t *testing.T, ctrl *ProfileController) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/profile/avatar", ctrl.UploadAvatar)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/profile/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadAvatarRemovesFileWhenProfileSaveFails(t *testing.T) {
	uploader := &recordingUploader{url: "/uploads/avatars/1.png"}
	ctrl := NewProfileController(newNavigator(t), uploader)

	w := postAvatar(t, ctrl)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, []string{"/uploads/avatars/1.png"}, uploader.deleted)
}

func TestUploadAvatarKeepsFileOnSuccess(t *testing.T) {
	nav := newNavigator(t)
	_, err := nav.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)
	uploader := &recordingUploader{url: "/uploads/avatars/2.png"}

	w := postAvatar(t, NewProfileController(nav, uploader))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, uploader.deleted)
	assert.Contains(t, w.Body.String(), `"avatar":"/uploads/avatars/2.png"`)
}
