package media

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centraljoias/storefront-api/internal/domain"
	"github.com/centraljoias/storefront-api/pkg/config"
)

var testCfg = config.CloudinaryConfig{
	CloudName: "demo",
	APIKey:    "key123",
	APISecret: "secret456",
	Folder:    "central_joias/products",
}

// newTestClient apunta el cliente a un servidor local y congela el reloj para
// que la firma sea determinista.
func newTestClient(serverURL string) *CloudinaryClient {
	c := NewCloudinaryClient(testCfg)
	c.uploadURL = serverURL
	c.now = func() time.Time { return time.Unix(1700000000, 0) }
	return c
}

func TestCloudinary_Upload_EnviaFormFirmado(t *testing.T) {
	var gotFields map[string]string
	var gotFile []byte
	var gotFilename string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			gotFields[name] = values[0]
		}
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotFilename = fh.Filename
		gotFile, _ = io.ReadAll(f)

		w.Write([]byte(`{"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/central_joias/products/foto.jpg"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	url, err := client.Upload("foto.jpg", strings.NewReader("bytes-de-imagen"))
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/central_joias/products/foto.jpg", url)

	assert.Equal(t, "foto.jpg", gotFilename)
	assert.Equal(t, []byte("bytes-de-imagen"), gotFile)
	assert.Equal(t, "key123", gotFields["api_key"])
	assert.Equal(t, "1700000000", gotFields["timestamp"])
	assert.Equal(t, "central_joias/products", gotFields["folder"])

	// SHA-1 de "folder=<folder>&timestamp=<ts>" + secret
	sum := sha1.Sum([]byte("folder=central_joias/products&timestamp=1700000000secret456"))
	assert.Equal(t, hex.EncodeToString(sum[:]), gotFields["signature"])
}

func TestCloudinary_Upload_ErrorDelHost_PropagaMensaje(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid Signature"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Upload("foto.jpg", strings.NewReader("x"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Contains(t, err.Error(), "Invalid Signature", "el mensaje del host viaja en el error")
}

func TestCloudinary_Upload_RespuestaSinSecureURL_EsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Upload("foto.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestCloudinary_Upload_RespuestaIlegible_EsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Upload("foto.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestCloudinary_Upload_HostInalcanzable_EsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	client := newTestClient(srv.URL)
	_, err := client.Upload("foto.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}
