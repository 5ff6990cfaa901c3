package media

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/centraljoias/storefront-api/internal/application/usecase"
	"github.com/centraljoias/storefront-api/internal/domain"
	"github.com/centraljoias/storefront-api/pkg/config"
)

var _ usecase.Uploader = (*CloudinaryClient)(nil)

// CloudinaryClient sube imágenes al API de upload de Cloudinary (subida
// firmada) bajo una carpeta fija y devuelve la secure_url. Cliente net/http
// plano; el host puede tardar con archivos grandes, de ahí el timeout amplio.
type CloudinaryClient struct {
	cfg        config.CloudinaryConfig
	uploadURL  string
	httpClient *http.Client
	now        func() time.Time
}

// NewCloudinaryClient construye el cliente con un timeout de red de 60 s.
func NewCloudinaryClient(cfg config.CloudinaryConfig) *CloudinaryClient {
	return &CloudinaryClient{
		cfg:        cfg,
		uploadURL:  fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudName),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		now:        time.Now,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload reenvía el binario como multipart firmado. Cualquier fallo del host
// (red, cuota, contenido inválido) se devuelve envuelto en ErrUploadFailed
// con el mensaje del host; no hay reintentos ni validación local.
func (c *CloudinaryClient) Upload(filename string, file io.Reader) (string, error) {
	timestamp := strconv.FormatInt(c.now().Unix(), 10)

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := c.writeForm(mw, filename, timestamp, file)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("crear request de upload: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: respuesta ilegible del host (%d)", domain.ErrUploadFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || out.SecureURL == "" {
		msg := out.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrUploadFailed, msg)
	}
	return out.SecureURL, nil
}

func (c *CloudinaryClient) writeForm(mw *multipart.Writer, filename, timestamp string, file io.Reader) error {
	fields := map[string]string{
		"api_key":   c.cfg.APIKey,
		"timestamp": timestamp,
		"folder":    c.cfg.Folder,
		"signature": c.signature(timestamp),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

// signature firma los parámetros de subida según el esquema de Cloudinary:
// SHA-1 hex de "folder=<folder>&timestamp=<ts>" concatenado con el secret.
func (c *CloudinaryClient) signature(timestamp string) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%s%s", c.cfg.Folder, timestamp, c.cfg.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
