package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"techhelp-dashboard/internal/entities"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/filestorage"
)

// maxResourceBytes caps a single document; the reporting job produces a few KB.
const maxResourceBytes = 8 << 20

// ResourceRepositoryInterface fetches the raw bytes of one dashboard document.
// Each call is a single attempt.
type ResourceRepositoryInterface interface {
	Fetch(ctx context.Context, name entities.ResourceName) ([]byte, error)
}

type HTTPResourceRepository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPResourceRepository reads documents from baseURL/<name>. The client
// carries no timeout of its own: the caller's context bounds every request.
func NewHTTPResourceRepository(baseURL string, client *http.Client, logger *zap.Logger) ResourceRepositoryInterface {
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPResourceRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

func (r *HTTPResourceRepository) Fetch(ctx context.Context, name entities.ResourceName) ([]byte, error) {
	url := r.baseURL + "/" + string(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "techhelp-dashboard/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", apperrors.ErrResourceUnavailable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Debug("resource responded with non-200 status",
			zap.String("resource", string(name)),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: GET %s returned %d", apperrors.ErrResourceUnavailable, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrResourceUnavailable, url, err)
	}
	return body, nil
}

type FileResourceRepository struct {
	storage filestorage.FileStorageInterface
}

// NewFileResourceRepository reads documents from a local directory.
func NewFileResourceRepository(storage filestorage.FileStorageInterface) ResourceRepositoryInterface {
	return &FileResourceRepository{storage: storage}
}

func (r *FileResourceRepository) Fetch(ctx context.Context, name entities.ResourceName) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := r.storage.Read(string(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found", apperrors.ErrResourceUnavailable, name)
		}
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrResourceUnavailable, name, err)
	}
	return body, nil
}
