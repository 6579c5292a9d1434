package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

// httpVaultService is the REST implementation of [VaultService]. All routes
// are rooted at /v1/accounts/{account}; the account segment comes from the
// explicitly configured account key, never from ambient credential lookup.
type httpVaultService struct {
	client     *resty.Client
	accountKey string
	log        *logger.Logger
}

// NewHTTPVaultService constructs the REST transport from the remote settings
// and the explicit account identity.
func NewHTTPVaultService(cfg config.Remote, accountKey string, log *logger.Logger) (VaultService, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("vault service endpoint is required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/") + "/v1/accounts/{account}").
		SetPathParam("account", accountKey).
		SetTimeout(timeout)
	if cfg.APIToken != "" {
		cli.SetAuthToken(cfg.APIToken)
	}

	return &httpVaultService{client: cli, accountKey: accountKey, log: log}, nil
}

type vaultListResponse struct {
	Vaults []models.Vault `json:"vaults"`
}

type jobListResponse struct {
	Jobs []models.Job `json:"jobs"`
}

type jobCreatedResponse struct {
	ID string `json:"id"`
}

type archiveCreatedResponse struct {
	ArchiveID string `json:"archiveId"`
}

type uploadSessionResponse struct {
	UploadID string `json:"uploadId"`
}

func (h *httpVaultService) ListVaults(ctx context.Context) ([]models.Vault, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/vaults")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out vaultListResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode vault list response: %w", err)
	}
	return out.Vaults, nil
}

func (h *httpVaultService) CreateVault(ctx context.Context, vault string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		Put("/vaults/{vault}")
	if err != nil {
		return fmt.Errorf("create vault request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultService) DeleteVault(ctx context.Context, vault string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		Delete("/vaults/{vault}")
	if err != nil {
		return fmt.Errorf("delete vault request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultService) ListJobs(ctx context.Context, vault string) ([]models.Job, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		Get("/vaults/{vault}/jobs")
	if err != nil {
		return nil, fmt.Errorf("list jobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var out jobListResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode job list response: %w", err)
	}
	return out.Jobs, nil
}

type initiateJobRequest struct {
	Type      models.JobAction `json:"type"`
	ArchiveID string           `json:"archiveId,omitempty"`
}

func (h *httpVaultService) InitiateInventoryJob(ctx context.Context, vault string) (string, error) {
	return h.initiateJob(ctx, vault, initiateJobRequest{Type: models.JobActionInventoryRetrieval})
}

func (h *httpVaultService) InitiateRetrievalJob(ctx context.Context, vault, archiveID string) (string, error) {
	return h.initiateJob(ctx, vault, initiateJobRequest{
		Type:      models.JobActionArchiveRetrieval,
		ArchiveID: archiveID,
	})
}

func (h *httpVaultService) initiateJob(ctx context.Context, vault string, req initiateJobRequest) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/vaults/{vault}/jobs")
	if err != nil {
		return "", fmt.Errorf("initiate %s job request: %w", req.Type, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out jobCreatedResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode initiate job response: %w", err)
	}
	return out.ID, nil
}

func (h *httpVaultService) GetJobOutput(ctx context.Context, vault, jobID string) (io.ReadCloser, error) {
	return h.jobOutput(ctx, vault, jobID, "")
}

func (h *httpVaultService) GetJobOutputRange(ctx context.Context, vault, jobID string, start, end int64) (io.ReadCloser, error) {
	// HTTP Range headers are inclusive on both ends.
	return h.jobOutput(ctx, vault, jobID, fmt.Sprintf("bytes=%d-%d", start, end-1))
}

func (h *httpVaultService) jobOutput(ctx context.Context, vault, jobID, byteRange string) (io.ReadCloser, error) {
	req := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vault": vault, "job": jobID}).
		SetDoNotParseResponse(true)
	if byteRange != "" {
		req.SetHeader("Range", byteRange)
	}

	resp, err := req.Get("/vaults/{vault}/jobs/{job}/output")
	if err != nil {
		return nil, fmt.Errorf("job output request: %w", err)
	}
	if resp.StatusCode() >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.RawBody())
		resp.RawBody().Close()
		return nil, statusError(resp.StatusCode(), strings.TrimSpace(string(body)))
	}
	return resp.RawBody(), nil
}

func (h *httpVaultService) UploadArchive(ctx context.Context, vault, description, treeHash string, size int64, body io.Reader) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		SetHeader("x-archive-description", description).
		SetHeader("x-sha256-tree-hash", treeHash).
		SetHeader("x-archive-size", fmt.Sprintf("%d", size)).
		SetContentLength(true).
		SetBody(body).
		Post("/vaults/{vault}/archives")
	if err != nil {
		return "", fmt.Errorf("upload archive request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out archiveCreatedResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode upload archive response: %w", err)
	}
	return out.ArchiveID, nil
}

func (h *httpVaultService) InitiateMultipartUpload(ctx context.Context, vault, description string, partSize int64) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("vault", vault).
		SetHeader("x-archive-description", description).
		SetHeader("x-part-size", fmt.Sprintf("%d", partSize)).
		Post("/vaults/{vault}/multipart-uploads")
	if err != nil {
		return "", fmt.Errorf("initiate multipart upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out uploadSessionResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode initiate multipart response: %w", err)
	}
	return out.UploadID, nil
}

func (h *httpVaultService) UploadPart(ctx context.Context, vault, uploadID string, start, end int64, body io.Reader) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vault": vault, "upload": uploadID}).
		SetHeader("Content-Range", fmt.Sprintf("bytes %d-%d/*", start, end-1)).
		SetContentLength(true).
		SetBody(body).
		Put("/vaults/{vault}/multipart-uploads/{upload}")
	if err != nil {
		return fmt.Errorf("upload part request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultService) CompleteMultipartUpload(ctx context.Context, vault, uploadID string, size int64, treeHash string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vault": vault, "upload": uploadID}).
		SetHeader("x-archive-size", fmt.Sprintf("%d", size)).
		SetHeader("x-sha256-tree-hash", treeHash).
		Post("/vaults/{vault}/multipart-uploads/{upload}")
	if err != nil {
		return "", fmt.Errorf("complete multipart upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out archiveCreatedResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode complete multipart response: %w", err)
	}
	return out.ArchiveID, nil
}

func (h *httpVaultService) AbortMultipartUpload(ctx context.Context, vault, uploadID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vault": vault, "upload": uploadID}).
		Delete("/vaults/{vault}/multipart-uploads/{upload}")
	if err != nil {
		return fmt.Errorf("abort multipart upload request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultService) DeleteArchive(ctx context.Context, vault, archiveID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"vault": vault, "archive": archiveID}).
		Delete("/vaults/{vault}/archives/{archive}")
	if err != nil {
		return fmt.Errorf("delete archive request: %w", err)
	}
	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return statusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func statusError(code int, body string) error {
	switch code {
	case http.StatusNotFound:
		if body != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, body)
		}
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
