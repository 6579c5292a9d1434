package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icebox-archive/icebox/internal/config"
	"github.com/icebox-archive/icebox/internal/logger"
	"github.com/icebox-archive/icebox/models"
)

// fakeService is a minimal in-memory rendition of the archive service's REST
// surface, just enough to drive the adapter.
type fakeService struct {
	mu       sync.Mutex
	jobs     map[string][]models.Job // vault -> jobs
	output   map[string][]byte       // job id -> staged bytes
	parts    map[string][][2]int64   // upload id -> received ranges
	partData map[string][]byte       // upload id -> concatenated bytes
	aborted  []string
	deleted  []string
}

func newFakeService() *fakeService {
	return &fakeService{
		jobs:     make(map[string][]models.Job),
		output:   make(map[string][]byte),
		parts:    make(map[string][][2]int64),
		partData: make(map[string][]byte),
	}
}

func (f *fakeService) router(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()

	r.Route("/v1/accounts/{account}", func(r chi.Router) {
		r.Get("/vaults", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(t, w, map[string]any{"vaults": []models.Vault{
				{Name: "alpha", NumberOfArchives: 3},
				{Name: "beta"},
			}})
		})
		r.Put("/vaults/{vault}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Delete("/vaults/{vault}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "vault") == "missing" {
				http.Error(w, "no such vault", http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Get("/vaults/{vault}/jobs", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			jobs := f.jobs[chi.URLParam(req, "vault")]
			f.mu.Unlock()
			writeJSON(t, w, map[string]any{"jobs": jobs})
		})
		r.Post("/vaults/{vault}/jobs", func(w http.ResponseWriter, req *http.Request) {
			var body struct {
				Type      models.JobAction `json:"type"`
				ArchiveID string           `json:"archiveId"`
			}
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))

			job := models.Job{
				ID:           uuid.NewString(),
				Action:       body.Type,
				ArchiveID:    body.ArchiveID,
				StatusCode:   models.JobStatusInProgress,
				CreationDate: time.Now().UTC(),
			}
			f.mu.Lock()
			f.jobs[chi.URLParam(req, "vault")] = append(f.jobs[chi.URLParam(req, "vault")], job)
			f.mu.Unlock()

			w.WriteHeader(http.StatusAccepted)
			writeJSON(t, w, map[string]string{"id": job.ID})
		})
		r.Get("/vaults/{vault}/jobs/{job}/output", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			data, ok := f.output[chi.URLParam(req, "job")]
			f.mu.Unlock()
			if !ok {
				http.Error(w, "no such job", http.StatusNotFound)
				return
			}
			if rng := req.Header.Get("Range"); rng != "" {
				var start, end int64
				_, err := fmt.Sscanf(rng, "bytes=%d-%d", &start, &end)
				require.NoError(t, err)
				w.WriteHeader(http.StatusPartialContent)
				w.Write(data[start : end+1])
				return
			}
			w.Write(data)
		})

		r.Post("/vaults/{vault}/archives", func(w http.ResponseWriter, req *http.Request) {
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)
			require.NotEmpty(t, req.Header.Get("x-sha256-tree-hash"))
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]string{"archiveId": "arch-" + fmt.Sprint(len(body))})
		})
		r.Delete("/vaults/{vault}/archives/{archive}", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.deleted = append(f.deleted, chi.URLParam(req, "archive"))
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/vaults/{vault}/multipart-uploads", func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()
			f.mu.Lock()
			f.parts[id] = nil
			f.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]string{"uploadId": id})
		})
		r.Put("/vaults/{vault}/multipart-uploads/{upload}", func(w http.ResponseWriter, req *http.Request) {
			var start, end int64
			_, err := fmt.Sscanf(req.Header.Get("Content-Range"), "bytes %d-%d/*", &start, &end)
			require.NoError(t, err)
			body, err := io.ReadAll(req.Body)
			require.NoError(t, err)

			id := chi.URLParam(req, "upload")
			f.mu.Lock()
			f.parts[id] = append(f.parts[id], [2]int64{start, end})
			f.partData[id] = append(f.partData[id], body...)
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
		r.Post("/vaults/{vault}/multipart-uploads/{upload}", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusCreated)
			writeJSON(t, w, map[string]string{"archiveId": "arch-multipart"})
		})
		r.Delete("/vaults/{vault}/multipart-uploads/{upload}", func(w http.ResponseWriter, req *http.Request) {
			f.mu.Lock()
			f.aborted = append(f.aborted, chi.URLParam(req, "upload"))
			f.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
	})

	return r
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func newTestService(t *testing.T, fake *fakeService) VaultService {
	t.Helper()
	srv := httptest.NewServer(fake.router(t))
	t.Cleanup(srv.Close)

	svc, err := NewHTTPVaultService(config.Remote{
		Endpoint:       srv.URL,
		APIToken:       "test-token",
		RequestTimeout: 5 * time.Second,
	}, "acct-1", logger.Nop())
	require.NoError(t, err)
	return svc
}

func TestListVaults(t *testing.T) {
	svc := newTestService(t, newFakeService())

	vaults, err := svc.ListVaults(context.Background())
	require.NoError(t, err)
	require.Len(t, vaults, 2)
	assert.Equal(t, "alpha", vaults[0].Name)
	assert.Equal(t, int64(3), vaults[0].NumberOfArchives)
}

func TestDeleteVaultNotFound(t *testing.T) {
	svc := newTestService(t, newFakeService())

	err := svc.DeleteVault(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInitiateAndListJobs(t *testing.T) {
	fake := newFakeService()
	svc := newTestService(t, fake)
	ctx := context.Background()

	jobID, err := svc.InitiateRetrievalJob(ctx, "alpha", "arch-9")
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	invID, err := svc.InitiateInventoryJob(ctx, "alpha")
	require.NoError(t, err)
	require.NotEqual(t, jobID, invID)

	jobs, err := svc.ListJobs(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, models.JobActionArchiveRetrieval, jobs[0].Action)
	assert.Equal(t, "arch-9", jobs[0].ArchiveID)
	assert.Equal(t, models.JobActionInventoryRetrieval, jobs[1].Action)
	assert.True(t, jobs[0].Pending())
}

func TestGetJobOutputRange(t *testing.T) {
	fake := newFakeService()
	fake.output["job-1"] = []byte("0123456789")
	svc := newTestService(t, fake)
	ctx := context.Background()

	whole, err := svc.GetJobOutput(ctx, "alpha", "job-1")
	require.NoError(t, err)
	defer whole.Close()
	data, err := io.ReadAll(whole)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(data))

	part, err := svc.GetJobOutputRange(ctx, "alpha", "job-1", 2, 6)
	require.NoError(t, err)
	defer part.Close()
	data, err = io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, "2345", string(data), "range is half-open [start, end)")

	_, err = svc.GetJobOutput(ctx, "alpha", "no-such-job")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadArchive(t *testing.T) {
	svc := newTestService(t, newFakeService())

	id, err := svc.UploadArchive(context.Background(), "alpha", "report.tar",
		"deadbeef", 5, strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "arch-5", id)
}

func TestMultipartUploadFlow(t *testing.T) {
	fake := newFakeService()
	svc := newTestService(t, fake)
	ctx := context.Background()

	uploadID, err := svc.InitiateMultipartUpload(ctx, "alpha", "big.bin", 1<<20)
	require.NoError(t, err)

	require.NoError(t, svc.UploadPart(ctx, "alpha", uploadID, 0, 4, strings.NewReader("aaaa")))
	require.NoError(t, svc.UploadPart(ctx, "alpha", uploadID, 4, 8, strings.NewReader("bbbb")))

	archiveID, err := svc.CompleteMultipartUpload(ctx, "alpha", uploadID, 8, "cafe")
	require.NoError(t, err)
	assert.Equal(t, "arch-multipart", archiveID)

	assert.Equal(t, [][2]int64{{0, 3}, {4, 7}}, fake.parts[uploadID],
		"Content-Range is inclusive on the wire")
	assert.Equal(t, "aaaabbbb", string(fake.partData[uploadID]))
}

func TestAbortMultipartUpload(t *testing.T) {
	fake := newFakeService()
	svc := newTestService(t, fake)

	require.NoError(t, svc.AbortMultipartUpload(context.Background(), "alpha", "upl-1"))
	assert.Equal(t, []string{"upl-1"}, fake.aborted)
}

func TestDeleteArchive(t *testing.T) {
	fake := newFakeService()
	svc := newTestService(t, fake)

	require.NoError(t, svc.DeleteArchive(context.Background(), "alpha", "arch-3"))
	assert.Equal(t, []string{"arch-3"}, fake.deleted)
}

func TestUnauthorizedMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	svc, err := NewHTTPVaultService(config.Remote{Endpoint: srv.URL}, "acct-1", logger.Nop())
	require.NoError(t, err)

	_, err = svc.ListVaults(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
