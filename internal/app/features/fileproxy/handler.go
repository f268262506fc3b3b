// internal/app/features/fileproxy/handler.go
package fileproxy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/blobstore"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CacheControl is sent with every proxied file.
const CacheControl = "public, max-age=86400"

// PresignExpiry bounds redirects to signed object storage URLs.
const PresignExpiry = 15 * time.Minute

// Handler serves stored files for the proxy and static media paths.
type Handler struct {
	Store  storage.Store
	Mode   mediaurl.Mode
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a file proxy Handler.
func NewHandler(store storage.Store, mode mediaurl.Mode, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Mode:   mode,
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeFile handles GET and HEAD on /{filename}.
//
// With direct reads enabled (and not forced through the proxy) the client is
// redirected to the object's public URL, or to a presigned URL for a private
// bucket. Otherwise local files are served from disk and object storage is
// streamed through the app.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "filename")
	filename, err := url.PathUnescape(raw)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid filename.")
		return
	}
	key, err := blobstore.CleanKey(filename)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid filename.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Transfer(), h.Log, "file proxy read")
	defer cancel()

	if h.Mode.DirectReads && !h.Mode.ForceProxyReads {
		if target := h.directURL(ctx, key); target != "" {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
	}

	if local, ok := h.Store.(*storage.Local); ok {
		h.serveLocal(w, r.WithContext(ctx), local, key)
		return
	}
	h.stream(w, r.WithContext(ctx), key)
}

// directURL returns where a direct read should go, or "" to serve the bytes
// here.
func (h *Handler) directURL(ctx context.Context, key string) string {
	if pub := h.Store.URL(key); pub != "" {
		return pub
	}
	signed, err := h.Store.PresignedURL(ctx, key, &storage.PresignOptions{Expires: PresignExpiry})
	if err != nil {
		if !errors.Is(err, storage.ErrPresignNotSupported) {
			h.Log.Warn("presign failed, proxying instead", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return signed
}

func (h *Handler) serveLocal(w http.ResponseWriter, r *http.Request, local *storage.Local, key string) {
	info, err := local.Head(r.Context(), key)
	if h.renderStoreError(w, r, err) {
		return
	}
	fullPath, err := local.GetFullPath(key)
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Invalid filename.")
		return
	}
	h.setHeaders(w, info)
	http.ServeFile(w, r, fullPath)
}

func (h *Handler) stream(w http.ResponseWriter, r *http.Request, key string) {
	body, info, err := h.Store.GetWithInfo(r.Context(), key)
	if h.renderStoreError(w, r, err) {
		return
	}
	defer body.Close()

	h.setHeaders(w, info)
	if rs, ok := body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, key, info.LastModified, rs)
		return
	}

	if info.ETag != "" && r.Header.Get("If-None-Match") == info.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if info.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, body); err != nil {
		h.Log.Warn("file proxy copy interrupted", zap.String("key", key), zap.Error(err))
	}
}

// renderStoreError writes the response for a failed lookup and reports
// whether it did.
func (h *Handler) renderStoreError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, storage.ErrNotFound):
		uierrors.RenderNotFound(w, r, "File not found.")
	case errors.Is(err, storage.ErrInvalidPath):
		uierrors.RenderBadRequest(w, r, "Invalid filename.")
	default:
		h.ErrLog.LogServerError(w, r, "file proxy read failed", err, "Could not read file.")
	}
	return true
}

func (h *Handler) setHeaders(w http.ResponseWriter, info *storage.ObjectInfo) {
	hdr := w.Header()
	ct := info.ContentType
	if ct == "" {
		ct = storage.DetectContentType(info.Path, nil)
	}
	hdr.Set("Content-Type", ct)
	hdr.Set("Cache-Control", CacheControl)
	hdr.Set("X-Content-Type-Options", "nosniff")
	if info.ETag != "" {
		hdr.Set("ETag", info.ETag)
	}
}
