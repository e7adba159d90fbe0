package server

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// CompressionConfig sets the encoder levels used by Compression.
type CompressionConfig struct {
	GzipLevel int
	ZstdLevel zstd.EncoderLevel
}

// DefaultCompressionConfig favours latency over ratio; pack payloads are small.
var DefaultCompressionConfig = CompressionConfig{
	GzipLevel: gzip.DefaultCompression,
	ZstdLevel: zstd.SpeedFastest,
}

var (
	gzipPool sync.Pool
	zstdPool sync.Pool
)

func getZstdWriter(w io.Writer) (*zstd.Encoder, error) {
	if v := zstdPool.Get(); v != nil {
		zw := v.(*zstd.Encoder)
		zw.Reset(w)
		return zw, nil
	}
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(DefaultCompressionConfig.ZstdLevel),
		zstd.WithEncoderConcurrency(1),
	)
}

func releaseZstdWriter(zw *zstd.Encoder) {
	_ = zw.Close()
	zstdPool.Put(zw)
}

func getGzipWriter(w io.Writer) (*gzip.Writer, error) {
	if v := gzipPool.Get(); v != nil {
		gw := v.(*gzip.Writer)
		gw.Reset(w)
		return gw, nil
	}
	return gzip.NewWriterLevel(w, DefaultCompressionConfig.GzipLevel)
}

func releaseGzipWriter(gw *gzip.Writer) {
	_ = gw.Close()
	gzipPool.Put(gw)
}

func isUpgrade(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get(HeaderConnection)), "upgrade") ||
		r.Header.Get(HeaderUpgrade) != ""
}

// 1xx, 204 and 304 carry no body, so no encoder footer may be written.
func isNoBodyStatus(code int) bool {
	return (code >= 100 && code < 200) || code == http.StatusNoContent || code == http.StatusNotModified
}

func skipsCompression(path string) bool {
	for _, p := range UncompressedPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

type compressResponseWriter struct {
	http.ResponseWriter
	w        io.Writer
	disabled bool
}

func (cw *compressResponseWriter) Write(b []byte) (int, error) {
	if cw.disabled {
		return cw.ResponseWriter.Write(b)
	}
	cw.Header().Del(HeaderContentLength)
	if cw.Header().Get("Content-Type") == "" {
		cw.Header().Set("Content-Type", http.DetectContentType(b))
	}
	return cw.w.Write(b)
}

func (cw *compressResponseWriter) WriteHeader(code int) {
	cw.Header().Del(HeaderContentLength)
	if isNoBodyStatus(code) {
		cw.disabled = true
		cw.Header().Del(HeaderContentEncoding)
	}
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *compressResponseWriter) Flush() {
	if !cw.disabled {
		if f, ok := cw.w.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}
	}
	if f, ok := cw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (cw *compressResponseWriter) Unwrap() http.ResponseWriter {
	return cw.ResponseWriter
}

// Compression encodes response bodies with zstd when the client accepts it,
// otherwise gzip. Card images and the metrics endpoint pass through.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead || isUpgrade(r) || skipsCompression(r.URL.Path) ||
			w.Header().Get(HeaderContentEncoding) != "" {
			next.ServeHTTP(w, r)
			return
		}

		accept := r.Header.Get(HeaderAcceptEncoding)

		if strings.Contains(accept, EncodingZstd) {
			zw, err := getZstdWriter(w)
			if err == nil {
				w.Header().Set(HeaderContentEncoding, EncodingZstd)
				w.Header().Add(HeaderVary, HeaderAcceptEncoding)

				cw := &compressResponseWriter{ResponseWriter: w, w: zw}
				defer func() {
					if cw.disabled {
						zw.Reset(io.Discard)
					}
					releaseZstdWriter(zw)
				}()
				next.ServeHTTP(cw, r)
				return
			}
		}

		if strings.Contains(accept, EncodingGzip) {
			gw, err := getGzipWriter(w)
			if err == nil {
				w.Header().Set(HeaderContentEncoding, EncodingGzip)
				w.Header().Add(HeaderVary, HeaderAcceptEncoding)

				cw := &compressResponseWriter{ResponseWriter: w, w: gw}
				defer func() {
					if cw.disabled {
						gw.Reset(io.Discard)
					}
					releaseGzipWriter(gw)
				}()
				next.ServeHTTP(cw, r)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
