package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/metrics"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	easyjson "github.com/mailru/easyjson"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Server - HTTP API поверх резолвера: /classify, /resolve, /metrics
type Server struct {
	resolver *resolver.Resolver
	now      func() time.Time
	metrics  fasthttp.RequestHandler
	srv      *fasthttp.Server
}

func New(r *resolver.Resolver) *Server {
	s := &Server{
		resolver: r,
		now:      time.Now,
		metrics:  fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}

	s.srv = &fasthttp.Server{
		Name:         "shorts_resolver",
		Handler:      s.Handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: r.Timeout() + 5*time.Second,
	}

	return s
}

func (s *Server) ListenAndServe(addr string) error {
	utils.Log.Infof("http api listening on %s", addr)

	return s.srv.ListenAndServe(addr)
}

func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch {
	case !ctx.IsGet():
		ctx.Error("method not allowed", http.StatusMethodNotAllowed)
	case path == "/classify":
		s.classify(ctx)
	case path == "/resolve":
		s.resolve(ctx)
	case path == "/metrics":
		s.metrics(ctx)
	default:
		path = "other"
		ctx.Error("not found", http.StatusNotFound)
	}

	status := ctx.Response.StatusCode()
	metrics.HTTPRequestDuration.WithLabelValues(path, strconv.Itoa(status)).Observe(time.Since(start).Seconds())

	utils.Log.WithFields(logrus.Fields{
		"path":   path,
		"status": status,
	}).Debug(string(ctx.Request.RequestURI()))
}

func (s *Server) classify(ctx *fasthttp.RequestCtx) {
	src := string(ctx.QueryArgs().Peek("url"))
	if src == "" {
		ctx.Error("missing url query", http.StatusBadRequest)
		return
	}

	p := s.resolver.Classify(src)

	writeJSON(ctx, http.StatusOK, classifyResponse{
		Platform:  p.String(),
		Supported: p != platform.Unsupported,
	})
}

func (s *Server) resolve(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()

	src := string(args.Peek("url"))
	if src == "" {
		ctx.Error("missing url query", http.StatusBadRequest)
		return
	}

	quality, err := resolver.ParseQuality(string(args.Peek("quality")))
	if err != nil {
		ctx.Error(err.Error(), http.StatusBadRequest)
		return
	}

	media, err := s.resolver.Resolve(ctx, resolver.Request{
		URL:       src,
		Quality:   quality,
		AudioOnly: args.GetBool("audio"),
	})
	if err != nil {
		f := resolver.AsFailure(err)

		writeJSON(ctx, failureStatus(f), errorResponse{
			Kind:      f.Kind.String(),
			Detail:    f.Detail,
			Retryable: f.Retryable(),
		})

		return
	}

	writeJSON(ctx, http.StatusOK, mediaResponse{
		URL:          media.URL,
		Title:        media.Title,
		Platform:     media.Platform.String(),
		IsAudio:      media.IsAudio,
		MimeType:     media.MimeType(),
		FileName:     downloads.FileName(media.Title, media.IsAudio, s.now()),
		ThumbnailURL: media.ThumbnailURL,
		Duration:     int64(media.Duration / time.Second),
	})
}

func failureStatus(f *resolver.Failure) int {
	switch f.Kind {
	case resolver.Unsupported:
		return http.StatusUnprocessableEntity
	case resolver.RegionBlocked:
		return http.StatusUnavailableForLegalReasons
	case resolver.NetworkError:
		if strings.HasPrefix(f.Detail, "timeout") {
			return http.StatusGatewayTimeout
		}

		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v easyjson.Marshaler) {
	body, err := easyjson.Marshal(v)
	if err != nil {
		utils.Log.Error(err)
		ctx.Error("encode response", http.StatusInternalServerError)

		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
