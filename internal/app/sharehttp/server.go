package sharehttp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yourname/share_lite/internal/config"
	meta "github.com/yourname/share_lite/internal/repo"
	"github.com/yourname/share_lite/internal/store/chunk"
	"github.com/yourname/share_lite/internal/store/content"
	"github.com/yourname/share_lite/internal/usecase/filesvc"
)

type Server struct {
	Files *filesvc.Files
	Cfg   *config.Config
}

// NewServer собирает зависимости по конфигурации и возвращает готовый handler.
func NewServer(ctx context.Context, cfg *config.Config) (http.Handler, *Server, error) {
	chunks, err := chunk.New(cfg.StagingDir)
	if err != nil {
		return nil, nil, err
	}

	contents, err := buildContentStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	repo, err := meta.Open(ctx, cfg.MetaDSN)
	if err != nil {
		return nil, nil, err
	}

	srv := &Server{
		Files: filesvc.New(filesvc.Deps{
			Meta:     repo,
			Chunks:   chunks,
			Contents: contents,
		}),
		Cfg: cfg,
	}

	return srv.routes(), srv, nil
}

func buildContentStore(ctx context.Context, cfg *config.Config) (content.Store, error) {
	switch cfg.ContentBackend {
	case "", "fs":
		return content.NewFSStore(cfg.ContentDir)
	case "s3":
		return content.NewS3Store(ctx, content.S3Options{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Secure:    cfg.S3.Secure,
		})
	default:
		return nil, fmt.Errorf("unknown content backend: %s", cfg.ContentBackend)
	}
}

// routes регистрирует обработчики загрузки, выдачи, архива и обслуживания.
func (a *Server) routes() http.Handler {
	rtr := chi.NewRouter()

	rtr.Route("/shares/{shareID}/files", func(fr chi.Router) {
		fr.Post("/", a.uploadChunk)
		fr.Get("/zip", a.downloadZip)
		fr.Get("/{fileID}", a.downloadFile)
		fr.Delete("/{fileID}", a.removeFile)
	})

	rtr.Get("/health", a.health)
	rtr.Post("/admin/gc", a.gcOnce)

	return rtr
}

func (a *Server) gcTTL() time.Duration {
	hours := 24
	if a.Cfg != nil && a.Cfg.GCTTLHours > 0 {
		hours = a.Cfg.GCTTLHours
	}

	return time.Duration(hours) * time.Hour
}
