package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kyiku/hackz-mosaic-back/internal/catalogue"
	"github.com/kyiku/hackz-mosaic-back/internal/config"
	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/handler"
	"github.com/kyiku/hackz-mosaic-back/internal/session"
	"github.com/kyiku/hackz-mosaic-back/internal/storage"
)

// S3Adapter adapts AWS S3 client to our interface
type S3Adapter struct {
	client *s3.Client
	bucket string
}

func (a *S3Adapter) GetObject(key string) ([]byte, error) {
	output, err := a.client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer output.Body.Close()
	return io.ReadAll(output.Body)
}

func (a *S3Adapter) PutObject(key string, data []byte) error {
	_, err := a.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	return err
}

func (a *S3Adapter) ListObjects(prefix string) ([]string, error) {
	output, err := a.client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket: &a.bucket,
		Prefix: &prefix,
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(output.Contents))
	for _, obj := range output.Contents {
		keys = append(keys, *obj.Key)
	}
	return keys, nil
}

// loadCatalogue reads shape templates from the local file first and
// falls back to the S3 object when the file is missing. An empty
// catalogue is fatal: the run cannot proceed without shapes.
func loadCatalogue(cfg *config.Config, store *storage.Client) map[string]geometry.Outline {
	shapes, err := catalogue.LoadFile(cfg.CataloguePath)
	if err == nil {
		return shapes
	}
	if store != nil {
		log.Printf("local catalogue unavailable (%v), trying S3 key %s", err, cfg.CatalogueKey)
		shapes, s3Err := catalogue.LoadObject(store, cfg.CatalogueKey)
		if s3Err == nil {
			return shapes
		}
		log.Fatalf("failed to load catalogue from S3: %v", s3Err)
	}
	log.Fatalf("failed to load catalogue: %v", err)
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	e := echo.New()

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			e.Logger.Infof("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Optional S3 storage
	var storageClient *storage.Client
	if cfg.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Printf("Warning: Failed to load AWS config: %v (snapshot upload disabled)", err)
		} else {
			adapter := &S3Adapter{client: s3.NewFromConfig(awsCfg), bucket: cfg.S3Bucket}
			storageClient = storage.NewClient(adapter, cfg.CloudfrontDomain)
		}
	}

	shapes := loadCatalogue(cfg, storageClient)
	log.Printf("loaded %d shape templates", len(shapes))

	// Initialize dependencies
	store := session.NewStore()

	sceneHandler := handler.NewSceneHandler(store, shapes,
		cfg.CanvasWidth, cfg.CanvasHeight, cfg.SpanFactor, cfg.Buffer)
	if storageClient != nil {
		sceneHandler.SetStorage(storageClient)
	}
	wsHandler := handler.NewWebSocketHandler(store)
	healthHandler := handler.NewHealthHandler()

	// Health check (root level for ALB)
	e.GET("/health", healthHandler.Check)

	// WebSocket endpoint
	e.GET("/ws", wsHandler.Connect)

	// API routes
	api := e.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/scene/start", sceneHandler.Start)
	api.GET("/scene/:id", sceneHandler.Status)
	api.GET("/scene/:id/image", sceneHandler.Image)
	api.POST("/scene/:id/upload", sceneHandler.Upload)

	log.Println("Registered endpoints:")
	log.Println("  GET  /health")
	log.Println("  GET  /ws")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/scene/start")
	log.Println("  GET  /api/scene/:id")
	log.Println("  GET  /api/scene/:id/image")
	log.Println("  POST /api/scene/:id/upload")

	log.Printf("Starting server on :%s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
