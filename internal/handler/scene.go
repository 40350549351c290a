package handler

import (
	"image"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/model"
	"github.com/kyiku/hackz-mosaic-back/internal/params"
	"github.com/kyiku/hackz-mosaic-back/internal/placement"
	"github.com/kyiku/hackz-mosaic-back/internal/render"
	"github.com/kyiku/hackz-mosaic-back/internal/response"
	"github.com/kyiku/hackz-mosaic-back/internal/session"
)

// StorageInterface defines the snapshot upload operations the handler
// needs.
type StorageInterface interface {
	UploadSnapshot(img image.Image) (string, error)
}

// SceneHandler handles fill-scene requests.
type SceneHandler struct {
	store     *session.Store
	catalogue map[string]geometry.Outline

	canvasWidth  int
	canvasHeight int
	spanFactor   float64
	buffer       float64

	storage StorageInterface
}

// NewSceneHandler creates a new SceneHandler.
func NewSceneHandler(store *session.Store, catalogue map[string]geometry.Outline, width, height int, span, buffer float64) *SceneHandler {
	return &SceneHandler{
		store:        store,
		catalogue:    catalogue,
		canvasWidth:  width,
		canvasHeight: height,
		spanFactor:   span,
		buffer:       buffer,
	}
}

// SetStorage wires the optional snapshot storage.
func (h *SceneHandler) SetStorage(s StorageInterface) {
	h.storage = s
}

// StartRequest represents the scene start request. Zero values take
// the documented defaults; out-of-range values are clamped.
type StartRequest struct {
	Stretch  float64 `json:"stretch"`
	Seed     int64   `json:"seed"`
	Duration float64 `json:"duration"`
}

// Start creates a new fill scene and runs it in the background.
func (h *SceneHandler) Start(c echo.Context) error {
	var req StartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "リクエストの解析に失敗しました")
	}

	p := params.Normalize(req.Stretch, req.Seed, req.Duration)

	sess, err := session.New(session.Config{
		Catalogue: h.catalogue,
		Params: session.Params{
			Stretch:  p.Stretch,
			Seed:     p.Seed,
			Duration: p.Duration,
		},
		Bounds: placement.NewBounds(h.canvasWidth, h.canvasHeight, h.spanFactor),
		Buffer: h.buffer,
		Canvas: render.NewCanvas(h.canvasWidth, h.canvasHeight),
	})
	if err != nil {
		return response.Error(c, http.StatusInternalServerError, "シーンの作成に失敗しました")
	}

	h.store.Put(sess)
	go sess.Run()

	return response.Success(c, map[string]interface{}{
		"scene_id": sess.ID(),
		"status":   sess.Status(),
		"stretch":  p.Stretch,
		"seed":     p.Seed,
		"duration": p.Duration.Seconds(),
	})
}

// Status returns the scene's progress and, once finished, its summary.
func (h *SceneHandler) Status(c echo.Context) error {
	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		return response.Error(c, http.StatusNotFound, "シーンが見つかりません")
	}

	placed, rejected := sess.Counts()
	data := map[string]interface{}{
		"scene_id": sess.ID(),
		"status":   sess.Status(),
		"placed":   placed,
		"rejected": rejected,
	}
	if sess.Status() == model.StatusFinished {
		data["summary"] = sess.Summary().String()
	}
	return response.Success(c, data)
}

// Image returns the scene's canvas as PNG, rendered up to the latest
// committed placement.
func (h *SceneHandler) Image(c echo.Context) error {
	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		return response.Error(c, http.StatusNotFound, "シーンが見つかりません")
	}

	data, err := sess.Canvas().EncodePNG()
	if err != nil {
		return response.Error(c, http.StatusInternalServerError, "画像のエンコードに失敗しました")
	}
	return response.PNG(c, data)
}

// Upload pushes the scene's canvas to storage and returns its URL.
func (h *SceneHandler) Upload(c echo.Context) error {
	if h.storage == nil {
		return response.Error(c, http.StatusServiceUnavailable, "S3が設定されていません")
	}

	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		return response.Error(c, http.StatusNotFound, "シーンが見つかりません")
	}

	url, err := h.storage.UploadSnapshot(sess.Canvas().Image())
	if err != nil {
		return response.Error(c, http.StatusInternalServerError, "アップロードに失敗しました")
	}
	return response.Success(c, map[string]interface{}{
		"url": url,
	})
}
