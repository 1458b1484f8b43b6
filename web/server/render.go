package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// BandUpdate reports one finished band during a streamed render
type BandUpdate struct {
	Y0         int `json:"y0"`
	Y1         int `json:"y1"`
	RowsDone   int `json:"rowsDone"`
	TotalRows  int `json:"totalRows"`
	BandNumber int `json:"bandNumber"` // Completion order (1-based)
}

// RenderResult is the final event of a streamed render
type RenderResult struct {
	ImageData        string  `json:"imageData"` // Base64 encoded PNG
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	TotalPixels      int     `json:"totalPixels"`
	Bands            int     `json:"bands"`
	Workers          int     `json:"workers"`
	ElapsedMs        int64   `json:"elapsedMs"`
	PixelsPerSecond  float64 `json:"pixelsPerSecond"`
	AverageLuminance float64 `json:"averageLuminance"`
	ObjectCount      int     `json:"objectCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "band", "complete", "error"
	Data string `json:"data"` // JSON-encoded data
}

// RenderingPipeline contains the configured scene and raytracer
type RenderingPipeline struct {
	Scene     *scene.Scene
	Raytracer *renderer.Raytracer
}

// handleRender renders a scene in parallel, streaming console output and
// band completions via SSE, and finishes with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan, webLogger := s.setupConsoleLogging()
	streamDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(streamDone)
	}()

	pipeline, err := s.setupRenderingPipeline(req, webLogger)
	if err != nil {
		close(consoleChan)
		<-streamDone
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	startTime := time.Now()
	totalRows := pipeline.Scene.Camera.Height
	var rowsDone, bandsDone atomic.Int64
	img, stats, err := pipeline.Raytracer.RenderParallelContext(ctx, func(band renderer.BandResult) {
		update := BandUpdate{
			Y0:         band.Y0,
			Y1:         band.Y1,
			RowsDone:   int(rowsDone.Add(int64(band.Rows))),
			TotalRows:  totalRows,
			BandNumber: int(bandsDone.Add(1)),
		}
		s.sendEvent(ctx, sseEventChan, "band", update)
	})

	// Drain console output before the final event
	close(consoleChan)
	<-streamDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}
	s.handleRenderComplete(ctx, sseEventChan, img, stats, pipeline.Scene, startTime)
}

// handleImage renders synchronously and returns the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, _, err := pipeline.Raytracer.RenderParallelContext(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	var buf bytes.Buffer
	contentType := "image/png"
	if req.Format == "ppm" {
		contentType = "image/x-portable-pixmap"
		err = img.WritePPM(&buf)
	} else {
		err = img.WritePNG(&buf)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Encoding failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Check if client is still connected before writing
			select {
			case <-ctx.Done():
				return
			default:
			}

			// Write SSE event
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan closes
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				// Channel closed
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			// Send to unified SSE channel
			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// setupRenderingPipeline creates and configures the scene and raytracer
func (s *Server) setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := s.createScene(req)
	if err != nil {
		return nil, err
	}

	camera, err := renderer.NewCameraFromConfig(sceneObj.Camera)
	if err != nil {
		return nil, err
	}

	config := renderer.RenderConfig{
		MaxDepth:   req.MaxDepth,
		NumWorkers: req.Workers,
		BandHeight: req.BandHeight,
	}
	raytracer, err := renderer.NewRaytracer(camera, sceneObj.World, config, logger)
	if err != nil {
		return nil, err
	}
	return &RenderingPipeline{Scene: sceneObj, Raytracer: raytracer}, nil
}

// handleRenderComplete encodes the image and sends the completion event
func (s *Server) handleRenderComplete(ctx context.Context, sseEventChan chan SSEEvent, img *canvas.Canvas, stats renderer.RenderStats, scene *scene.Scene, startTime time.Time) {
	imageData, err := s.canvasToBase64PNG(img)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Encoding failed: %v", err))
		return
	}

	s.sendEvent(ctx, sseEventChan, "complete", RenderResult{
		ImageData:        imageData,
		Width:            img.Width(),
		Height:           img.Height(),
		TotalPixels:      stats.TotalPixels,
		Bands:            stats.Bands,
		Workers:          stats.Workers,
		ElapsedMs:        time.Since(startTime).Milliseconds(),
		PixelsPerSecond:  stats.PixelsPerSecond(),
		AverageLuminance: renderer.CalculateAverageLuminance(img),
		ObjectCount:      scene.World.Len(),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Parse common scene parameters using shared function
	if err := s.parseCommonSceneParams(r, req); err != nil {
		return nil, err
	}

	values := r.URL.Query()
	var err error
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", renderer.DefaultRenderConfig().MaxDepth, 0, MaxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 0, 256); err != nil {
		return nil, err
	}
	if req.BandHeight, err = parseIntParam(values, "bandHeight", 0, 0, MaxBand); err != nil {
		return nil, err
	}

	req.Format = values.Get("format")
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "ppm":
	default:
		return nil, fmt.Errorf("format must be png or ppm, got: %s", req.Format)
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.MaxDepth > 10 {
		log.Printf("Render warning: Large image with deep recursion may render slowly")
	}

	return req, nil
}

// canvasToBase64PNG converts a canvas to base64-encoded PNG
func (s *Server) canvasToBase64PNG(img *canvas.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := img.WritePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendEvent marshals data and queues it on the SSE channel
func (s *Server) sendEvent(ctx context.Context, sseEventChan chan SSEEvent, eventType string, data interface{}) {
	encoded, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(encoded)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
