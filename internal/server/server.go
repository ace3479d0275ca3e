// Package server hosts the pie chart behind an HTTP API. A PUT of new data is
// a chart update and a DELETE unmounts it; WebSocket clients are told to
// reload after each change.
package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/akasprzok/pie/internal/charts"
	"github.com/akasprzok/pie/internal/dataset"
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UpdateMessage is pushed to WebSocket clients after each chart change.
const UpdateMessage = "update"

// reloadScript reloads the page whenever the server pushes a message.
const reloadScript = `(function () {
  var scheme = location.protocol === "https:" ? "wss://" : "ws://";
  var sock = new WebSocket(scheme + location.host + "/ws");
  sock.onmessage = function () { location.reload(); };
})();`

const emptyPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<p>No chart data.</p>
<script>%s</script>
</body>
</html>
`

// Server owns the hosted chart and its WebSocket hub.
type Server struct {
	title  string
	canvas *charts.Canvas
	chart  *piechart.Chart
	hub    *Hub
}

// New returns a server whose page is titled title. The chart starts unmounted.
func New(title string) *Server {
	return newServer(title, charts.HTML{Title: title, Script: reloadScript})
}

func newServer(title string, lib piechart.Library) *Server {
	canvas := charts.NewCanvas(charts.DefaultImageWidth, charts.DefaultImageHeight)
	return &Server{
		title:  title,
		canvas: canvas,
		chart:  piechart.NewChart(lib, canvas),
		hub:    NewHub(),
	}
}

// Chart returns the hosted chart.
func (s *Server) Chart() *piechart.Chart {
	return s.chart
}

// Hub returns the WebSocket hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Update replaces the chart data and notifies clients. Clients are also
// notified when a failed update has unmounted the chart.
func (s *Server) Update(in piechart.Input) error {
	wasMounted := s.chart.Mounted()
	if err := s.chart.Update(in); err != nil {
		if wasMounted && !s.chart.Mounted() {
			s.hub.Broadcast(UpdateMessage)
		}
		return err
	}
	s.hub.Broadcast(UpdateMessage)
	return nil
}

// Unmount removes the chart and notifies clients.
func (s *Server) Unmount() {
	s.chart.Unmount()
	s.hub.Broadcast(UpdateMessage)
}

// Close unmounts the chart and disconnects every WebSocket client.
func (s *Server) Close() {
	s.chart.Unmount()
	s.hub.Close()
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(requestLogger)
	router.Use(middleware.Recoverer)

	cfg := huma.DefaultConfig("pie", "1.0.0")
	api := humachi.New(router, cfg)

	router.Get("/ws", s.hub.ServeHTTP)

	registerPageHandlers(api, s)
	registerChartHandlers(api, s)
	registerHealthHandlers(api)

	return router
}

type chartBody struct {
	Labels []string `json:"labels" doc:"Category labels, paired with data by position."`
	Data   []any    `json:"data" doc:"Category values. null or \"NaN\" marks a missing value."`
}

type chartInput struct {
	Body chartBody
}

type chartState struct {
	Mounted  bool                  `json:"mounted"`
	Labels   []string              `json:"labels"`
	Data     []*float64            `json:"data" doc:"Values, null where missing."`
	Colors   []string              `json:"colors"`
	Legend   []piechart.LegendItem `json:"legend"`
	Tooltips []string              `json:"tooltips"`
}

type chartOutput struct {
	Body chartState
}

type imageInput struct {
	Width  int `query:"width" default:"900" minimum:"1" maximum:"4096"`
	Height int `query:"height" default:"600" minimum:"1" maximum:"4096"`
}

type rawOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type healthOutput struct {
	Body struct {
		Status string `json:"status"`
	}
}

func registerChartHandlers(api huma.API, s *Server) {
	huma.Register(api, huma.Operation{OperationID: "get-chart", Method: http.MethodGet, Path: "/api/v1/chart", Summary: "Get the current chart data", Tags: []string{"Chart"}},
		func(ctx context.Context, input *struct{}) (*chartOutput, error) {
			return &chartOutput{Body: stateOf(s.chart)}, nil
		})

	huma.Register(api, huma.Operation{OperationID: "put-chart", Method: http.MethodPut, Path: "/api/v1/chart", Summary: "Replace the chart data", Tags: []string{"Chart"}},
		func(ctx context.Context, input *chartInput) (*chartOutput, error) {
			in, err := input.Body.toInput()
			if err != nil {
				return nil, huma.Error400BadRequest(err.Error())
			}
			if err := s.Update(in); err != nil {
				return nil, mapErr(err)
			}
			return &chartOutput{Body: stateOf(s.chart)}, nil
		})

	huma.Register(api, huma.Operation{OperationID: "delete-chart", Method: http.MethodDelete, Path: "/api/v1/chart", Summary: "Unmount the chart", Tags: []string{"Chart"}, DefaultStatus: http.StatusNoContent},
		func(ctx context.Context, input *struct{}) (*struct{}, error) {
			s.Unmount()
			return &struct{}{}, nil
		})
}

func registerPageHandlers(api huma.API, s *Server) {
	huma.Register(api, huma.Operation{OperationID: "get-page", Method: http.MethodGet, Path: "/", Summary: "Chart page", Tags: []string{"Page"}},
		func(ctx context.Context, input *struct{}) (*rawOutput, error) {
			out := &rawOutput{ContentType: "text/html; charset=utf-8", Body: s.canvas.Bytes()}
			if len(out.Body) == 0 {
				out.Body = []byte(fmt.Sprintf(emptyPage, s.title, reloadScript))
			}
			return out, nil
		})

	huma.Register(api, huma.Operation{OperationID: "get-chart-svg", Method: http.MethodGet, Path: "/chart.svg", Summary: "Chart as SVG", Tags: []string{"Page"}},
		func(ctx context.Context, input *imageInput) (*rawOutput, error) {
			return s.image(charts.Image{}, "image/svg+xml", input)
		})

	huma.Register(api, huma.Operation{OperationID: "get-chart-png", Method: http.MethodGet, Path: "/chart.png", Summary: "Chart as PNG", Tags: []string{"Page"}},
		func(ctx context.Context, input *imageInput) (*rawOutput, error) {
			return s.image(charts.Image{PNG: true}, "image/png", input)
		})
}

func registerHealthHandlers(api huma.API) {
	huma.Register(api, huma.Operation{OperationID: "health", Method: http.MethodGet, Path: "/health", Summary: "Health check", Tags: []string{"Health"}},
		func(ctx context.Context, input *struct{}) (*healthOutput, error) {
			out := &healthOutput{}
			out.Body.Status = "ok"
			return out, nil
		})
}

// image renders the mounted input with lib onto a scratch canvas.
func (s *Server) image(lib piechart.Library, contentType string, input *imageInput) (*rawOutput, error) {
	in, cfg := s.chart.Snapshot()
	if cfg == nil {
		return nil, huma.Error404NotFound("no chart data")
	}
	canvas := charts.NewCanvas(input.Width, input.Height)
	out := &rawOutput{ContentType: contentType}
	err := piechart.Render(lib, canvas, in, func(*piechart.Config) error {
		out.Body = canvas.Bytes()
		return nil
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func (b chartBody) toInput() (piechart.Input, error) {
	in := piechart.Input{Labels: b.Labels, Data: make([]float64, 0, len(b.Data))}
	if in.Labels == nil {
		in.Labels = []string{}
	}
	for i, v := range b.Data {
		f, err := dataset.Float(v)
		if err != nil {
			return piechart.Input{}, fmt.Errorf("data[%d]: %w", i, err)
		}
		in.Data = append(in.Data, f)
	}
	return in, nil
}

func stateOf(chart *piechart.Chart) chartState {
	state := chartState{
		Labels:   []string{},
		Data:     []*float64{},
		Colors:   []string{},
		Legend:   []piechart.LegendItem{},
		Tooltips: []string{},
	}
	in, cfg := chart.Snapshot()
	if cfg == nil {
		return state
	}

	state.Mounted = true
	state.Labels = in.Labels
	state.Colors = cfg.Colors()
	state.Legend = cfg.Legend()
	state.Tooltips = piechart.Tooltips(in)
	for _, v := range in.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			state.Data = append(state.Data, nil)
			continue
		}
		state.Data = append(state.Data, &v)
	}
	return state
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, piechart.ErrLengthMismatch):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, charts.ErrNoSlices):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError(err.Error())
	}
}
