package rest

import (
	"context"
	"errors"
	"net/http"

	"campusnav/pkg/datastructure"
	"campusnav/pkg/server"
	"campusnav/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	Route(ctx context.Context, fromName, toName string, viaNames []string, modeName string) (*service.RouteResult, error)
	Locations(ctx context.Context) []*datastructure.Location
	Nearest(ctx context.Context, lat, lon float64, k int) (*service.NearestResult, error)
}

type NavigationHandler struct {
	svc NavigationService
}

func NavigatorRouter(r *chi.Mux, svc NavigationService) {
	handler := &NavigationHandler{svc}

	r.Group(func(r chi.Router) {
		r.Route("/api/navigation", func(r chi.Router) {
			r.Get("/locations", handler.Locations)
			r.Post("/route", handler.Route)
			r.Post("/nearest", handler.Nearest)
		})
	})
}

type RouteRequest struct {
	From string   `json:"from" validate:"required"`
	To   string   `json:"to" validate:"required"`
	Vias []string `json:"vias"`
	Mode string   `json:"mode"`
}

func (s *RouteRequest) Bind(r *http.Request) error {
	if s.From == "" || s.To == "" {
		return errors.New("invalid request")
	}
	return nil
}

type LocationResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description,omitempty"`
}

func renderLocation(loc *datastructure.Location) LocationResponse {
	return LocationResponse{
		ID:          loc.ID(),
		Name:        loc.Name(),
		Lat:         loc.Latitude(),
		Lon:         loc.Longitude(),
		Description: loc.Description(),
	}
}

type RouteResponse struct {
	Locations  []LocationResponse `json:"locations"`
	Polyline   string             `json:"polyline"`
	DistanceM  float64            `json:"distance_meters"`
	EtaMinutes float64            `json:"eta_minutes"`
	Mode       string             `json:"mode"`
}

func RenderRouteResponse(res *service.RouteResult) *RouteResponse {
	locs := make([]LocationResponse, 0, res.Path.Size())
	for _, loc := range res.Path.Locations() {
		locs = append(locs, renderLocation(loc))
	}
	return &RouteResponse{
		Locations:  locs,
		Polyline:   res.Polyline,
		DistanceM:  res.DistanceM,
		EtaMinutes: res.EtaMinutes,
		Mode:       res.Mode,
	}
}

func (h *NavigationHandler) Route(w http.ResponseWriter, r *http.Request) {
	data := &RouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	res, err := h.svc.Route(r.Context(), data.From, data.To, data.Vias, data.Mode)
	if err != nil {
		render.Render(w, r, ErrAppError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderRouteResponse(res))
}

type LocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func (h *NavigationHandler) Locations(w http.ResponseWriter, r *http.Request) {
	locs := h.svc.Locations(r.Context())
	resp := &LocationsResponse{Locations: make([]LocationResponse, 0, len(locs))}
	for _, loc := range locs {
		resp.Locations = append(resp.Locations, renderLocation(loc))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

type NearestRequest struct {
	Lat float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	K   int     `json:"k"`
}

func (s *NearestRequest) Bind(r *http.Request) error {
	if s.Lat == 0 && s.Lon == 0 {
		return errors.New("invalid request")
	}
	if s.K == 0 {
		s.K = 1
	}
	return nil
}

type NearestResponse struct {
	Locations []LocationResponse `json:"locations"`
	Walkway   struct {
		Entry     LocationResponse `json:"entry"`
		Lat       float64          `json:"lat"`
		Lon       float64          `json:"lon"`
		DistanceM float64          `json:"distance_meters"`
	} `json:"walkway"`
}

func RenderNearestResponse(res *service.NearestResult) *NearestResponse {
	resp := &NearestResponse{Locations: make([]LocationResponse, 0, len(res.Locations))}
	for _, loc := range res.Locations {
		resp.Locations = append(resp.Locations, renderLocation(loc))
	}
	resp.Walkway.Entry = renderLocation(res.Walkway.Entry)
	resp.Walkway.Lat = res.Walkway.Projected.Lat
	resp.Walkway.Lon = res.Walkway.Projected.Lon
	resp.Walkway.DistanceM = res.Walkway.DistanceM
	return resp
}

func (h *NavigationHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	data := &NearestRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	res, err := h.svc.Nearest(r.Context(), data.Lat, data.Lon, data.K)
	if err != nil {
		render.Render(w, r, ErrAppError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderNearestResponse(res))
}

type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, validations []error) render.Renderer {
	messages := make([]string, 0, len(validations))
	for _, v := range validations {
		messages = append(messages, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  messages,
	}
}

// ErrAppError maps the routing core's typed error codes onto HTTP statuses.
func ErrAppError(err error) render.Renderer {
	switch server.GetCode(err) {
	case server.ErrInvalidArgument, server.ErrOutOfRange, server.ErrBadRequest:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusBadRequest,
			StatusText:     "Invalid request.",
			ErrorText:      err.Error(),
		}
	case server.ErrNotFound:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			StatusText:     "Location not found.",
			ErrorText:      err.Error(),
		}
	case server.ErrPathNotFound:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusNotFound,
			StatusText:     "No route between the requested locations.",
			ErrorText:      err.Error(),
		}
	default:
		return &ErrResponse{
			Err:            err,
			HTTPStatusCode: http.StatusInternalServerError,
			StatusText:     "Internal server error.",
			ErrorText:      "internal server error",
		}
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
