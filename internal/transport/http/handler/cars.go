package handler

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/application/car"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	s3infra "github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/s3"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/transport/http/middleware"
)

const maxUploadBytes = 64 << 20

// CarHandler handles car listing endpoints.
type CarHandler struct {
	svc car.Service
}

func NewCarHandler(svc car.Service) *CarHandler {
	return &CarHandler{svc: svc}
}

// Create accepts a multipart form: scalar listing fields plus up to five
// "photos" files and one required "video" file.
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := domain.CreateCarRequest{
		Model:             r.FormValue("model"),
		Year:              formInt(r, "year"),
		Transmission:      r.FormValue("transmission"),
		Color:             r.FormValue("color"),
		Insurance:         r.FormValue("insurance"),
		PurchaseDate:      r.FormValue("purchaseDate"),
		OriginalPrice:     formFloat(r, "originalPrice"),
		Refurb:            r.FormValue("refurb"),
		InterestRate:      formFloat(r, "interestRate"),
		Fuel:              r.FormValue("fuel"),
		NegotiationBuffer: formFloat(r, "negotiationBuffer"),
		ProfitMargin:      formFloat(r, "profitMargin"),
		CurrentPrice:      formFloat(r, "currentPrice"),
		SuggestedPrice:    formFloat(r, "suggestedPrice"),
		Description:       r.FormValue("description"),
		KmsDriven:         formInt(r, "kmsDriven"),
	}

	photos, closers, err := openUploads(r.MultipartForm.File["photos"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read photo upload")
		return
	}
	defer closeAll(closers)

	var video *car.Upload
	if fhs := r.MultipartForm.File["video"]; len(fhs) > 0 {
		uploads, vidClosers, err := openUploads(fhs[:1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read video upload")
			return
		}
		defer closeAll(vidClosers)
		video = &uploads[0]
	}

	created, err := h.svc.Create(r.Context(), owner, req, photos, video)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CarEnvelope{Message: "car data submitted successfully", Car: created})
}

func (h *CarHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	cars, err := h.svc.ListMine(r.Context(), owner)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// ListAll is the public paginated feed across all dealers.
func (h *CarHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit := int64(10)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			limit = n
		}
	}
	cars, nextCursor, err := h.svc.ListAllPage(r.Context(), int32(limit), r.URL.Query().Get("cursor"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PaginatedCarsEnvelope{Items: cars, NextCursor: nextCursor})
}

func (h *CarHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.CompanyFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		CreatedAt string `json:"createdAt"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.svc.UpdateStatus(r.Context(), owner, req.CreatedAt, req.Status)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func openUploads(fhs []*multipart.FileHeader) ([]car.Upload, []multipart.File, error) {
	uploads := make([]car.Upload, 0, len(fhs))
	closers := make([]multipart.File, 0, len(fhs))
	for _, fh := range fhs {
		f, err := fh.Open()
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		closers = append(closers, f)
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = s3infra.DetectContentType(fh.Filename)
		}
		uploads = append(uploads, car.Upload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Content:     f,
		})
	}
	return uploads, closers, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func formInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.FormValue(key))
	return n
}

func formFloat(r *http.Request, key string) float64 {
	f, _ := strconv.ParseFloat(r.FormValue(key), 64)
	return f
}
