package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/avoropay/receipt_ingestor/internal/repository/postgresql"
	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
)

type RecordsRepository interface {
	Records(ctx context.Context, limit, offset uint64) ([]*domain.FileRecord, int, error)
	RecordByName(ctx context.Context, fileName string) (*domain.FileRecord, error)
	AllRecords(ctx context.Context) ([]*domain.FileRecord, error)
}

type IngestionEventsRepository interface {
	IngestionEventsByFile(ctx context.Context, fileName string) ([]*domain.IngestionEvent, error)
}

type FilesHandler struct {
	recordsRepository RecordsRepository
	eventsRepository  IngestionEventsRepository
}

func NewFilesHandler(recordsRepository RecordsRepository, eventsRepository IngestionEventsRepository) *FilesHandler {
	return &FilesHandler{
		recordsRepository: recordsRepository,
		eventsRepository:  eventsRepository,
	}
}

type GetFilesResponse struct {
	Files      []*domain.FileRecord `json:"files"`
	Pagination Pagination           `json:"pagination"`
}

func (h *FilesHandler) GetFiles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := h.parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	records, total, err := h.recordsRepository.Records(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(GetFilesResponse{
		Files: records,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int(limit) - 1) / int(limit),
		},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *FilesHandler) GetFileByName(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "file_name")

	record, err := h.recordsRepository.RecordByName(r.Context(), fileName)
	if err != nil {
		if errors.Is(err, postgresql.ErrRecordNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *FilesHandler) GetFileEvents(w http.ResponseWriter, r *http.Request) {
	fileName := chi.URLParam(r, "file_name")

	events, err := h.eventsRepository.IngestionEventsByFile(r.Context(), fileName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := json.Marshal(events)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *FilesHandler) ExportFiles(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordsRepository.AllRecords(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="file_records.csv"`)
	w.Write(data)
}

func (h *FilesHandler) parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}
