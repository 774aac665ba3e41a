package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IconIdle_Go/internal/domain"
	"github.com/osse101/IconIdle_Go/internal/logger"
)

// Sample size bounds for the sample endpoint
const (
	DefaultSampleCount = 3
	MaxSampleCount     = 50
)

// IconCatalog is the read side of the icon catalog
type IconCatalog interface {
	All() []domain.Icon
	ByRarity(r domain.Rarity) []domain.Icon
	GetByID(id string) (domain.Icon, bool)
	SampleUniform(count int, allowDuplicates bool) []domain.Icon
	SampleByRarity(r domain.Rarity) (domain.Icon, bool)
	SampleWeighted() (domain.Icon, bool)
}

// IconView is an icon with its rarity presentation
type IconView struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Rarity      string `json:"rarity"`
	RarityLabel string `json:"rarity_label"`
	Color       string `json:"color"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// IconListResponse wraps a list of icons
type IconListResponse struct {
	Icons []IconView `json:"icons"`
	Count int        `json:"count"`
}

func newIconView(icon domain.Icon) IconView {
	return IconView{
		ID:          icon.ID,
		DisplayName: icon.DisplayName,
		Rarity:      icon.Rarity.String(),
		RarityLabel: icon.Rarity.Label(),
		Color:       icon.Rarity.Color(),
		Hidden:      icon.Hidden,
	}
}

func newIconList(icons []domain.Icon) IconListResponse {
	views := make([]IconView, len(icons))
	for i, icon := range icons {
		views[i] = newIconView(icon)
	}
	return IconListResponse{Icons: views, Count: len(views)}
}

// CatalogHandlers serves the shared icon catalog
type CatalogHandlers struct {
	catalog IconCatalog
}

// NewCatalogHandlers creates catalog handlers
func NewCatalogHandlers(catalog IconCatalog) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog}
}

// HandleListIcons lists the catalog, optionally filtered by rarity
// @Summary List icons
// @Tags catalog
// @Produce json
// @Param rarity query string false "common, uncommon, rare or legendary"
// @Success 200 {object} IconListResponse
// @Failure 400 {object} ErrorResponse
// @Router /icons [get]
func (h *CatalogHandlers) HandleListIcons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("rarity")
		if raw == "" {
			respondJSON(w, http.StatusOK, newIconList(h.catalog.All()))
			return
		}
		rarity, err := domain.ParseRarity(raw)
		if err != nil {
			respondServiceError(w, r, "List icons", err)
			return
		}
		respondJSON(w, http.StatusOK, newIconList(h.catalog.ByRarity(rarity)))
	}
}

// HandleGetIcon returns one icon
// @Summary Get icon
// @Tags catalog
// @Produce json
// @Param iconID path string true "Icon id"
// @Success 200 {object} IconView
// @Failure 404 {object} ErrorResponse
// @Router /icons/{iconID} [get]
func (h *CatalogHandlers) HandleGetIcon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		icon, ok := h.catalog.GetByID(chi.URLParam(r, ParamIconID))
		if !ok {
			respondServiceError(w, r, "Get icon", domain.ErrIconNotFound)
			return
		}
		respondJSON(w, http.StatusOK, newIconView(icon))
	}
}

// HandleSampleIcons draws icons uniformly from the catalog
// @Summary Sample icons uniformly
// @Description Without duplicates the result is capped at the catalog size
// @Tags catalog
// @Produce json
// @Param count query int false "Number of icons" default(3)
// @Param duplicates query bool false "Allow the same icon more than once"
// @Success 200 {object} IconListResponse
// @Failure 400 {object} ErrorResponse
// @Router /icons/sample [get]
func (h *CatalogHandlers) HandleSampleIcons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, ok := intQueryParam(w, r, "count", DefaultSampleCount, 0, MaxSampleCount)
		if !ok {
			return
		}
		duplicates, ok := boolQueryParam(w, r, "duplicates", false)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, newIconList(h.catalog.SampleUniform(count, duplicates)))
	}
}

// HandleRandomIcon draws one icon, weighted by rarity unless a tier is given
// @Summary Draw one icon
// @Description Without a rarity the tier is drawn 60/25/12/3
// @Tags catalog
// @Produce json
// @Param rarity query string false "Draw within this tier"
// @Success 200 {object} IconView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /icons/random [get]
func (h *CatalogHandlers) HandleRandomIcon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			icon domain.Icon
			ok   bool
		)
		if raw := r.URL.Query().Get("rarity"); raw != "" {
			rarity, err := domain.ParseRarity(raw)
			if err != nil {
				respondServiceError(w, r, "Random icon", err)
				return
			}
			icon, ok = h.catalog.SampleByRarity(rarity)
		} else {
			icon, ok = h.catalog.SampleWeighted()
		}
		if !ok {
			logger.FromContext(r.Context()).Error("Random icon: catalog is empty")
			respondServiceError(w, r, "Random icon", domain.ErrIconNotFound)
			return
		}
		respondJSON(w, http.StatusOK, newIconView(icon))
	}
}
