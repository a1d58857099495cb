package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/worksheet/internal/export"
	"github.com/abhisek/worksheet/internal/metrics"
	"github.com/abhisek/worksheet/internal/printprofile"
	"github.com/abhisek/worksheet/internal/render"
	"github.com/abhisek/worksheet/internal/store"
	"github.com/abhisek/worksheet/internal/variantplan"
	"github.com/abhisek/worksheet/internal/work"
)

type handlers struct {
	Deps
}

func (h *handlers) health(c *gin.Context) {
	respondOK(c, gin.H{"status": "ok", "tasks": h.Pool.Len(), "templates": h.Templates.Len()})
}

func (h *handlers) listTemplates(c *gin.Context) {
	respondOK(c, gin.H{"templates": h.Templates.IDs()})
}

// templateRef names a catalog template or carries one inline.
type templateRef struct {
	TemplateID string                `json:"templateId"`
	Template   *variantplan.Template `json:"template"`
}

func (h *handlers) resolveTemplate(ref templateRef) (variantplan.Template, error) {
	if ref.Template != nil {
		return *ref.Template, nil
	}
	if ref.TemplateID == "" {
		return variantplan.Template{}, badRequest(errors.New("templateId or template is required"))
	}
	tpl, ok := h.Templates.Get(ref.TemplateID)
	if !ok {
		return variantplan.Template{}, newAPIError(http.StatusNotFound, CodeNotFound, fmt.Errorf("template %q not found", ref.TemplateID))
	}
	return tpl, nil
}

func buildResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, variantplan.ErrInsufficientTasks):
		return "insufficient"
	case errors.Is(err, variantplan.ErrInvalidTemplate), errors.Is(err, variantplan.ErrInvalidCount):
		return "invalid"
	default:
		return "error"
	}
}

type buildRequest struct {
	templateRef
	Seed         string `json:"seed" binding:"required"`
	Count        int    `json:"count" binding:"gte=0,lte=64"`
	ShuffleOrder bool   `json:"shuffleOrder"`
	TopicID      string `json:"topicId"`
}

func (h *handlers) buildVariants(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	tpl, err := h.resolveTemplate(req.templateRef)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	pool := h.Pool
	if req.TopicID != "" {
		pool = pool.ForTopics(req.TopicID)
	}
	variants, err := variantplan.NewBuilder(pool).BuildVariants(tpl, req.Seed, req.Count, variantplan.Options{ShuffleOrder: req.ShuffleOrder})
	metrics.IncBuild(buildResult(err))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"variants": variants})
}

type recommendRequest struct {
	WorkType          printprofile.WorkType `json:"workType"`
	VariantTaskCounts []int                 `json:"variantTaskCounts" binding:"dive,gte=0"`
}

func (h *handlers) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	respondOK(c, printprofile.Recommend(printprofile.RecommendInput{
		WorkType:          printprofile.ParseWorkType(string(req.WorkType)),
		VariantTaskCounts: req.VariantTaskCounts,
	}))
}

type createWorkRequest struct {
	templateRef
	Title        string `json:"title"`
	TopicID      string `json:"topicId"`
	Locale       string `json:"locale"`
	Type         string `json:"type"`
	Seed         string `json:"seed"`
	Count        int    `json:"count" binding:"gte=0,lte=64"`
	ShuffleOrder bool   `json:"shuffleOrder"`
	Layout       string `json:"layout"`
	Orientation  string `json:"orientation"`
}

func (h *handlers) createWork(c *gin.Context) {
	var req createWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	tpl, err := h.resolveTemplate(req.templateRef)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.TemplateID != "" && tpl.ID == "" {
		tpl.ID = req.TemplateID
	}

	pool := h.Pool
	if req.TopicID != "" {
		pool = pool.ForTopics(req.TopicID)
	}
	w, err := work.New(pool, work.NewParams{
		Title:        req.Title,
		TopicID:      req.TopicID,
		Locale:       req.Locale,
		Type:         printprofile.ParseWorkType(req.Type),
		Template:     tpl,
		Seed:         req.Seed,
		Count:        req.Count,
		ShuffleOrder: req.ShuffleOrder,
		Layout:       printprofile.Layout(req.Layout),
		Orientation:  printprofile.Orientation(req.Orientation),
	})
	metrics.IncBuild(buildResult(err))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Works.SaveWork(c.Request.Context(), w); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *handlers) listWorks(c *gin.Context) {
	opts := store.ListOpts{TopicID: c.Query("topicId")}
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			respondError(c, badRequest(fmt.Errorf("invalid limit %q", s)))
			return
		}
		opts.Limit = n
	}
	works, err := h.Works.ListWorks(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"works": works})
}

func (h *handlers) loadWork(c *gin.Context) (*work.Work, bool) {
	w, err := h.Works.GetWork(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return w, true
}

func (h *handlers) getWork(c *gin.Context) {
	w, ok := h.loadWork(c)
	if !ok {
		return
	}
	respondOK(c, w)
}

type editWorkRequest struct {
	Title       *string                   `json:"title"`
	Type        *printprofile.WorkType    `json:"type"`
	Layout      *printprofile.Layout      `json:"layout"`
	Orientation *printprofile.Orientation `json:"orientation"`
}

func (h *handlers) editWork(c *gin.Context) {
	var req editWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badRequest(err))
		return
	}
	w, ok := h.loadWork(c)
	if !ok {
		return
	}
	if err := w.Edit(h.Pool, work.EditParams(req)); err != nil {
		respondError(c, err)
		return
	}
	if err := h.Works.SaveWork(c.Request.Context(), w); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, w)
}

func (h *handlers) deleteWork(c *gin.Context) {
	if err := h.Works.DeleteWork(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) fit(c *gin.Context) {
	w, ok := h.loadWork(c)
	if !ok {
		return
	}
	verdict, err := w.Fit(h.Pool)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"verdict":        verdict,
		"recommendation": w.Recommendation(),
		"profile":        w.Profile,
	})
}

func overrides(c *gin.Context) work.Overrides {
	return work.Overrides{Layout: c.Query("layout"), Orientation: c.Query("orientation")}
}

func (h *handlers) printPlan(c *gin.Context) {
	w, ok := h.loadWork(c)
	if !ok {
		return
	}
	doc, err := w.Document(h.Pool, overrides(c))
	if err != nil {
		respondError(c, err)
		return
	}
	plan, err := h.Jobs.Plan(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"document": doc,
		"plan":     plan,
		"sheets":   plan.SheetCount(),
		"frames":   plan.FrameCount(),
	})
}

// planLink is the printable plan URL matching a pdf request.
func planLink(c *gin.Context) string {
	q := url.Values{}
	for _, k := range []string{"layout", "orientation"} {
		if v := c.Query(k); v != "" {
			q.Set(k, v)
		}
	}
	link := "/api/works/" + url.PathEscape(c.Param("id")) + "/print-plan"
	if len(q) > 0 {
		link += "?" + q.Encode()
	}
	return link
}

func (h *handlers) pdf(c *gin.Context) {
	w, ok := h.loadWork(c)
	if !ok {
		return
	}
	doc, err := w.Document(h.Pool, overrides(c))
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := h.Jobs.Run(c.Request.Context(), doc, c.Query("engine"))
	if err != nil {
		if errors.Is(err, render.ErrRenderUnavailable) {
			respondErrorWithFallback(c, err, planLink(c))
			return
		}
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", export.FileName(doc.WorkID, string(doc.Profile.Layout))))
	c.Header("X-Render-Engine", string(res.Engine))
	if res.Location != "" {
		c.Header("X-Export-Location", res.Location)
	}
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}
